package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"github.com/sefazor/shootbook-backend/pkg/payment"
	"github.com/sefazor/shootbook-backend/pkg/qrcode"
	"go.uber.org/zap"
)

type BookingService struct {
	bookingRepo      *repository.BookingRepository
	userRepo         *repository.UserRepository
	photographerRepo *repository.PhotographerRepository
	payments         PaymentGateway
	qr               *qrcode.QRService
	publisher        EventPublisher
	mailer           Mailer
	logger           *zap.Logger
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	userRepo *repository.UserRepository,
	photographerRepo *repository.PhotographerRepository,
	payments PaymentGateway,
	qr *qrcode.QRService,
	publisher EventPublisher,
	mailer Mailer,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:      bookingRepo,
		userRepo:         userRepo,
		photographerRepo: photographerRepo,
		payments:         payments,
		qr:               qr,
		publisher:        publisher,
		mailer:           mailer,
		logger:           logger.Named("bookings"),
	}
}

func (s *BookingService) ListMine(ctx context.Context, userID uint, status models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.List(ctx, models.BookingFilter{UserID: userID, Status: status})
}

// GetMine başka kullanıcıya ait rezervasyonlar için ErrNotFound döner
func (s *BookingService) GetMine(ctx context.Context, userID, id uint) (*models.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepo(err, "booking")
	}
	if b.UserID != userID {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}
	return b, nil
}

func (s *BookingService) CancelMine(ctx context.Context, userID, id uint) (*models.Booking, error) {
	b, err := s.GetMine(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("%w: only pending bookings can be cancelled", ErrConflict)
	}
	return s.changeStatus(ctx, b, models.BookingStatusCancelled)
}

func (s *BookingService) QRCode(ctx context.Context, userID, id uint, size int) ([]byte, error) {
	b, err := s.GetMine(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.qr.GenerateBookingQR(b.Reference, size)
}

// CreatePayment rezervasyon toplamı için Stripe checkout oturumu açar
func (s *BookingService) CreatePayment(ctx context.Context, userID, id uint) (*models.CheckoutSession, error) {
	b, err := s.GetMine(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s", ErrConflict, b.Status)
	}
	if b.TotalCost <= 0 {
		return nil, validationError("booking total must be positive")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapRepo(err, "user")
	}

	result, err := s.payments.CreateCheckoutSession(payment.CheckoutParams{
		CustomerEmail: user.Email,
		Reference:     b.Reference,
		Description:   fmt.Sprintf("%s booking at %s on %s (%d day)", b.Type, b.LocationName, b.Date.Format(models.DateLayout), b.RentalDays),
		Amount:        b.TotalCost,
		Metadata: map[string]string{
			"booking_id": strconv.FormatUint(uint64(b.ID), 10),
			"user_id":    strconv.FormatUint(uint64(userID), 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if err := s.bookingRepo.SetStripeSession(ctx, b.ID, result.SessionID); err != nil {
		return nil, err
	}

	return &models.CheckoutSession{
		ID:        result.SessionID,
		URL:       result.URL,
		BookingID: b.ID,
		Amount:    b.TotalCost,
	}, nil
}

// HandleWebhook sadece checkout.session.completed olayında rezervasyonu paid yapar.
// Zaten ödenmiş rezervasyon için tekrar gelen olaylar yok sayılır.
func (s *BookingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.payments.ParseWebhook(payload, signature)
	if err != nil {
		return validationError("invalid webhook: %v", err)
	}
	if event.Type != payment.EventCheckoutCompleted {
		s.logger.Debug("ignoring stripe event", zap.String("type", event.Type))
		return nil
	}

	b, err := s.bookingRepo.GetByReference(ctx, event.Reference)
	if err != nil {
		return wrapRepo(err, "booking")
	}
	if b.Status == models.BookingStatusPaid {
		return nil
	}
	if !b.Status.CanTransitionTo(models.BookingStatusPaid) {
		s.logger.Warn("payment received for booking that cannot be paid",
			zap.String("reference", b.Reference),
			zap.String("status", string(b.Status)))
		return nil
	}

	_, err = s.changeStatus(ctx, b, models.BookingStatusPaid)
	return err
}

func (s *BookingService) ListForPhotographer(ctx context.Context, userID uint) ([]models.Booking, error) {
	p, err := s.photographerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepo(err, "photographer profile")
	}
	return s.bookingRepo.ListForPhotographer(ctx, p.ID)
}

func (s *BookingService) AdminList(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) AdminGet(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepo(err, "booking")
	}
	return b, nil
}

func (s *BookingService) AdminUpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	b, err := s.AdminGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot change booking from %s to %s", ErrConflict, b.Status, status)
	}
	return s.changeStatus(ctx, b, status)
}

// changeStatus durumu yazar, olayı yayınlar ve müşteriye e-posta gönderir.
// Bildirimler olay tüketicisi tarafından oluşturulur.
func (s *BookingService) changeStatus(ctx context.Context, b *models.Booking, status models.BookingStatus) (*models.Booking, error) {
	previous := b.Status
	if err := s.bookingRepo.UpdateStatus(ctx, b.ID, status); err != nil {
		return nil, wrapRepo(err, "booking")
	}
	b.Status = status

	ids := make([]uint, 0, len(b.Photographers))
	for _, p := range b.Photographers {
		ids = append(ids, p.ID)
	}
	event := models.BookingEvent{
		Type:            models.EventBookingStatusChanged,
		BookingID:       b.ID,
		Reference:       b.Reference,
		UserID:          b.UserID,
		PhotographerIDs: ids,
		Status:          status,
		PreviousStatus:  previous,
		Date:            b.Date,
		TotalCost:       b.TotalCost,
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event", zap.String("reference", b.Reference), zap.Error(err))
	}

	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load booking owner", zap.Uint("user_id", b.UserID), zap.Error(err))
		}
		return b, nil
	}
	summary := bookingSummary(user, b)
	go func() {
		if err := s.mailer.SendBookingStatusChanged(user.Email, summary); err != nil {
			s.logger.Warn("status email failed", zap.String("reference", b.Reference), zap.Error(err))
		}
	}()

	return b, nil
}
