package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/shootbook-backend/internal/booking"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"github.com/sefazor/shootbook-backend/pkg/email"
	"go.uber.org/zap"
)

// CartService kullanıcı başına rezervasyon sepetini yönetir. Fiyat ve isimler
// her zaman sunucu tarafında katalogdan çözülür.
type CartService struct {
	store            booking.Store
	userRepo         *repository.UserRepository
	locationRepo     *repository.LocationRepository
	equipmentRepo    *repository.EquipmentRepository
	transportRepo    *repository.TransportRepository
	photographerRepo *repository.PhotographerRepository
	bookingRepo      *repository.BookingRepository
	tx               *repository.Transactor
	photographers    *PhotographerService
	notifications    *NotificationService
	publisher        EventPublisher
	mailer           Mailer
	logger           *zap.Logger
	now              func() time.Time
}

func NewCartService(
	store booking.Store,
	userRepo *repository.UserRepository,
	locationRepo *repository.LocationRepository,
	equipmentRepo *repository.EquipmentRepository,
	transportRepo *repository.TransportRepository,
	photographerRepo *repository.PhotographerRepository,
	bookingRepo *repository.BookingRepository,
	tx *repository.Transactor,
	photographers *PhotographerService,
	notifications *NotificationService,
	publisher EventPublisher,
	mailer Mailer,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		store:            store,
		userRepo:         userRepo,
		locationRepo:     locationRepo,
		equipmentRepo:    equipmentRepo,
		transportRepo:    transportRepo,
		photographerRepo: photographerRepo,
		bookingRepo:      bookingRepo,
		tx:               tx,
		photographers:    photographers,
		notifications:    notifications,
		publisher:        publisher,
		mailer:           mailer,
		logger:           logger.Named("cart"),
		now:              time.Now,
	}
}

func owner(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

func (s *CartService) Get(ctx context.Context, userID uint) (*booking.Cart, error) {
	return s.store.Load(ctx, owner(userID))
}

// mutate fn'i store'un atomik Update'i içinde uygular, eşzamanlı iki istek
// birbirinin değişikliğini ezmez
func (s *CartService) mutate(ctx context.Context, userID uint, fn func(*booking.Cart) error) (*booking.Cart, error) {
	cart, err := s.store.Update(ctx, owner(userID), fn)
	if err != nil {
		return nil, cartError(err)
	}
	return cart, nil
}

func (s *CartService) SetType(ctx context.Context, userID uint, raw string) (*booking.Cart, error) {
	t, err := booking.ParseBookingType(raw)
	if err != nil {
		return nil, validationError("%s", err.Error())
	}
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		c.SetType(t)
		return nil
	})
}

func (s *CartService) SetLocation(ctx context.Context, userID, locationID uint) (*booking.Cart, error) {
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, wrapRepo(err, "location")
	}
	if !loc.IsActive {
		return nil, fmt.Errorf("%w: location %q is not bookable", ErrUnavailable, loc.Name)
	}
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		c.SetLocation(loc.ID, loc.Name)
		return nil
	})
}

// SetDate geçmiş günleri reddeder
func (s *CartService) SetDate(ctx context.Context, userID uint, raw string) (*booking.Cart, error) {
	date, err := time.Parse(models.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil, validationError("date must be in YYYY-MM-DD format")
	}
	if date.Before(truncateDay(s.now())) {
		return nil, validationError("date cannot be in the past")
	}
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		c.SetDate(date)
		return nil
	})
}

func (s *CartService) SetRentalDays(ctx context.Context, userID uint, days int) (*booking.Cart, error) {
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		c.SetRentalDays(days)
		return nil
	})
}

// AddItem quantity gönderilmezse (0) 1 kabul edilir, negatif değerler sepet
// tarafından yok sayılır
func (s *CartService) AddItem(ctx context.Context, userID uint, req models.AddCartItemRequest) (*booking.Cart, error) {
	kind, err := booking.ParseItemKind(req.Kind)
	if err != nil {
		return nil, validationError("%s", err.Error())
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	// Kalem güncel sepet üzerinde çözülür, stok kontrolü sepetteki adedi görür
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		item, err := s.resolveItem(ctx, c, kind, req.RefID, quantity)
		if err != nil {
			return err
		}
		return c.AddItem(item)
	})
}

func (s *CartService) UpdateItem(ctx context.Context, userID uint, rawKind string, refID uint, quantity int) (*booking.Cart, error) {
	kind, err := booking.ParseItemKind(rawKind)
	if err != nil {
		return nil, validationError("%s", err.Error())
	}
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		if kind == booking.KindEquipment && quantity > 0 {
			if err := checkStock(ctx, s.equipmentRepo, s.bookingRepo, refID, quantity, c.Date, c.RentalDays); err != nil {
				return err
			}
		}
		if !c.UpdateQuantity(kind, refID, quantity) {
			return fmt.Errorf("%w: item is not in the cart", ErrNotFound)
		}
		return nil
	})
}

func (s *CartService) RemoveItem(ctx context.Context, userID uint, rawKind string, refID uint) (*booking.Cart, error) {
	kind, err := booking.ParseItemKind(rawKind)
	if err != nil {
		return nil, validationError("%s", err.Error())
	}
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		if !c.RemoveItem(kind, refID) {
			return fmt.Errorf("%w: item is not in the cart", ErrNotFound)
		}
		return nil
	})
}

func (s *CartService) Next(ctx context.Context, userID uint) (*booking.Cart, error) {
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		c.Next()
		return nil
	})
}

func (s *CartService) Back(ctx context.Context, userID uint) (*booking.Cart, error) {
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		c.Back()
		return nil
	})
}

func (s *CartService) GoTo(ctx context.Context, userID uint, step string) (*booking.Cart, error) {
	return s.mutate(ctx, userID, func(c *booking.Cart) error {
		return c.GoTo(booking.Step(strings.ToLower(strings.TrimSpace(step))))
	})
}

func (s *CartService) Reset(ctx context.Context, userID uint) (*booking.Cart, error) {
	if err := s.store.Clear(ctx, owner(userID)); err != nil {
		return nil, err
	}
	return booking.NewCart(), nil
}

// Checkout sepeti doğrular, pending durumda bir rezervasyon oluşturur ve sepeti
// temizler. Bildirim, olay ve e-posta hataları rezervasyonu geri almaz.
func (s *CartService) Checkout(ctx context.Context, userID uint, req models.CheckoutRequest) (*models.Booking, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapRepo(err, "user")
	}

	cart, err := s.store.Load(ctx, owner(userID))
	if err != nil {
		return nil, err
	}
	if err := cart.Validate(); err != nil {
		return nil, cartError(err)
	}
	// sepet günler önce hazırlanmış olabilir
	if cart.Date.Before(truncateDay(s.now())) {
		return nil, validationError("booking date %s is in the past, pick a new date", cart.Date.Format(models.DateLayout))
	}

	loc, err := s.locationRepo.GetByID(ctx, cart.LocationID)
	if err != nil {
		return nil, wrapRepo(err, "location")
	}
	if !loc.IsActive {
		return nil, fmt.Errorf("%w: location %q is not bookable", ErrUnavailable, loc.Name)
	}

	b := &models.Booking{
		Reference:    uuid.NewString(),
		UserID:       user.ID,
		Type:         string(cart.Type),
		LocationID:   loc.ID,
		LocationName: loc.Name,
		Date:         *cart.Date,
		RentalDays:   cart.RentalDays,
		TotalCost:    cart.Total(),
		Status:       models.BookingStatusPending,
		Notes:        strings.TrimSpace(req.Notes),
	}
	var photographerIDs, equipmentIDs []uint
	for _, item := range cart.Items {
		b.Items = append(b.Items, models.BookingItem{
			Kind:      string(item.Kind),
			RefID:     item.RefID,
			Name:      item.Name,
			DailyRate: item.DailyRate,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(cart.RentalDays),
		})
		switch {
		case item.Kind.IsPerson():
			photographerIDs = append(photographerIDs, item.RefID)
		case item.Kind == booking.KindEquipment:
			equipmentIDs = append(equipmentIDs, item.RefID)
		}
	}

	// Müsaitlik ve stok kilitli satırlar üzerinde yeniden kontrol edilir, aynı
	// fotoğrafçı ya da ekipman için eşzamanlı checkout'lar sırayla işlenir
	err = s.tx.Run(ctx, func(tx *repository.Tx) error {
		if err := tx.Photographers.LockForBooking(ctx, photographerIDs); err != nil {
			return err
		}
		if err := tx.Equipment.LockForBooking(ctx, equipmentIDs); err != nil {
			return err
		}
		for _, item := range cart.Items {
			if !item.Kind.IsPerson() {
				continue
			}
			ok, err := personAvailable(ctx, tx.Availability, tx.Bookings, item.RefID, *cart.Date, cart.RentalDays)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s is not available on %s", ErrUnavailable, item.Name, cart.Date.Format(models.DateLayout))
			}
		}
		for _, item := range cart.ItemsOf(booking.KindEquipment) {
			if err := checkStock(ctx, tx.Equipment, tx.Bookings, item.RefID, item.Quantity, cart.Date, cart.RentalDays); err != nil {
				return err
			}
		}

		photographers, err := tx.Photographers.ListByIDs(ctx, photographerIDs)
		if err != nil {
			return err
		}
		b.Photographers = photographers
		return tx.Bookings.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Clear(ctx, owner(userID)); err != nil {
		s.logger.Warn("failed to clear cart after checkout", zap.Uint("user_id", userID), zap.Error(err))
	}

	s.afterCheckout(ctx, user, b)
	return b, nil
}

func (s *CartService) afterCheckout(ctx context.Context, user *models.User, b *models.Booking) {
	bookingID := b.ID
	notifications := []*models.Notification{{
		UserID:    user.ID,
		Type:      models.NotificationBookingCreated,
		Title:     fmt.Sprintf("Booking %s received", shortRef(b.Reference)),
		Message:   fmt.Sprintf("Your booking at %s on %s is pending confirmation.", b.LocationName, b.Date.Format(models.DateLayout)),
		BookingID: &bookingID,
	}}
	ids := make([]uint, 0, len(b.Photographers))
	for _, p := range b.Photographers {
		ids = append(ids, p.ID)
		notifications = append(notifications, &models.Notification{
			UserID:    p.UserID,
			Type:      models.NotificationBookingAssigned,
			Title:     "New booking request",
			Message:   fmt.Sprintf("%s booked you at %s on %s for %d day(s).", user.FullName, b.LocationName, b.Date.Format(models.DateLayout), b.RentalDays),
			BookingID: &bookingID,
		})
	}
	if err := s.notifications.Notify(ctx, notifications...); err != nil {
		s.logger.Error("failed to create checkout notifications", zap.Uint("booking_id", b.ID), zap.Error(err))
	}

	event := models.BookingEvent{
		Type:            models.EventBookingCreated,
		BookingID:       b.ID,
		Reference:       b.Reference,
		UserID:          user.ID,
		PhotographerIDs: ids,
		Status:          b.Status,
		Date:            b.Date,
		TotalCost:       b.TotalCost,
		OccurredAt:      s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event", zap.String("type", event.Type), zap.Error(err))
	}

	summary := bookingSummary(user, b)
	go func() {
		if err := s.mailer.SendBookingConfirmation(user.Email, summary); err != nil {
			s.logger.Warn("booking confirmation email failed", zap.String("reference", b.Reference), zap.Error(err))
		}
	}()
}

func (s *CartService) resolveItem(ctx context.Context, cart *booking.Cart, kind booking.ItemKind, refID uint, quantity int) (booking.Item, error) {
	item := booking.Item{Kind: kind, RefID: refID, Quantity: quantity}

	switch kind {
	case booking.KindPhotographer, booking.KindVideographer:
		p, err := s.photographerRepo.GetByID(ctx, refID)
		if err != nil {
			return item, wrapRepo(err, "photographer")
		}
		if !p.IsActive || string(p.Specialty) != string(kind) {
			return item, fmt.Errorf("%w: %s is not an active %s", ErrUnavailable, p.DisplayName, kind)
		}
		if cart.Date != nil {
			ok, err := s.photographers.IsAvailable(ctx, p.ID, *cart.Date, cart.RentalDays)
			if err != nil {
				return item, err
			}
			if !ok {
				return item, fmt.Errorf("%w: %s is not available on %s", ErrUnavailable, p.DisplayName, cart.Date.Format(models.DateLayout))
			}
		}
		item.Name = p.DisplayName
		item.DailyRate = p.DailyRate
		if len(p.Portfolio) > 0 {
			item.ImageURL = p.Portfolio[0].PublicURL
		}

	case booking.KindEquipment:
		e, err := s.equipmentRepo.GetByID(ctx, refID)
		if err != nil {
			return item, wrapRepo(err, "equipment")
		}
		if !e.IsActive {
			return item, fmt.Errorf("%w: %s is not available", ErrUnavailable, e.Name)
		}
		inCart := 0
		for _, existing := range cart.ItemsOf(booking.KindEquipment) {
			if existing.RefID == refID {
				inCart = existing.Quantity
			}
		}
		if quantity > 0 {
			available, err := availableStock(ctx, s.bookingRepo, e, cart.Date, cart.RentalDays)
			if err != nil {
				return item, err
			}
			if inCart+quantity > available {
				return item, fmt.Errorf("%w: only %d %s available", ErrUnavailable, available, e.Name)
			}
		}
		item.Name = e.Name
		item.DailyRate = e.DailyRate
		item.ImageURL = e.ImageURL

	case booking.KindTransport:
		t, err := s.transportRepo.GetByID(ctx, refID)
		if err != nil {
			return item, wrapRepo(err, "transport")
		}
		if !t.IsActive {
			return item, fmt.Errorf("%w: %s is not available", ErrUnavailable, t.Name)
		}
		item.Name = t.Name
		item.DailyRate = t.DailyRate
		item.ImageURL = t.ImageURL
	}

	return item, nil
}

// checkStock tarih seçilmişse o günlerde başka rezervasyonlara ayrılmış adetleri düşer
func checkStock(ctx context.Context, equipmentRepo *repository.EquipmentRepository, bookingRepo *repository.BookingRepository, equipmentID uint, quantity int, date *time.Time, days int) error {
	e, err := equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return wrapRepo(err, "equipment")
	}
	if !e.IsActive {
		return fmt.Errorf("%w: %s is not available", ErrUnavailable, e.Name)
	}
	available, err := availableStock(ctx, bookingRepo, e, date, days)
	if err != nil {
		return err
	}
	if quantity > available {
		return fmt.Errorf("%w: only %d %s available", ErrUnavailable, available, e.Name)
	}
	return nil
}

func availableStock(ctx context.Context, bookingRepo *repository.BookingRepository, e *models.Equipment, date *time.Time, days int) (int, error) {
	if date == nil {
		return e.Stock, nil
	}
	reserved, err := reservedStock(ctx, bookingRepo, e.ID, *date, days)
	if err != nil {
		return 0, err
	}
	return max(e.Stock-reserved, 0), nil
}

// reservedStock aralıktaki herhangi bir günde aktif rezervasyonların tuttuğu en
// yüksek adet
func reservedStock(ctx context.Context, bookingRepo *repository.BookingRepository, equipmentID uint, date time.Time, days int) (int, error) {
	start, end := bookingSpan(date, days)
	bookings, err := bookingRepo.ActiveWithEquipment(ctx, equipmentID, end)
	if err != nil {
		return 0, err
	}
	peak := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		used := 0
		for _, b := range bookings {
			bStart, bEnd := bookingSpan(b.Date, b.RentalDays)
			if day.Before(bStart) || day.After(bEnd) {
				continue
			}
			for _, item := range b.Items {
				used += item.Quantity
			}
		}
		peak = max(peak, used)
	}
	return peak, nil
}

// cartError sepet hatalarını servis hatalarına çevirir
func cartError(err error) error {
	switch {
	case errors.Is(err, booking.ErrIncomplete),
		errors.Is(err, booking.ErrInvalidItem),
		errors.Is(err, booking.ErrKindNotInFlow),
		errors.Is(err, booking.ErrUnknownStep):
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	case errors.Is(err, booking.ErrConcurrentUpdate):
		return fmt.Errorf("%w: %s", ErrConflict, err.Error())
	}
	return err
}

func bookingSummary(user *models.User, b *models.Booking) email.BookingSummary {
	lines := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, fmt.Sprintf("%s x%d (%s) - %.2f", item.Name, item.Quantity, item.Kind, item.Subtotal))
	}
	return email.BookingSummary{
		Reference:    b.Reference,
		CustomerName: user.FullName,
		LocationName: b.LocationName,
		Date:         b.Date,
		RentalDays:   b.RentalDays,
		Total:        b.TotalCost,
		Status:       string(b.Status),
		Lines:        lines,
	}
}
