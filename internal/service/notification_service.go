package service

import (
	"context"
	"fmt"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"go.uber.org/zap"
)

const maxNotificationList = 100

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	photographerRepo *repository.PhotographerRepository
	logger           *zap.Logger
}

func NewNotificationService(
	notificationRepo *repository.NotificationRepository,
	photographerRepo *repository.PhotographerRepository,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		photographerRepo: photographerRepo,
		logger:           logger.Named("notifications"),
	}
}

func (s *NotificationService) List(ctx context.Context, userID uint, unreadOnly bool) ([]models.Notification, int64, error) {
	list, err := s.notificationRepo.List(ctx, userID, unreadOnly, maxNotificationList)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uint) (*models.Notification, error) {
	n, err := s.notificationRepo.MarkRead(ctx, userID, id)
	if err != nil {
		return nil, wrapRepo(err, "notification")
	}
	return n, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Notify(ctx context.Context, notifications ...*models.Notification) error {
	return s.notificationRepo.Create(ctx, notifications...)
}

// HandleBookingEvent broker'dan gelen olaylardan bildirim üretir. Checkout
// bildirimleri istek sırasında yazıldığı için sadece durum değişikliği işlenir.
func (s *NotificationService) HandleBookingEvent(ctx context.Context, event models.BookingEvent) error {
	if event.Type != models.EventBookingStatusChanged {
		return nil
	}

	bookingID := event.BookingID
	notifications := []*models.Notification{{
		UserID:    event.UserID,
		Type:      models.NotificationBookingStatusChanged,
		Title:     fmt.Sprintf("Booking %s is %s", shortRef(event.Reference), event.Status),
		Message:   fmt.Sprintf("Your booking for %s changed from %s to %s.", event.Date.Format(models.DateLayout), event.PreviousStatus, event.Status),
		BookingID: &bookingID,
	}}

	if len(event.PhotographerIDs) > 0 {
		photographers, err := s.photographerRepo.ListByIDs(ctx, event.PhotographerIDs)
		if err != nil {
			return err
		}
		for _, p := range photographers {
			notifications = append(notifications, &models.Notification{
				UserID:    p.UserID,
				Type:      models.NotificationBookingStatusChanged,
				Title:     fmt.Sprintf("Booking %s is %s", shortRef(event.Reference), event.Status),
				Message:   fmt.Sprintf("The shoot on %s is now %s.", event.Date.Format(models.DateLayout), event.Status),
				BookingID: &bookingID,
			})
		}
	}

	if err := s.notificationRepo.Create(ctx, notifications...); err != nil {
		return err
	}
	s.logger.Debug("booking notifications created",
		zap.Uint("booking_id", event.BookingID),
		zap.Int("count", len(notifications)))
	return nil
}

// shortRef uuid referansının ilk bloğu
func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
