package service

import (
	"context"
	"testing"
	"time"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_HandleBookingEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	pu, p := env.photographer(t, "Pia", "pia@example.com", models.SpecialtyPhotographer, 100)
	customer := env.register(t, "Cus", "cus@example.com", models.RoleCustomer)

	created := models.BookingEvent{Type: models.EventBookingCreated, BookingID: 1, UserID: customer.ID}
	require.NoError(t, env.notifications.HandleBookingEvent(ctx, created))
	count, err := env.notifications.UnreadCount(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "created events are notified during checkout")

	changed := models.BookingEvent{
		Type:            models.EventBookingStatusChanged,
		BookingID:       1,
		Reference:       "0123456789abcdef",
		UserID:          customer.ID,
		PhotographerIDs: []uint{p.ID},
		Status:          models.BookingStatusConfirmed,
		PreviousStatus:  models.BookingStatusPending,
		Date:            time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, env.notifications.HandleBookingEvent(ctx, changed))

	list, unread, err := env.notifications.List(ctx, customer.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), unread)
	assert.Equal(t, "Booking 01234567 is confirmed", list[0].Title)
	require.NotNil(t, list[0].BookingID)

	count, err = env.notifications.UnreadCount(ctx, pu.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.notifications.Notify(ctx,
		&models.Notification{UserID: 1, Type: models.NotificationBookingCreated, Title: "a"},
		&models.Notification{UserID: 1, Type: models.NotificationBookingCreated, Title: "b"},
	))
	list, _, err := env.notifications.List(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, list, 2)

	n, err := env.notifications.MarkRead(ctx, 1, list[0].ID)
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	_, err = env.notifications.MarkRead(ctx, 2, list[1].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	marked, err := env.notifications.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	unread, err := env.notifications.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
