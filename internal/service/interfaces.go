package service

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/pkg/email"
	"github.com/sefazor/shootbook-backend/pkg/payment"
)

type Mailer interface {
	SendWelcomeEmail(email, fullName string) error
	SendBookingConfirmation(email string, summary email.BookingSummary) error
	SendBookingStatusChanged(email string, summary email.BookingSummary) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event models.BookingEvent) error
}

type PaymentGateway interface {
	CreateCheckoutSession(p payment.CheckoutParams) (*payment.CheckoutResult, error)
	ParseWebhook(payload []byte, signature string) (*payment.WebhookEvent, error)
}
