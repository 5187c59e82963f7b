package controller

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
)

// PaymentController rezervasyon ödemelerini BookingService'e iletir
type PaymentController struct {
	bookingService *service.BookingService
}

func NewPaymentController(bookingService *service.BookingService) *PaymentController {
	return &PaymentController{
		bookingService: bookingService,
	}
}

func (c *PaymentController) CreateCheckoutSession(ctx context.Context, userID, bookingID uint) (*models.CheckoutSession, error) {
	return c.bookingService.CreatePayment(ctx, userID, bookingID)
}

func (c *PaymentController) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error {
	return c.bookingService.HandleWebhook(ctx, payload, signature)
}
