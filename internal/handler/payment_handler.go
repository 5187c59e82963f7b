package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/controller"
	"github.com/sefazor/shootbook-backend/internal/models"
)

type PaymentHandler struct {
	paymentController *controller.PaymentController
}

func NewPaymentHandler(paymentController *controller.PaymentController) *PaymentHandler {
	return &PaymentHandler{
		paymentController: paymentController,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	bookingID, ok := paramID(c, "id")
	if !ok {
		return badID(c, "booking")
	}

	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	session, err := h.paymentController.CreateCheckoutSession(c.UserContext(), userID, bookingID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(session, "Checkout session created"))
}

// HandleStripeWebhook imza hatalarında 400 döner, Stripe tekrar denemez
func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	if err := h.paymentController.HandleStripeWebhook(c.UserContext(), c.Body(), c.Get("Stripe-Signature")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
