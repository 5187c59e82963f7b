package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/booking"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/utils"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *utils.Validator
}

func NewCartHandler(cartService *service.CartService, validator *utils.Validator) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

// respond her sepet uç noktası adımlar ve toplamla birlikte aynı şekli döner
func respond(c *fiber.Ctx, cart *booking.Cart, err error) error {
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(models.NewCartResponse(cart), ""))
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	cart, err := h.cartService.Get(c.UserContext(), userID)
	return respond(c, cart, err)
}

func (h *CartHandler) SetType(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.SetBookingTypeRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	cart, err := h.cartService.SetType(c.UserContext(), userID, req.Type)
	return respond(c, cart, err)
}

func (h *CartHandler) SetLocation(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.SetLocationRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	cart, err := h.cartService.SetLocation(c.UserContext(), userID, req.LocationID)
	return respond(c, cart, err)
}

func (h *CartHandler) SetDate(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.SetDateRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	cart, err := h.cartService.SetDate(c.UserContext(), userID, req.Date)
	return respond(c, cart, err)
}

func (h *CartHandler) SetRentalDays(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.SetRentalDaysRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	cart, err := h.cartService.SetRentalDays(c.UserContext(), userID, req.Days)
	return respond(c, cart, err)
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.AddCartItemRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	cart, err := h.cartService.AddItem(c.UserContext(), userID, req)
	return respond(c, cart, err)
}

// UpdateItem PUT /cart/items/:kind/:refId
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	refID, ok := paramID(c, "refId")
	if !ok {
		return badID(c, "item")
	}
	var req models.UpdateCartItemRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	cart, err := h.cartService.UpdateItem(c.UserContext(), userID, c.Params("kind"), refID, req.Quantity)
	return respond(c, cart, err)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	refID, ok := paramID(c, "refId")
	if !ok {
		return badID(c, "item")
	}
	cart, err := h.cartService.RemoveItem(c.UserContext(), userID, c.Params("kind"), refID)
	return respond(c, cart, err)
}

func (h *CartHandler) Next(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	cart, err := h.cartService.Next(c.UserContext(), userID)
	return respond(c, cart, err)
}

func (h *CartHandler) Back(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	cart, err := h.cartService.Back(c.UserContext(), userID)
	return respond(c, cart, err)
}

func (h *CartHandler) GoTo(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.GoToStepRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	cart, err := h.cartService.GoTo(c.UserContext(), userID, req.Step)
	return respond(c, cart, err)
}

func (h *CartHandler) Reset(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	cart, err := h.cartService.Reset(c.UserContext(), userID)
	return respond(c, cart, err)
}

func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.CheckoutRequest
	if len(c.Body()) > 0 {
		if msg := bindBody(c, h.validator, &req); msg != "" {
			return badRequest(c, msg)
		}
	}
	b, err := h.cartService.Checkout(c.UserContext(), userID, req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(b, "Booking created"))
}
