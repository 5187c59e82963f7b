package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/utils"
)

type BookingHandler struct {
	bookingService *service.BookingService
	validator      *utils.Validator
}

func NewBookingHandler(bookingService *service.BookingService, validator *utils.Validator) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validator:      validator,
	}
}

func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	list, err := h.bookingService.ListMine(c.UserContext(), userID, models.BookingStatus(c.Query("status")))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(list, int64(len(list)), ""))
}

func (h *BookingHandler) GetMine(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "booking")
	}
	b, err := h.bookingService.GetMine(c.UserContext(), userID, id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(b, ""))
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "booking")
	}
	b, err := h.bookingService.CancelMine(c.UserContext(), userID, id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(b, "Booking cancelled"))
}

// QRCode rezervasyon referansını PNG olarak döner
func (h *BookingHandler) QRCode(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "booking")
	}
	png, err := h.bookingService.QRCode(c.UserContext(), userID, id, c.QueryInt("size"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *BookingHandler) ListForPhotographer(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	list, err := h.bookingService.ListForPhotographer(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(list, int64(len(list)), ""))
}

func (h *BookingHandler) AdminList(c *fiber.Ctx) error {
	filter := models.BookingFilter{
		Status: models.BookingStatus(c.Query("status")),
		UserID: uint(c.QueryInt("user_id")),
	}
	list, err := h.bookingService.AdminList(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(list, int64(len(list)), ""))
}

func (h *BookingHandler) AdminGet(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "booking")
	}
	b, err := h.bookingService.AdminGet(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(b, ""))
}

func (h *BookingHandler) AdminUpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "booking")
	}
	var req models.UpdateBookingStatusRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	b, err := h.bookingService.AdminUpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(b, "Booking status updated"))
}
