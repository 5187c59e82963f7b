package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/utils"
)

type PhotographerHandler struct {
	photographerService *service.PhotographerService
	validator           *utils.Validator
}

func NewPhotographerHandler(photographerService *service.PhotographerService, validator *utils.Validator) *PhotographerHandler {
	return &PhotographerHandler{
		photographerService: photographerService,
		validator:           validator,
	}
}

// List ?specialty=&location_id=&grade=&date=2006-01-02
func (h *PhotographerHandler) List(c *fiber.Ctx) error {
	filter := models.PhotographerFilter{
		Specialty: models.Specialty(strings.ToLower(c.Query("specialty"))),
		Grade:     models.Grade(strings.ToUpper(c.Query("grade"))),
	}
	if raw := c.Query("location_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return badID(c, "location")
		}
		filter.LocationID = uint(id)
	}
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			return badRequest(c, "date must be in YYYY-MM-DD format")
		}
		filter.Date = &d
	}

	list, err := h.photographerService.List(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(list, int64(len(list)), ""))
}

func (h *PhotographerHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "photographer")
	}
	p, err := h.photographerService.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(p, ""))
}

func (h *PhotographerHandler) GetMine(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	p, err := h.photographerService.GetMine(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(p, ""))
}

func (h *PhotographerHandler) UpdateMine(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.UpdatePhotographerRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	p, err := h.photographerService.UpdateMine(c.UserContext(), userID, req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(p, "Profile updated successfully"))
}

func (h *PhotographerHandler) AssignGrade(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "photographer")
	}
	var req models.AssignGradeRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	p, err := h.photographerService.AssignGrade(c.UserContext(), id, req.Grade)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(p, "Grade assigned"))
}

func (h *PhotographerHandler) BlockDates(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.AvailabilityRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	if err := h.photographerService.BlockDates(c.UserContext(), userID, req); err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Dates blocked"))
}

func (h *PhotographerHandler) UnblockDates(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req models.AvailabilityRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	removed, err := h.photographerService.UnblockDates(c.UserContext(), userID, req.Dates)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(fiber.Map{"removed": removed}, "Dates unblocked"))
}

// Availability ?from=&to= verilmezse bugünden itibaren 30 gün
func (h *PhotographerHandler) Availability(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "photographer")
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)
	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(models.DateLayout, raw); err != nil {
			return badRequest(c, "from must be in YYYY-MM-DD format")
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(models.DateLayout, raw); err != nil {
			return badRequest(c, "to must be in YYYY-MM-DD format")
		}
	}

	blocked, err := h.photographerService.BlockedDates(c.UserContext(), id, from, to)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(blocked, int64(len(blocked)), ""))
}
