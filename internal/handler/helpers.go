package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/utils"
	"go.uber.org/zap"
)

const genericError = "Something went wrong, please try again later"

// handleError servis hatalarını HTTP durum kodlarına çevirir. Beklenmeyen
// hatalar loglanır ve istemciye genel bir mesaj döner.
func handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrUnavailable):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(status).JSON(models.ErrorResponse(genericError))
	}
	return c.Status(status).JSON(models.ErrorResponse(err.Error()))
}

// bindBody body'yi çözer ve doğrular, sorun varsa istemciye dönecek mesajı verir
func bindBody(c *fiber.Ctx, v *utils.Validator, out interface{}) string {
	if err := c.BodyParser(out); err != nil {
		return "Invalid request body"
	}
	if err := v.Struct(out); err != nil {
		return err.Error()
	}
	return ""
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msg))
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok && id != 0
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func badID(c *fiber.Ctx, what string) error {
	return badRequest(c, "Invalid "+what+" ID")
}

func queryBool(c *fiber.Ctx, key string) bool {
	v := strings.ToLower(c.Query(key))
	return v == "1" || v == "true" || v == "yes"
}
