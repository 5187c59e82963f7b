package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/controller"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/pkg/utils"
)

type AuthHandler struct {
	authController *controller.AuthController
	validator      *utils.Validator
}

func NewAuthHandler(authController *controller.AuthController, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authController: authController,
		validator:      validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	resp, err := h.authController.Register(c.UserContext(), req)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "User registered successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	resp, err := h.authController.Login(c.UserContext(), req)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}
