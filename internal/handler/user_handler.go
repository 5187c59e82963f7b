package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/controller"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/pkg/utils"
)

type UserHandler struct {
	userController *controller.UserController
	validator      *utils.Validator
}

func NewUserHandler(userController *controller.UserController, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userController: userController,
		validator:      validator,
	}
}

func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.userController.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(user, ""))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.ChangePasswordRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	if err := h.userController.ChangePassword(c.UserContext(), userID, req); err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password changed successfully"))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req models.UpdateProfileRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	updatedUser, err := h.userController.UpdateProfile(c.UserContext(), userID, req)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(updatedUser, "Profile updated successfully"))
}
