package controller

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (c *UserController) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return c.userService.GetUserByID(ctx, id)
}

func (c *UserController) ChangePassword(ctx context.Context, userID uint, req models.ChangePasswordRequest) error {
	return c.userService.ChangePassword(ctx, userID, req)
}

func (c *UserController) UpdateProfile(ctx context.Context, userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	return c.userService.UpdateProfile(ctx, userID, req)
}
