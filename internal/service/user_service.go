package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"github.com/sefazor/shootbook-backend/pkg/bcrypt"
)

type UserService struct {
	userRepo *repository.UserRepository
	hasher   *bcrypt.Hasher
}

func NewUserService(userRepo *repository.UserRepository, hasher *bcrypt.Hasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepo(err, "user")
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, req models.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return wrapRepo(err, "user")
	}

	if err := s.hasher.ComparePassword(user.Password, req.CurrentPassword); err != nil {
		return fmt.Errorf("%w: current password is incorrect", ErrValidation)
	}

	hashedPassword, err := s.hasher.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapRepo(err, "user")
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Phone = req.Phone

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
