package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"github.com/sefazor/shootbook-backend/pkg/bcrypt"
	"github.com/sefazor/shootbook-backend/pkg/jwt"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo *repository.UserRepository
	hasher   *bcrypt.Hasher
	tokens   *jwt.Manager
	mailer   Mailer
	logger   *zap.Logger
}

func NewAuthService(
	userRepo *repository.UserRepository,
	hasher *bcrypt.Hasher,
	tokens *jwt.Manager,
	mailer Mailer,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger.Named("auth"),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Email kontrolü
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RolePhotographer {
		return nil, validationError("role must be customer or photographer")
	}

	hashedPassword, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    email,
		Password: hashedPassword,
		Phone:    req.Phone,
		Role:     role,
	}

	if role == models.RolePhotographer {
		// Profil varsayılan C seviyesiyle açılır, admin sonradan değiştirir
		profile := &models.Photographer{
			DisplayName: user.FullName,
			Specialty:   models.SpecialtyPhotographer,
			Grade:       models.GradeC,
			IsActive:    true,
		}
		err = s.userRepo.CreateWithPhotographer(ctx, user, profile)
	} else {
		err = s.userRepo.Create(ctx, user)
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	go func(email, name string) {
		if err := s.mailer.SendWelcomeEmail(email, name); err != nil {
			s.logger.Warn("welcome email failed", zap.String("email", email), zap.Error(err))
		}
	}(user.Email, user.FullName)

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if err := s.hasher.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
