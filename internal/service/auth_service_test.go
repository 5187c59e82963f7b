package service

import (
	"context"
	"testing"
	"time"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.auth.Register(ctx, models.RegisterRequest{
		FullName: "  Ada Lovelace ",
		Email:    "Ada@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Ada Lovelace", resp.User.FullName)
	assert.Equal(t, models.RoleCustomer, resp.User.Role)
	assert.NotEqual(t, "secret123", resp.User.Password)
	assert.Nil(t, resp.User.Photographer)

	assert.Eventually(t, func() bool { return env.mailer.has("welcome:ada@example.com") }, time.Second, 10*time.Millisecond)

	_, err = env.auth.Register(ctx, models.RegisterRequest{FullName: "Dup", Email: "ada@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.auth.Register(ctx, models.RegisterRequest{FullName: "Root", Email: "root@example.com", Password: "secret123", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_RegisterPhotographerCreatesProfile(t *testing.T) {
	env := newTestEnv(t)

	u := env.register(t, "Cem Lens", "cem@example.com", models.RolePhotographer)
	require.NotNil(t, u.Photographer)
	assert.Equal(t, "Cem Lens", u.Photographer.DisplayName)
	assert.Equal(t, models.GradeC, u.Photographer.Grade)

	p, err := env.photographers.GetMine(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Photographer.ID, p.ID)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "Ada", "ada@example.com", models.RoleCustomer)

	resp, err := env.auth.Login(ctx, models.LoginRequest{Email: "ADA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = env.auth.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.auth.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserService_ProfileAndPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.register(t, "Ada", "ada@example.com", models.RoleCustomer)

	updated, err := env.users.UpdateProfile(ctx, u.ID, models.UpdateProfileRequest{FullName: "Ada L.", Phone: "+905551112233"})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.FullName)

	err = env.users.ChangePassword(ctx, u.ID, models.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "another1"})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, env.users.ChangePassword(ctx, u.ID, models.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "another1"}))
	_, err = env.auth.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "another1"})
	assert.NoError(t, err)

	_, err = env.users.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
