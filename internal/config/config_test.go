package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shootbook")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_TTL", "not-a-duration")
	t.Setenv("REDIS_DB", "x")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 30*24*time.Hour, cfg.Redis.CartTTL)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Contains(t, cfg.Stripe.SuccessURL, "{CHECKOUT_SESSION_ID}")
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadConfig_RequiresDatabaseAndSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/shootbook")
	t.Setenv("JWT_SECRET", "")

	_, err = LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
