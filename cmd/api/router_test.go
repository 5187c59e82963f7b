package main

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/sefazor/shootbook-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_UnknownAndProtectedPaths(t *testing.T) {
	cfg := &config.Config{CORSOrigins: "http://localhost:3000", RateLimit: 100}
	app := NewFiberApp(cfg, jwt.NewManager("router-secret", "shootbook-test", time.Hour), &Handlers{})

	cases := []struct {
		method, path string
		status       int
	}{
		{"GET", "/health", fiber.StatusOK},
		{"GET", "/api/nope", fiber.StatusNotFound},
		{"POST", "/api/catalog/unknown", fiber.StatusNotFound},
		{"GET", "/nope", fiber.StatusNotFound},
		{"GET", "/api/cart", fiber.StatusUnauthorized},
		{"GET", "/api/notifications", fiber.StatusUnauthorized},
		{"GET", "/api/admin/bookings", fiber.StatusUnauthorized},
		{"GET", "/api/dashboard/profile", fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, "%s %s", tc.method, tc.path)
		resp.Body.Close()
	}
}
