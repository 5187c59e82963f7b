package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", "shootbook", time.Hour)

	token, err := m.GenerateToken(42, "ada@example.com", "photographer")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "photographer", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	m := NewManager("test-secret", "shootbook", time.Hour)

	tests := []struct {
		name  string
		other *Manager
	}{
		{name: "wrong secret", other: NewManager("other-secret", "shootbook", time.Hour)},
		{name: "wrong issuer", other: NewManager("test-secret", "someone-else", time.Hour)},
		{name: "expired", other: &Manager{secret: []byte("test-secret"), issuer: "shootbook", ttl: -time.Hour}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.other.GenerateToken(1, "a@b.co", "customer")
			require.NoError(t, err)

			_, err = m.ValidateToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
