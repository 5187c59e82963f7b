package payment

import (
	"testing"
	"time"

	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74/webhook"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(114150), ToMinorUnits(1141.5))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}

func TestStripeService_ParseWebhook(t *testing.T) {
	cfg := &config.Config{}
	cfg.Stripe.WebhookSecret = "whsec_test"
	svc := NewStripeService(cfg)

	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_123", "object": "checkout.session", "client_reference_id": "BK-1", "metadata": {"booking_id": "9"}}}
	}`)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    "whsec_test",
		Timestamp: time.Now(),
	})

	event, err := svc.ParseWebhook(signed.Payload, signed.Header)
	require.NoError(t, err)
	assert.Equal(t, EventCheckoutCompleted, event.Type)
	assert.Equal(t, "cs_123", event.SessionID)
	assert.Equal(t, "BK-1", event.Reference)
	assert.Equal(t, "9", event.Metadata["booking_id"])

	_, err = svc.ParseWebhook(payload, "t=1,v1=bad")
	assert.Error(t, err)
}
