package payment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
	EventAsyncPaymentFail  = "checkout.session.async_payment_failed"
)

type CheckoutParams struct {
	CustomerEmail string
	Reference     string
	Description   string
	Amount        float64
	Metadata      map[string]string
}

type CheckoutResult struct {
	SessionID string
	URL       string
}

// WebhookEvent servis katmanının ihtiyaç duyduğu alanlar
type WebhookEvent struct {
	Type      string
	SessionID string
	Reference string
	Metadata  map[string]string
}

type StripeService struct {
	api           *client.API
	webhookSecret string
	currency      string
	successURL    string
	cancelURL     string
}

func NewStripeService(cfg *config.Config) *StripeService {
	return &StripeService{
		api:           client.New(cfg.Stripe.SecretKey, nil),
		webhookSecret: cfg.Stripe.WebhookSecret,
		currency:      cfg.Stripe.Currency,
		successURL:    cfg.Stripe.SuccessURL,
		cancelURL:     cfg.Stripe.CancelURL,
	}
}

func (s *StripeService) CreateCheckoutSession(p CheckoutParams) (*CheckoutResult, error) {
	params := &stripe.CheckoutSessionParams{
		CustomerEmail:     stripe.String(p.CustomerEmail),
		ClientReferenceID: stripe.String(p.Reference),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(s.currency),
					UnitAmount: stripe.Int64(ToMinorUnits(p.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Booking " + p.Reference),
						Description: stripe.String(p.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}

	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutResult{SessionID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhook imzayı doğrular ve checkout event'ini çözer
func (s *StripeService) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		return nil, fmt.Errorf("invalid webhook signature: %w", err)
	}

	out := &WebhookEvent{Type: string(event.Type)}
	switch out.Type {
	case EventCheckoutCompleted, EventCheckoutExpired, EventAsyncPaymentFail:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}
		out.SessionID = sess.ID
		out.Reference = sess.ClientReferenceID
		out.Metadata = sess.Metadata
	}
	return out, nil
}

// ToMinorUnits tutarı kuruş cinsine çevirir
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
