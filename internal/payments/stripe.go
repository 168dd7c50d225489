// Package payments wraps the payment processor.  The service only ever
// requests authorization handles (payment intents); capture, idempotency
// and retries are the processor's and the caller's responsibility.
package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// MinimumAmount is the smallest charge the processor accepts, in minor
// currency units (50 = £0.50 for GBP).
const MinimumAmount = 50

// DefaultCurrency is used when the caller does not name one.
const DefaultCurrency = "gbp"

// IntentRequest describes one payment authorization to create.  Amount is
// in minor currency units and must already be validated and rounded by
// the caller.
type IntentRequest struct {
	Amount       int64
	Currency     string
	Description  string
	ReceiptEmail string
	Metadata     map[string]string
}

// Intent is the client-usable authorization handle returned by the
// processor.  The client secret completes the payment browser-side.
type Intent struct {
	ID           string
	ClientSecret string
}

// Client talks to Stripe.  Construct one at startup and inject it into
// the handlers; it holds no per-request state.
type Client struct {
	log *slog.Logger
}

// New configures the Stripe SDK with the secret key and returns a Client.
func New(secretKey string, log *slog.Logger) (*Client, error) {
	if secretKey == "" {
		return nil, errors.New("payments: secret key is required")
	}
	if !strings.HasPrefix(secretKey, "sk_") {
		return nil, fmt.Errorf("payments: secret key must start with sk_")
	}
	stripe.Key = secretKey
	return &Client{log: log}, nil
}

// CreateIntent requests a payment intent with automatic payment method
// selection.  Processor errors are returned as-is so the handler can
// distinguish a *stripe.Error (safe to relay) from transport failures.
func (c *Client) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		c.log.Error("payment intent creation failed",
			"amount", req.Amount, "currency", currency, "error", err)
		return nil, err
	}

	c.log.Info("payment intent created",
		"intent_id", pi.ID, "amount", req.Amount, "currency", currency)
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
