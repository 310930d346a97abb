// Package payment adapts the Stripe PaymentIntents API to ports.PaymentGateway.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway for the given secret key. backends may be
// nil to use Stripe's production endpoints.
func NewStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// CreatePaymentIntent creates an intent with automatic payment methods and
// returns its client secret. No retries are attempted.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}
	return pi.ClientSecret, nil
}
