package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentGateway is the external payment processor.
type PaymentGateway interface {
	// CreatePaymentIntent returns the client secret the browser confirms with.
	CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error)
}
