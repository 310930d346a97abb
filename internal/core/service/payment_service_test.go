package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type stubGateway struct {
	amount   int64
	currency string
	err      error
}

func (g *stubGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string) (string, error) {
	g.amount, g.currency = amount, currency
	if g.err != nil {
		return "", g.err
	}
	return "pi_123_secret_456", nil
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price string
		want  int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"0.01", 1, true},
		{"19.9", 1990, true},
		{"999999.99", 99999999, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"1.005", 0, false},
		{"1000000", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.price, func(t *testing.T) {
			got, err := ToMinorUnits(decimal.RequireFromString(tc.price))
			if !tc.ok {
				assert.ErrorIs(t, err, domain.ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	gw := &stubGateway{}
	svc := NewPaymentService(gw, "USD", zerolog.Nop())

	secret, err := svc.CreatePaymentIntent(context.Background(), decimal.RequireFromString("12.34"))
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
	assert.EqualValues(t, 1234, gw.amount)
	assert.Equal(t, "usd", gw.currency)
}

func TestPaymentService_NoGateway(t *testing.T) {
	svc := NewPaymentService(nil, "", zerolog.Nop())

	_, err := svc.CreatePaymentIntent(context.Background(), decimal.RequireFromString("5"))
	assert.ErrorIs(t, err, domain.ErrPaymentUnavailable)
}

func TestPaymentService_ProviderFailure(t *testing.T) {
	svc := NewPaymentService(&stubGateway{err: errors.New("card_declined")}, "usd", zerolog.Nop())

	_, err := svc.CreatePaymentIntent(context.Background(), decimal.RequireFromString("5"))
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
}
