package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

var maxPrice = decimal.RequireFromString("999999.99")

// PaymentService turns a price into a provider payment intent.
type PaymentService struct {
	gateway  ports.PaymentGateway // nil when no provider key is configured
	currency string
	logger   zerolog.Logger
}

func NewPaymentService(gateway ports.PaymentGateway, currency string, logger zerolog.Logger) *PaymentService {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{gateway: gateway, currency: currency, logger: logger}
}

// ToMinorUnits validates price and converts it to cents without float
// rounding. Prices must be positive, at most 999999.99 and carry no more
// than two decimal places.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	if !price.IsPositive() || price.GreaterThan(maxPrice) {
		return 0, domain.ErrInvalidPrice
	}
	cents := price.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, domain.ErrInvalidPrice
	}
	return cents.IntPart(), nil
}

// CreatePaymentIntent returns the client secret of a new intent.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	amount, err := ToMinorUnits(price)
	if err != nil {
		return "", err
	}
	if s.gateway == nil {
		return "", domain.ErrPaymentUnavailable
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Str("currency", s.currency).Msg("payment intent failed")
		if errors.Is(err, domain.ErrPaymentFailed) || errors.Is(err, domain.ErrPaymentUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("create payment intent: %w: %v", domain.ErrPaymentFailed, err)
	}
	s.logger.Info().Int64("amount", amount).Str("currency", s.currency).Msg("payment intent created")
	return secret, nil
}
