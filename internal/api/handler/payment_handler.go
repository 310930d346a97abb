package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/metrics"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntent handles POST /create-payment-intent.
//
// @Summary      Create a payment intent
// @Description  price is a decimal amount in the configured currency with at most two decimals.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentIntentRequest   true  "Price"
// @Success      200   {object}  paymentIntentResponse
// @Failure      401   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("invalid_price").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !req.Price.Valid {
		metrics.PaymentIntentsTotal.WithLabelValues("invalid_price").Inc()
		return domain.ErrInvalidPrice
	}

	secret, err := h.service.CreatePaymentIntent(c.Request().Context(), req.Price.Decimal)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues(paymentResult(err)).Inc()
		return err
	}
	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}

func paymentResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, domain.ErrPaymentUnavailable):
		return "unavailable"
	default:
		return "failed"
	}
}
