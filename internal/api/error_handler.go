package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// errorResponse is the canonical error envelope. The web client reads
// "message".
type errorResponse struct {
	Message string `json:"message"`
}

type errorMapping struct {
	err  error
	code int
	msg  string // empty means err.Error()
}

// Order matters only where one sentinel could wrap another.
var errorMappings = []errorMapping{
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized Access!!"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, ""},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden access!!"},

	{domain.ErrListingNotFound, http.StatusNotFound, "Product not found"},
	{domain.ErrSpotlightNotFound, http.StatusNotFound, ""},
	{domain.ErrAccountNotFound, http.StatusNotFound, ""},
	{domain.ErrCouponNotFound, http.StatusNotFound, ""},

	{domain.ErrAlreadyUpvoted, http.StatusBadRequest, "You have already upvoted the product"},
	{domain.ErrInvalidID, http.StatusBadRequest, ""},
	{domain.ErrMissingEmail, http.StatusBadRequest, ""},
	{domain.ErrEmptyUpdate, http.StatusBadRequest, ""},
	{domain.ErrPageOutOfRange, http.StatusBadRequest, ""},

	{domain.ErrInvalidStatus, http.StatusUnprocessableEntity, ""},
	{domain.ErrInvalidRole, http.StatusUnprocessableEntity, ""},
	{domain.ErrInvalidPrice, http.StatusUnprocessableEntity, ""},

	{domain.ErrAccountExists, http.StatusConflict, "User already exists!!"},
	{domain.ErrSpotlightExists, http.StatusConflict, ""},

	{domain.ErrPaymentUnavailable, http.StatusServiceUnavailable, ""},
	{domain.ErrPaymentFailed, http.StatusBadGateway, ""},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, 429, timeouts).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil && he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, he.Internal)
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.code >= http.StatusInternalServerError {
				logUnhandled(log, c, err)
			}
			if m.msg != "" {
				return m.code, m.msg
			}
			return m.code, m.err.Error()
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logUnhandled(log, c, err)
		return http.StatusServiceUnavailable, "request timed out"
	}

	logUnhandled(log, c, err)
	return http.StatusInternalServerError, "internal server error"
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
