package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized Access!!"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden access!!"},
		{"wrapped not found", fmt.Errorf("get listing: %w", domain.ErrListingNotFound), http.StatusNotFound, "Product not found"},
		{"already upvoted", fmt.Errorf("upvote listing: %w", domain.ErrAlreadyUpvoted), http.StatusBadRequest, "You have already upvoted the product"},
		{"page out of range", fmt.Errorf("list accepted listings: %w", domain.ErrPageOutOfRange), http.StatusBadRequest, "page out of range"},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, "invalid id"},
		{"invalid status", domain.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid product status"},
		{"payment unavailable", domain.ErrPaymentUnavailable, http.StatusServiceUnavailable, "payment provider not configured"},
		{"payment failed", fmt.Errorf("%w: card declined", domain.ErrPaymentFailed), http.StatusBadGateway, "payment provider error"},
		{"echo error", echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"), http.StatusTooManyRequests, "too many requests"},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["message"] != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, body["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Body.String() != "done" {
		t.Fatalf("committed response must not be rewritten, got %q", rec.Body.String())
	}
}
