package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

func TestAuthHandler_IssueToken_Success(t *testing.T) {
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, req ports.TokenRequest) (string, error) {
			if req.Claims["email"] != "alice@example.com" {
				t.Fatalf("unexpected claims: %+v", req.Claims)
			}
			if _, ok := req.Claims["password"]; ok {
				t.Fatalf("password must not be forwarded as a claim")
			}
			if req.Password != "secret" {
				t.Fatalf("expected password to be passed separately, got %q", req.Password)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub, "claim")

	c, rec := newTestContext(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"alice@example.com","password":"secret","name":"Alice"}`))

	if err := h.IssueToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_IssueToken_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, req ports.TokenRequest) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub, "claim")

	c, _ := newTestContext(http.MethodPost, "/jwt", strings.NewReader("{"))

	err := h.IssueToken(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_IssueToken_ServiceError(t *testing.T) {
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, req ports.TokenRequest) (string, error) {
			return "", domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(stub, "registered")

	c, rec := newTestContext(http.MethodPost, "/jwt", strings.NewReader(`{"email":"ghost@example.com"}`))

	if err := h.IssueToken(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler must not write a body on error")
	}
}
