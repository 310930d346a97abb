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

func TestAccountHandler_Create(t *testing.T) {
	tests := []struct {
		name     string
		result   *ports.CreateAccountResult
		wantBody string
	}{
		{
			name:     "new account",
			result:   &ports.CreateAccountResult{Insert: &domain.InsertResult{Acknowledged: true, InsertedID: "abc"}},
			wantBody: `{"acknowledged":true,"insertedId":"abc"}`,
		},
		{
			name:     "existing account is a soft success",
			result:   &ports.CreateAccountResult{Existed: true},
			wantBody: `{"message":"User already exists!!"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAccountService{
				createFn: func(ctx context.Context, in ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
					if in.Email != "a@example.com" || in.Name != "Alice" {
						t.Fatalf("unexpected input: %+v", in)
					}
					return tt.result, nil
				},
			}
			h := NewAccountHandler(stub)

			c, rec := newTestContext(http.MethodPost, "/users",
				strings.NewReader(`{"name":"Alice","email":"a@example.com","photo":"p.png"}`))

			if err := h.Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Fatalf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

func TestAccountHandler_Create_InvalidEmail(t *testing.T) {
	stub := &stubAccountService{
		createFn: func(ctx context.Context, in ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/users", strings.NewReader(`{"email":"not-an-email"}`))

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, "email") {
		t.Fatalf("expected message to name the json field, got %v", he.Message)
	}
}

func TestAccountHandler_Role(t *testing.T) {
	stub := &stubAccountService{
		roleFn: func(ctx context.Context, email string) (domain.Role, bool, error) {
			if email == "admin@example.com" {
				return domain.RoleAdmin, true, nil
			}
			return "", false, nil
		},
	}
	h := NewAccountHandler(stub)

	for email, want := range map[string]string{
		"admin@example.com": `{"role":"Admin"}`,
		"ghost@example.com": `{}`,
	} {
		c, rec := newTestContext(http.MethodGet, "/user/role/"+email, nil)
		c.SetParamNames("email")
		c.SetParamValues(email)

		if err := h.Role(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != want {
			t.Fatalf("%s: body = %s, want %s", email, got, want)
		}
	}
}

func TestAccountHandler_MakeModerator(t *testing.T) {
	var gotRole domain.Role
	stub := &stubAccountService{
		promoteFn: func(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
			if id != "507f1f77bcf86cd799439011" {
				t.Fatalf("unexpected id %q", id)
			}
			gotRole = role
			return okUpdate, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(http.MethodPatch, "/users/moderator/507f1f77bcf86cd799439011", nil)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := h.MakeModerator(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotRole != domain.RoleModerator {
		t.Fatalf("expected Moderator, got %q", gotRole)
	}

	var resp domain.UpdateResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ModifiedCount != 1 {
		t.Fatalf("unexpected result: %+v", resp)
	}
}
