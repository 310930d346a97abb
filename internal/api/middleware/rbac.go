package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// RequireRole admits the request only when the caller's stored role is one of
// allowed. The role is read from the account store on every request, so a
// demotion takes effect immediately. Must run after Auth.
func RequireRole(accounts ports.RoleReader, allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := CallerEmail(c)
			if email == "" {
				return domain.ErrUnauthorized
			}

			account, err := accounts.FindByEmail(c.Request().Context(), email)
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.ErrForbidden
			}
			if err != nil {
				return err
			}
			if _, ok := set[account.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
