package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// Context keys set by Auth.
const (
	ContextKeyEmail  = "email"
	ContextKeyClaims = "claims"
)

// Auth validates the bearer token and injects its claims and the caller's
// email into the context. Tokens must be HS256, unexpired and carry exp.
func Auth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return domain.ErrUnauthorized
			}

			claims := jwt.MapClaims{}
			tkn, err := parser.ParseWithClaims(parts[1], claims, func(*jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrUnauthorized
			}

			email, _ := claims["email"].(string)
			if email == "" {
				return domain.ErrUnauthorized
			}

			c.Set(ContextKeyClaims, claims)
			c.Set(ContextKeyEmail, email)
			return next(c)
		}
	}
}

// CallerEmail returns the email Auth stored, or "" on unauthenticated routes.
func CallerEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeyEmail).(string)
	return email
}
