package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/metrics"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	policy      string
}

// NewAuthHandler wires the token issuer. policy only labels metrics.
func NewAuthHandler(authService ports.AuthService, policy string) *AuthHandler {
	return &AuthHandler{authService: authService, policy: policy}
}

// IssueToken signs an access token for the posted claim object.
//
// @Summary      Issue an access token
// @Description  Signs the posted claims (which must include email) for one hour. Depending on the server policy the email must be registered or a password must match.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Claims, at least {\"email\": \"...\"}"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	password, _ := body["password"].(string)
	delete(body, "password")

	token, err := h.authService.IssueToken(c.Request().Context(), ports.TokenRequest{
		Claims:   body,
		Password: password,
	})
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues(h.policy).Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
