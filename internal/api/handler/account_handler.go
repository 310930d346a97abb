package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

const msgUserExists = "User already exists!!"

type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /users.
//
// @Summary      Register an account
// @Description  Creates a User-role account. An email that already exists yields a 200 with a message instead of an error.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Profile"
// @Success      200   {object}  domain.InsertResult
// @Failure      422   {object}  messageResponse
// @Router       /users [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.Create(c.Request().Context(), ports.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Photo:    req.Photo,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	if res.Existed {
		return c.JSON(http.StatusOK, messageResponse{Message: msgUserExists})
	}
	return c.JSON(http.StatusOK, res.Insert)
}

// Role handles GET /user/role/:email. Unknown emails get an empty object.
//
// @Summary      Get an account's role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  roleResponse
// @Router       /user/role/{email} [get]
func (h *AccountHandler) Role(c echo.Context) error {
	role, ok, err := h.service.Role(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusOK, roleResponse{})
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// List handles GET /users.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// MarkSubscribed handles PATCH /user/status-subscribed/:id.
//
// @Summary      Mark an account as subscribed
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /user/status-subscribed/{id} [patch]
func (h *AccountHandler) MarkSubscribed(c echo.Context) error {
	res, err := h.service.MarkSubscribed(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// MakeAdmin handles PATCH /users/admin/:id.
//
// @Summary      Promote an account to Admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/admin/{id} [patch]
func (h *AccountHandler) MakeAdmin(c echo.Context) error {
	return h.promote(c, domain.RoleAdmin)
}

// MakeModerator handles PATCH /users/moderator/:id.
//
// @Summary      Promote an account to Moderator
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/moderator/{id} [patch]
func (h *AccountHandler) MakeModerator(c echo.Context) error {
	return h.promote(c, domain.RoleModerator)
}

func (h *AccountHandler) promote(c echo.Context, role domain.Role) error {
	res, err := h.service.Promote(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
