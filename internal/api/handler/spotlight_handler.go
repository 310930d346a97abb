package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/metrics"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/middleware"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// SpotlightHandler serves the featured collection.
type SpotlightHandler struct {
	service ports.SpotlightService
}

func NewSpotlightHandler(service ports.SpotlightService) *SpotlightHandler {
	return &SpotlightHandler{service: service}
}

// Create handles POST /featured.
//
// @Summary      Add a featured product
// @Description  The caller may supply _id; a UUID is generated otherwise.
// @Tags         featured
// @Accept       json
// @Produce      json
// @Param        body  body      spotlightRequest  true  "Featured entry"
// @Success      200   {object}  domain.InsertResult
// @Failure      409   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /featured [post]
func (h *SpotlightHandler) Create(c echo.Context) error {
	var req spotlightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /featured.
//
// @Summary      Featured products, newest first
// @Tags         featured
// @Produce      json
// @Success      200  {array}  domain.Spotlight
// @Router       /featured [get]
func (h *SpotlightHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Upvote handles PATCH /product/feature-upvote/:id.
//
// @Summary      Upvote a featured product
// @Tags         featured
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Featured id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /product/feature-upvote/{id} [patch]
func (h *SpotlightHandler) Upvote(c echo.Context) error {
	res, err := h.service.Upvote(c.Request().Context(), c.Param("id"), middleware.CallerEmail(c))
	if err != nil {
		countRejectedUpvote("spotlight", err)
		return err
	}
	metrics.UpvotesTotal.WithLabelValues("spotlight").Inc()
	return c.JSON(http.StatusOK, res)
}

// Update handles PUT /featured/update/:id.
//
// @Summary      Upsert a featured product
// @Tags         featured
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Featured id"
// @Param        body  body      updateSpotlightRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  messageResponse
// @Router       /featured/update/{id} [put]
func (h *SpotlightHandler) Update(c echo.Context) error {
	var req updateSpotlightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /featured/:id.
//
// @Summary      Remove a featured product
// @Tags         featured
// @Produce      json
// @Param        id   path      string  true  "Featured id"
// @Success      200  {object}  domain.DeleteResult
// @Router       /featured/{id} [delete]
func (h *SpotlightHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
