package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/metrics"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/middleware"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// ListingHandler serves the product submission routes.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Create handles POST /products.
//
// @Summary      Submit a product
// @Description  Status defaults to Pending when omitted. Upvote counters always start empty.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing"
// @Success      200   {object}  domain.InsertResult
// @Failure      401   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /products [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	l := req.toDomain()
	res, err := h.service.Create(c.Request().Context(), l)
	if err != nil {
		return err
	}
	metrics.ListingsCreatedTotal.WithLabelValues(string(l.Status)).Inc()
	return c.JSON(http.StatusOK, res)
}

// ListAll handles GET /all-products.
//
// @Summary      List every product regardless of status
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Listing
// @Router       /all-products [get]
func (h *ListingHandler) ListAll(c echo.Context) error {
	return h.list(c, h.service.ListAll)
}

// ListAccepted handles GET /products.
//
// @Summary      Page through accepted products
// @Tags         products
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 6, max 100)"
// @Param        search  query     string  false  "Case-insensitive tag search"
// @Success      200     {object}  listingPageResponse
// @Failure      400     {object}  messageResponse
// @Router       /products [get]
func (h *ListingHandler) ListAccepted(c echo.Context) error {
	var in ports.ListAcceptedInput
	if err := echo.QueryParamsBinder(c).
		Int("page", &in.Page).
		Int("limit", &in.Limit).
		String("search", &in.Search).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "page and limit must be integers")
	}

	page, err := h.service.ListAccepted(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listingPageResponse{Products: page.Products, TotalProducts: page.Total})
}

// ListReported handles GET /products/reported.
//
// @Summary      List reported products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Listing
// @Router       /products/reported [get]
func (h *ListingHandler) ListReported(c echo.Context) error {
	return h.list(c, h.service.ListReported)
}

// Trending handles GET /trending-products.
//
// @Summary      Accepted products by upvotes
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Listing
// @Router       /trending-products [get]
func (h *ListingHandler) Trending(c echo.Context) error {
	return h.list(c, h.service.Trending)
}

// ListByOwner handles GET /products/:email.
//
// @Summary      Products submitted by an owner
// @Tags         products
// @Produce      json
// @Param        email  path   string  true  "Owner email"
// @Success      200    {array}  domain.Listing
// @Router       /products/{email} [get]
func (h *ListingHandler) ListByOwner(c echo.Context) error {
	items, err := h.service.ListByOwner(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ListingHandler) list(c echo.Context, fn func(ctx context.Context) ([]domain.Listing, error)) error {
	items, err := fn(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /product/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.Listing
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /product/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	l, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}

// Accept handles PATCH /product/accept-status/:id.
//
// @Summary      Accept a product
// @Tags         moderation
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      404  {object}  messageResponse
// @Router       /product/accept-status/{id} [patch]
func (h *ListingHandler) Accept(c echo.Context) error {
	return h.moderate(c, "accept", h.service.Accept)
}

// Reject handles PATCH /product/reject-status/:id.
//
// @Summary      Reject a product
// @Tags         moderation
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      404  {object}  messageResponse
// @Router       /product/reject-status/{id} [patch]
func (h *ListingHandler) Reject(c echo.Context) error {
	return h.moderate(c, "reject", h.service.Reject)
}

// Report handles PATCH /product/report/:id.
//
// @Summary      Report a product
// @Tags         moderation
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      404  {object}  messageResponse
// @Router       /product/report/{id} [patch]
func (h *ListingHandler) Report(c echo.Context) error {
	return h.moderate(c, "report", h.service.Report)
}

// Feature handles PATCH /product/feature-true/:id.
//
// @Summary      Flag a product as featured
// @Tags         moderation
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      404  {object}  messageResponse
// @Router       /product/feature-true/{id} [patch]
func (h *ListingHandler) Feature(c echo.Context) error {
	return h.moderate(c, "feature", h.service.Feature)
}

func (h *ListingHandler) moderate(c echo.Context, action string, fn func(ctx context.Context, id string) (*domain.UpdateResult, error)) error {
	res, err := fn(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ModerationActionsTotal.WithLabelValues(action).Inc()
	return c.JSON(http.StatusOK, res)
}

// Upvote handles PATCH /product/upvote/:id.
//
// @Summary      Upvote a product
// @Description  One vote per caller email. A repeated vote is a 400.
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /product/upvote/{id} [patch]
func (h *ListingHandler) Upvote(c echo.Context) error {
	res, err := h.service.Upvote(c.Request().Context(), c.Param("id"), middleware.CallerEmail(c))
	if err != nil {
		countRejectedUpvote("listing", err)
		return err
	}
	metrics.UpvotesTotal.WithLabelValues("listing").Inc()
	return c.JSON(http.StatusOK, res)
}

// Update handles PUT /product/update/:id.
//
// @Summary      Upsert a product's descriptive fields
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Listing id"
// @Param        body  body      updateListingRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /product/update/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	var req updateListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /product/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.DeleteResult
// @Failure      400  {object}  messageResponse
// @Router       /product/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func countRejectedUpvote(target string, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyUpvoted):
		metrics.UpvotesRejectedTotal.WithLabelValues(target, "already_upvoted").Inc()
	case domain.IsNotFound(err):
		metrics.UpvotesRejectedTotal.WithLabelValues(target, "not_found").Inc()
	}
}
