package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /reviews.
//
// @Summary      Post a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      reviewRequest  true  "Review"
// @Success      200   {object}  domain.InsertResult
// @Failure      422   {object}  messageResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Create(c.Request().Context(), &domain.Review{
		ProductID:     req.ProductID,
		ReviewerName:  req.ReviewerName,
		ReviewerImage: req.ReviewerImage,
		ReviewerEmail: req.ReviewerEmail,
		Description:   req.ReviewDescription,
		Rating:        req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// ListByProduct handles GET /review/:id.
//
// @Summary      Reviews of a product
// @Tags         reviews
// @Produce      json
// @Param        id   path   string  true  "Listing id"
// @Success      200  {array}  domain.Review
// @Router       /review/{id} [get]
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	items, err := h.service.ListByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
