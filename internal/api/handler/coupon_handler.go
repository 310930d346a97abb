package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type CouponHandler struct {
	service ports.CouponService
}

func NewCouponHandler(service ports.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

// Create handles POST /add-coupon.
//
// @Summary      Create a coupon
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        body  body      couponRequest  true  "Coupon"
// @Success      200   {object}  domain.InsertResult
// @Failure      422   {object}  messageResponse
// @Router       /add-coupon [post]
func (h *CouponHandler) Create(c echo.Context) error {
	var req couponRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	coupon := &domain.Coupon{
		CouponCode:  req.CouponCode,
		ExpiryDate:  req.ExpiryDate,
		Description: req.CouponDescription,
	}
	if req.DiscountAmount != nil {
		coupon.DiscountAmount = *req.DiscountAmount
	}
	res, err := h.service.Create(c.Request().Context(), coupon)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /coupons.
//
// @Summary      List coupons
// @Tags         coupons
// @Produce      json
// @Success      200  {array}  domain.Coupon
// @Router       /coupons [get]
func (h *CouponHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Update handles PUT /coupon/:id.
//
// @Summary      Upsert a coupon
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Coupon id"
// @Param        body  body      couponRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  messageResponse
// @Router       /coupon/{id} [put]
func (h *CouponHandler) Update(c echo.Context) error {
	var req couponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	res, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.CouponUpdate{
		CouponCode:     req.CouponCode,
		ExpiryDate:     req.ExpiryDate,
		Description:    req.CouponDescription,
		DiscountAmount: req.DiscountAmount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /coupon/:id.
//
// @Summary      Delete a coupon
// @Tags         coupons
// @Produce      json
// @Param        id   path      string  true  "Coupon id"
// @Success      200  {object}  domain.DeleteResult
// @Router       /coupon/{id} [delete]
func (h *CouponHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
