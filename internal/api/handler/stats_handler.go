package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// AdminStats handles GET /admin-stats.
//
// @Summary      Dashboard counts
// @Description  Approximate counts of users, products and reviews; may be cached for a few seconds.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.AdminStats
// @Router       /admin-stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.service.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
