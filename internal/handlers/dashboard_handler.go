package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// @Summary      Dashboard statistics
// @Description  Lead counts per status and commission totals for the year
// @Tags         Dashboard
// @Produce      json
// @Param        year  query     int  false  "Commission year (default: current)"
// @Success      200   {object}  services.DashboardStats
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	stats, err := h.Service.Stats(year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
