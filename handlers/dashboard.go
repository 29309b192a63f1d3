package handlers

import (
	"net/http"

	"medonrent/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate stats payload.
type DashboardHandler struct {
	Service dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
