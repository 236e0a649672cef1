package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/application/service"
	"github.com/salimdiab/pos-console/internal/session"
)

// DashboardHandler handles the sales metrics screens.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	sess             *session.Session
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService *service.DashboardService, sess *session.Session) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, sess: sess}
}

// Show renders the dashboard.
func (h *DashboardHandler) Show(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		failPage(c, h.sess, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard", view(c, h.sess, "dashboard", gin.H{"Stats": stats}))
}

// Profit renders the per-product profit breakdown.
func (h *DashboardHandler) Profit(c *gin.Context) {
	report, err := h.dashboardService.ProfitReport(c.Request.Context())
	if err != nil {
		failPage(c, h.sess, err)
		return
	}
	c.HTML(http.StatusOK, "profit", view(c, h.sess, "profit", gin.H{"Report": report}))
}
