package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDailySummary handles the per-product intake summary over a date range.
// Dates are shop-local calendar days; both default to today.
func (h *DashboardHandler) GetDailySummary(c *gin.Context) {
	today := time.Now().In(time.FixedZone("UTC+7", 7*60*60)).Format("2006-01-02")
	startDate := c.DefaultQuery("start_date", today)
	endDate := c.DefaultQuery("end_date", startDate)

	summary, err := h.dashboardService.GetDailySummary(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summary retrieved successfully", summary)
}
