package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/response"
)

// MaintenanceHandler handles maintenance HTTP requests
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// Sweep runs one retention sweep batch over stale pending groups. The
// scheduler runs the same sweep on a cron; this endpoint exists for manual
// cleanup and inspection.
func (h *MaintenanceHandler) Sweep(c *gin.Context) {
	result, err := h.maintenanceService.Sweep(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Retention sweep completed", result)
}
