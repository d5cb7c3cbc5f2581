package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer. A failed print still returns
// 200 with a "print fail" result so the operator sees the outcome instead of
// an error page.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	result := h.printerService.TestPrint()
	response.OK(c, "Test print completed", result)
}

// PrintGroup prints the full receipt bundle for a transaction group: per-line
// farmer and employee copies plus the summary sections.
func (h *PrinterHandler) PrintGroup(c *gin.Context) {
	h.printGroup(c, false)
}

// PrintGroupSummary prints only the summary sections for a transaction group.
func (h *PrinterHandler) PrintGroupSummary(c *gin.Context) {
	h.printGroup(c, true)
}

func (h *PrinterHandler) printGroup(c *gin.Context, summaryOnly bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	// The result carries the composed sections either way; the status says
	// whether paper actually came out.
	result, err := h.printerService.PrintGroup(c.Request.Context(), groupID, *userID, summaryOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print completed", result)
}
