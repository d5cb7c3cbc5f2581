package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/response"
)

// SplitDefaultHandler handles remembered split default HTTP requests
type SplitDefaultHandler struct {
	splitDefaultService *service.SplitDefaultService
}

// NewSplitDefaultHandler creates a new split default handler
func NewSplitDefaultHandler(splitDefaultService *service.SplitDefaultService) *SplitDefaultHandler {
	return &SplitDefaultHandler{splitDefaultService: splitDefaultService}
}

// List handles listing remembered defaults, optionally filtered by employee
func (h *SplitDefaultHandler) List(c *gin.Context) {
	if employeeIDStr := c.Query("employee_id"); employeeIDStr != "" {
		employeeID, err := uuid.Parse(employeeIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid employee ID")
			return
		}

		defaults, err := h.splitDefaultService.ListByEmployee(c.Request.Context(), employeeID)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, "Split defaults retrieved successfully", defaults)
		return
	}

	defaults, err := h.splitDefaultService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Split defaults retrieved successfully", defaults)
}

// Lookup handles fetching the remembered default for one employee and
// product pair. Returns 200 with null data when no default is stored.
func (h *SplitDefaultHandler) Lookup(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	def, err := h.splitDefaultService.Lookup(c.Request.Context(), employeeID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Split default retrieved successfully", def)
}

// Update handles editing a remembered default
func (h *SplitDefaultHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid split default ID")
		return
	}

	var req struct {
		SplitMode           *enum.SplitMode       `json:"split_mode"`
		IsHarvestRate       *bool                 `json:"is_harvest_rate"`
		HarvestRate         *float64              `json:"harvest_rate"`
		FarmerRatio         *float64              `json:"farmer_ratio"`
		EmployeeRatio       *float64              `json:"employee_ratio"`
		IsTransportationFee *bool                 `json:"is_transportation_fee"`
		TransportationFee   *float64              `json:"transportation_fee"`
		PromotionTarget     *enum.PromotionTarget `json:"promotion_target"`
		PromotionRate       *float64              `json:"promotion_rate"`
		FarmerPaidType      *enum.PaidType        `json:"farmer_paid_type"`
		EmployeePaidType    *enum.PaidType        `json:"employee_paid_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	def, err := h.splitDefaultService.UpdateSplitDefault(c.Request.Context(), &service.UpdateSplitDefaultInput{
		ID:                  id,
		SplitMode:           req.SplitMode,
		IsHarvestRate:       req.IsHarvestRate,
		HarvestRate:         req.HarvestRate,
		FarmerRatio:         req.FarmerRatio,
		EmployeeRatio:       req.EmployeeRatio,
		IsTransportationFee: req.IsTransportationFee,
		TransportationFee:   req.TransportationFee,
		PromotionTarget:     req.PromotionTarget,
		PromotionRate:       req.PromotionRate,
		FarmerPaidType:      req.FarmerPaidType,
		EmployeePaidType:    req.EmployeePaidType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Split default updated successfully", def)
}

// Delete handles removing a remembered default
func (h *SplitDefaultHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid split default ID")
		return
	}

	if err := h.splitDefaultService.DeleteSplitDefault(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
