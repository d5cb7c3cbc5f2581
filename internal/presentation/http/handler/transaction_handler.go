package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/request"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/response"
	"github.com/supthawee/farmgate-api/pkg/pagination"
)

// TransactionHandler handles transaction group and line HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListGroups handles listing transaction groups
func (h *TransactionHandler) ListGroups(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	var status *enum.TransactionStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := enum.TransactionStatus(statusStr)
		status = &s
	}

	var farmerID *uuid.UUID
	if farmerIDStr := c.Query("farmer_id"); farmerIDStr != "" {
		id, err := uuid.Parse(farmerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid farmer ID")
			return
		}
		farmerID = &id
	}

	result, err := h.transactionService.ListGroups(c.Request.Context(), params, status, farmerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transaction groups retrieved successfully", result)
}

// CreateGroup handles opening a new pending group
func (h *TransactionHandler) CreateGroup(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	group, err := h.transactionService.CreateGroup(c.Request.Context(), &service.CreateGroupInput{
		FarmerID: req.FarmerID,
		Name:     req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction group created successfully", group)
}

// GetGroup handles getting a single group with its lines
func (h *TransactionHandler) GetGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	group, err := h.transactionService.GetGroup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction group retrieved successfully", group)
}

// UpdateGroup handles patching a group's farmer assignment and note
func (h *TransactionHandler) UpdateGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	var req request.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	group, err := h.transactionService.UpdateGroup(c.Request.Context(), &service.UpdateGroupInput{
		ID:       id,
		FarmerID: req.FarmerID,
		Name:     req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction group updated successfully", group)
}

// DeleteGroup handles deleting a group. Deleting a group that is already gone
// succeeds, so a stale editor tab cannot error out against the retention
// sweep.
func (h *TransactionHandler) DeleteGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.transactionService.DeleteGroup(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddLine handles appending an empty line to a group
func (h *TransactionHandler) AddLine(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	line, err := h.transactionService.AddLine(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Line added successfully", line)
}

// SubmitGroup handles finalizing a group. Submitting an already submitted
// group returns it unchanged.
func (h *TransactionHandler) SubmitGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	group, err := h.transactionService.SubmitGroup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction group submitted successfully", group)
}

// BroadcastHarvest handles fanning a harvest configuration out to every line
// of one product within a group
func (h *TransactionHandler) BroadcastHarvest(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	var req request.HarvestBroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	input := &service.HarvestBroadcastInput{
		GroupID:          groupID,
		ProductID:        productID,
		Enabled:          req.Enabled,
		HarvestRate:      req.HarvestRate,
		PromotionTarget:  req.PromotionTarget,
		PromotionRate:    req.PromotionRate,
		FarmerPaidType:   req.FarmerPaidType,
		EmployeePaidType: req.EmployeePaidType,
	}
	if req.EmployeeID != nil {
		employeeID, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			response.BadRequest(c, "Invalid employee ID")
			return
		}
		input.EmployeeID = &employeeID
	}

	group, err := h.transactionService.BroadcastHarvest(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Harvest settings applied successfully", group)
}

// BulkUpdateLines handles saving an array of per-line patches
func (h *TransactionHandler) BulkUpdateLines(c *gin.Context) {
	var req request.BulkUpdateLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patches := make([]service.LinePatch, 0, len(req.Lines))
	for _, l := range req.Lines {
		patches = append(patches, service.LinePatch{
			ID:                  l.ID,
			EmployeeID:          l.EmployeeID,
			ProductID:           l.ProductID,
			IsVehicle:           l.IsVehicle,
			CarLicenseID:        l.CarLicenseID,
			CarLicense:          l.CarLicense,
			WeightVehicleIn:     l.WeightVehicleIn,
			WeightVehicleOut:    l.WeightVehicleOut,
			Weight:              l.Weight,
			Price:               l.Price,
			SplitMode:           l.SplitMode,
			FarmerRatio:         l.FarmerRatio,
			EmployeeRatio:       l.EmployeeRatio,
			IsHarvestRate:       l.IsHarvestRate,
			HarvestRate:         l.HarvestRate,
			IsTransportationFee: l.IsTransportationFee,
			TransportationFee:   l.TransportationFee,
			PromotionTarget:     l.PromotionTarget,
			PromotionRate:       l.PromotionRate,
			FarmerPaidType:      l.FarmerPaidType,
			EmployeePaidType:    l.EmployeePaidType,
		})
	}

	lines, err := h.transactionService.BulkUpdateLines(c.Request.Context(), patches)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lines updated successfully", lines)
}

// DeleteLine handles deleting a line. Like group deletion, deleting a line
// that is already gone succeeds.
func (h *TransactionHandler) DeleteLine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid line ID")
		return
	}

	if err := h.transactionService.DeleteLine(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LineFeed handles the flat recent-lines feed. A cursor or limit query
// selects keyset paging for infinite scroll; page/per_page selects the
// numbered pages the table view uses.
func (h *TransactionHandler) LineFeed(c *gin.Context) {
	if cursor, limit := c.Query("cursor"), c.Query("limit"); cursor != "" || limit != "" {
		n, _ := strconv.Atoi(limit)
		params := &pagination.CursorParams{Cursor: cursor, Limit: n}

		result, err := h.transactionService.ListLineFeedCursor(c.Request.Context(), params)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.SuccessWithCursor(c, 200, "Lines retrieved successfully", result)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.transactionService.ListLineFeed(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Lines retrieved successfully", result)
}
