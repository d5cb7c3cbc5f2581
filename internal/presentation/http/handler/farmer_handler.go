package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/response"
	"github.com/supthawee/farmgate-api/pkg/pagination"
)

// FarmerHandler handles farmer and employee HTTP requests
type FarmerHandler struct {
	farmerService *service.FarmerService
}

// NewFarmerHandler creates a new farmer handler
func NewFarmerHandler(farmerService *service.FarmerService) *FarmerHandler {
	return &FarmerHandler{farmerService: farmerService}
}

// List handles listing farmers
func (h *FarmerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.farmerService.ListFarmers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Farmers retrieved successfully", result)
}

// ListWithEmployees handles listing all farmers with their employees preloaded,
// the shape the transaction editor's picker consumes
func (h *FarmerHandler) ListWithEmployees(c *gin.Context) {
	farmers, err := h.farmerService.ListFarmersWithEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Farmers retrieved successfully", farmers)
}

// Create handles creating a farmer
func (h *FarmerHandler) Create(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	farmer, err := h.farmerService.CreateFarmer(c.Request.Context(), &service.CreateFarmerInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Farmer created successfully", farmer)
}

// Get handles getting a single farmer
func (h *FarmerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid farmer ID")
		return
	}

	farmer, err := h.farmerService.GetFarmer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Farmer retrieved successfully", farmer)
}

// Update handles updating a farmer
func (h *FarmerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid farmer ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	farmer, err := h.farmerService.UpdateFarmer(c.Request.Context(), &service.UpdateFarmerInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Farmer updated successfully", farmer)
}

// Delete handles deleting a farmer
func (h *FarmerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid farmer ID")
		return
	}

	if err := h.farmerService.DeleteFarmer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// EmployeeHandler handles employee HTTP requests
type EmployeeHandler struct {
	farmerService *service.FarmerService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(farmerService *service.FarmerService) *EmployeeHandler {
	return &EmployeeHandler{farmerService: farmerService}
}

// List handles listing employees across all farmers
func (h *EmployeeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.farmerService.ListEmployees(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// ListByFarmer handles listing employees of one farmer
func (h *EmployeeHandler) ListByFarmer(c *gin.Context) {
	farmerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid farmer ID")
		return
	}

	employees, err := h.farmerService.ListEmployeesByFarmer(c.Request.Context(), farmerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employees retrieved successfully", employees)
}

// Create handles creating an employee under a farmer
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req struct {
		FarmerID string  `json:"farmer_id" binding:"required,uuid"`
		Name     string  `json:"name" binding:"required"`
		Address  *string `json:"address"`
		Phone    *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		response.BadRequest(c, "Invalid farmer ID")
		return
	}

	employee, err := h.farmerService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		FarmerID: farmerID,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// Get handles getting a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.farmerService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// Update handles updating an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.farmerService.UpdateEmployee(c.Request.Context(), &service.UpdateEmployeeInput{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles deleting an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.farmerService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
