package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/presentation/http/dto/response"
)

// CarLicenseHandler handles car license plate HTTP requests
type CarLicenseHandler struct {
	carLicenseService *service.CarLicenseService
}

// NewCarLicenseHandler creates a new car license handler
func NewCarLicenseHandler(carLicenseService *service.CarLicenseService) *CarLicenseHandler {
	return &CarLicenseHandler{carLicenseService: carLicenseService}
}

// Create handles registering a plate for a farmer. Re-registering an existing
// plate returns the stored one instead of creating a duplicate.
func (h *CarLicenseHandler) Create(c *gin.Context) {
	var req struct {
		FarmerID string `json:"farmer_id" binding:"required,uuid"`
		Plate    string `json:"plate" binding:"required"`
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

	license, err := h.carLicenseService.CreateCarLicense(c.Request.Context(), &service.CreateCarLicenseInput{
		FarmerID: farmerID,
		Plate:    req.Plate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Car license registered successfully", license)
}

// ListByFarmer handles listing a farmer's plates, most recently used first
func (h *CarLicenseHandler) ListByFarmer(c *gin.Context) {
	farmerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid farmer ID")
		return
	}

	licenses, err := h.carLicenseService.ListCarLicensesByFarmer(c.Request.Context(), farmerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Car licenses retrieved successfully", licenses)
}
