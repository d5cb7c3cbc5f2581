package request

import (
	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"github.com/supthawee/farmgate-api/pkg/patch"
)

// CreateGroupRequest opens a new pending group
type CreateGroupRequest struct {
	FarmerID *uuid.UUID `json:"farmer_id"`
	Name     *string    `json:"name"`
}

// UpdateGroupRequest patches a group's farmer assignment and note. Both
// fields are three-valued: absent leaves the stored value alone, null clears
// it.
type UpdateGroupRequest struct {
	FarmerID patch.Field[uuid.UUID] `json:"farmer_id"`
	Name     patch.Field[string]    `json:"name"`
}

// LineUpdateRequest is one per-line patch in a bulk save. Every field except
// the ID is three-valued.
type LineUpdateRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`

	EmployeeID patch.Field[uuid.UUID] `json:"employee_id"`
	ProductID  patch.Field[uuid.UUID] `json:"product_id"`

	IsVehicle        patch.Field[bool]      `json:"is_vehicle"`
	CarLicenseID     patch.Field[uuid.UUID] `json:"car_license_id"`
	CarLicense       patch.Field[string]    `json:"car_license"`
	WeightVehicleIn  patch.Field[float64]   `json:"weight_vehicle_in"`
	WeightVehicleOut patch.Field[float64]   `json:"weight_vehicle_out"`

	Weight patch.Field[float64] `json:"weight"`
	Price  patch.Field[float64] `json:"price"`

	SplitMode     patch.Field[enum.SplitMode] `json:"split_mode"`
	FarmerRatio   patch.Field[float64]        `json:"farmer_ratio"`
	EmployeeRatio patch.Field[float64]        `json:"employee_ratio"`

	IsHarvestRate patch.Field[bool]    `json:"is_harvest_rate"`
	HarvestRate   patch.Field[float64] `json:"harvest_rate"`

	IsTransportationFee patch.Field[bool]    `json:"is_transportation_fee"`
	TransportationFee   patch.Field[float64] `json:"transportation_fee"`

	PromotionTarget patch.Field[enum.PromotionTarget] `json:"promotion_target"`
	PromotionRate   patch.Field[float64]              `json:"promotion_rate"`

	FarmerPaidType   patch.Field[enum.PaidType] `json:"farmer_paid_type"`
	EmployeePaidType patch.Field[enum.PaidType] `json:"employee_paid_type"`
}

// BulkUpdateLinesRequest saves an array of per-line patches in one call
type BulkUpdateLinesRequest struct {
	Lines []LineUpdateRequest `json:"lines" binding:"required,min=1"`
}

// HarvestBroadcastRequest fans a harvest configuration out to every line of
// one product within a group, or reverses a previous broadcast
type HarvestBroadcastRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Enabled   bool   `json:"enabled"`

	EmployeeID       *string               `json:"employee_id" binding:"omitempty,uuid"`
	HarvestRate      *float64              `json:"harvest_rate"`
	PromotionTarget  *enum.PromotionTarget `json:"promotion_target"`
	PromotionRate    *float64              `json:"promotion_rate"`
	FarmerPaidType   *enum.PaidType        `json:"farmer_paid_type"`
	EmployeePaidType *enum.PaidType        `json:"employee_paid_type"`
}
