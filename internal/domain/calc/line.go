package calc

import "github.com/supthawee/farmgate-api/internal/domain/enum"

// Line is the engine's working representation of one transaction line: the
// exact field set an operator edits, with every numeric field held as a
// decimal string and Blank meaning "not entered". The persistence layer
// converts between this form and the stored entity.
type Line struct {
	ID         string
	GroupID    string
	LineNo     int
	EmployeeID string
	ProductID  string

	IsVehicle        bool
	CarLicenseID     string
	CarLicense       string
	WeightVehicleIn  string
	WeightVehicleOut string

	Weight      string
	Price       string
	TotalAmount string

	SplitMode      enum.SplitMode
	FarmerRatio    string
	EmployeeRatio  string
	FarmerAmount   string
	EmployeeAmount string

	IsTransportationFee             bool
	TransportationFee               string
	TransportationFeeAmount         string
	TransportationFeeFarmerAmount   string
	TransportationFeeEmployeeAmount string

	FarmerPaidType   enum.PaidType
	EmployeePaidType enum.PaidType

	IsHarvestRate bool
	HarvestRate   string

	PromotionRate   string
	PromotionTarget enum.PromotionTarget
	PromotionAmount string

	TotalNetAmount string
}

// NewLine returns a line with the defaults a freshly added row carries.
func NewLine(groupID string, lineNo int) Line {
	return Line{
		GroupID:          groupID,
		LineNo:           lineNo,
		SplitMode:        enum.SplitModeNone,
		FarmerPaidType:   enum.PaidTypeCash,
		EmployeePaidType: enum.PaidTypeCash,
	}
}

// HasAllocation reports whether the line carries either an active split mode
// or the harvest-rate flag, the two mutually exclusive allocation modes.
func (l *Line) HasAllocation() bool {
	return l.SplitMode != enum.SplitModeNone || l.IsHarvestRate
}

// EffectiveFarmerAmount is the farmer-side figure summaries use: the
// transport-fee-adjusted amount when the fee is active, the base otherwise.
func (l *Line) EffectiveFarmerAmount() string {
	if l.IsTransportationFee && l.TransportationFeeFarmerAmount != Blank {
		return l.TransportationFeeFarmerAmount
	}
	return l.FarmerAmount
}

// EffectiveEmployeeAmount mirrors EffectiveFarmerAmount for the employee side.
func (l *Line) EffectiveEmployeeAmount() string {
	if l.IsTransportationFee && l.TransportationFeeEmployeeAmount != Blank {
		return l.TransportationFeeEmployeeAmount
	}
	return l.EmployeeAmount
}
