package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"gorm.io/gorm"
)

// TransactionGroup represents one farmer's visit: an ordered set of purchase
// lines created in pending state and submitted once when paid out. Groups
// and their lines are hard-deleted (explicitly or by the retention sweep),
// so they carry no soft-delete column.
type TransactionGroup struct {
	ID          uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	FarmerID    *uuid.UUID             `gorm:"type:uuid;index" json:"farmer_id,omitempty"`
	Name        *string                `gorm:"size:255" json:"name,omitempty"`
	Status      enum.TransactionStatus `gorm:"size:20;default:'pending';index" json:"status"`
	SubmittedAt *time.Time             `json:"submitted_at,omitempty"`
	CreatedAt   time.Time              `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`

	// Relationships
	Farmer *Farmer           `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	Lines  []TransactionLine `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction group
func (g *TransactionGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionGroup model
func (TransactionGroup) TableName() string {
	return "transaction_groups"
}

// TransactionLine is one product-purchase row within a group. Numeric fields
// are nullable: NULL is the operator's "not entered" and is distinct from 0.
type TransactionLine struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	GroupID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"group_id"`
	LineNo     int        `gorm:"not null" json:"line_no"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	ProductID  *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`

	IsVehicle        bool       `gorm:"default:false" json:"is_vehicle"`
	CarLicenseID     *uuid.UUID `gorm:"type:uuid" json:"car_license_id,omitempty"`
	CarLicense       *string    `gorm:"size:50" json:"car_license,omitempty"`
	WeightVehicleIn  *float64   `gorm:"type:decimal(15,2)" json:"weight_vehicle_in,omitempty"`
	WeightVehicleOut *float64   `gorm:"type:decimal(15,2)" json:"weight_vehicle_out,omitempty"`

	Weight      *float64 `gorm:"type:decimal(15,2)" json:"weight,omitempty"`
	Price       *float64 `gorm:"type:decimal(15,2)" json:"price,omitempty"`
	TotalAmount *float64 `gorm:"type:decimal(15,2)" json:"total_amount,omitempty"`

	SplitMode      enum.SplitMode `gorm:"size:20;default:'none'" json:"split_mode"`
	FarmerRatio    *float64       `gorm:"type:decimal(6,4)" json:"farmer_ratio,omitempty"`
	EmployeeRatio  *float64       `gorm:"type:decimal(6,4)" json:"employee_ratio,omitempty"`
	FarmerAmount   *float64       `gorm:"type:decimal(15,2)" json:"farmer_amount,omitempty"`
	EmployeeAmount *float64       `gorm:"type:decimal(15,2)" json:"employee_amount,omitempty"`

	IsTransportationFee             bool     `gorm:"default:false" json:"is_transportation_fee"`
	TransportationFee               *float64 `gorm:"type:decimal(10,4)" json:"transportation_fee,omitempty"`
	TransportationFeeAmount         *float64 `gorm:"type:decimal(15,2)" json:"transportation_fee_amount,omitempty"`
	TransportationFeeFarmerAmount   *float64 `gorm:"type:decimal(15,2)" json:"transportation_fee_farmer_amount,omitempty"`
	TransportationFeeEmployeeAmount *float64 `gorm:"type:decimal(15,2)" json:"transportation_fee_employee_amount,omitempty"`

	FarmerPaidType   enum.PaidType `gorm:"size:20;default:'cash'" json:"farmer_paid_type"`
	EmployeePaidType enum.PaidType `gorm:"size:20;default:'cash'" json:"employee_paid_type"`

	IsHarvestRate bool     `gorm:"default:false" json:"is_harvest_rate"`
	HarvestRate   *float64 `gorm:"type:decimal(10,4)" json:"harvest_rate,omitempty"`

	PromotionRate   *float64              `gorm:"type:decimal(10,4)" json:"promotion_rate,omitempty"`
	PromotionTarget *enum.PromotionTarget `gorm:"size:10" json:"promotion_target,omitempty"`
	PromotionAmount *float64              `gorm:"type:decimal(15,2)" json:"promotion_amount,omitempty"`

	TotalNetAmount *float64 `gorm:"type:decimal(15,2)" json:"total_net_amount,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Group    TransactionGroup `gorm:"foreignKey:GroupID" json:"-"`
	Employee *Employee        `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Product  *Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction line
func (l *TransactionLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionLine model
func (TransactionLine) TableName() string {
	return "transaction_lines"
}

// numText renders a nullable stored numeric as the engine's decimal text,
// nil mapping to the blank sentinel.
func numText(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// numVal parses engine decimal text back to a nullable stored numeric,
// blank or unparseable text mapping to nil.
func numVal(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func uuidText(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func uuidVal(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// ToCalc converts the stored line into the engine's working form.
func (l *TransactionLine) ToCalc() calc.Line {
	out := calc.Line{
		ID:         l.ID.String(),
		GroupID:    l.GroupID.String(),
		LineNo:     l.LineNo,
		EmployeeID: uuidText(l.EmployeeID),
		ProductID:  uuidText(l.ProductID),

		IsVehicle:        l.IsVehicle,
		CarLicenseID:     uuidText(l.CarLicenseID),
		WeightVehicleIn:  numText(l.WeightVehicleIn),
		WeightVehicleOut: numText(l.WeightVehicleOut),

		Weight:      numText(l.Weight),
		Price:       numText(l.Price),
		TotalAmount: numText(l.TotalAmount),

		SplitMode:      l.SplitMode,
		FarmerRatio:    numText(l.FarmerRatio),
		EmployeeRatio:  numText(l.EmployeeRatio),
		FarmerAmount:   numText(l.FarmerAmount),
		EmployeeAmount: numText(l.EmployeeAmount),

		IsTransportationFee:             l.IsTransportationFee,
		TransportationFee:               numText(l.TransportationFee),
		TransportationFeeAmount:         numText(l.TransportationFeeAmount),
		TransportationFeeFarmerAmount:   numText(l.TransportationFeeFarmerAmount),
		TransportationFeeEmployeeAmount: numText(l.TransportationFeeEmployeeAmount),

		FarmerPaidType:   l.FarmerPaidType,
		EmployeePaidType: l.EmployeePaidType,

		IsHarvestRate: l.IsHarvestRate,
		HarvestRate:   numText(l.HarvestRate),

		PromotionRate:   numText(l.PromotionRate),
		PromotionAmount: numText(l.PromotionAmount),

		TotalNetAmount: numText(l.TotalNetAmount),
	}
	if l.CarLicense != nil {
		out.CarLicense = *l.CarLicense
	}
	if l.PromotionTarget != nil {
		out.PromotionTarget = *l.PromotionTarget
	}
	return out
}

// ApplyCalc writes the engine's working form back onto the stored line.
// Identity fields (ID, GroupID, LineNo) are not touched.
func (l *TransactionLine) ApplyCalc(c calc.Line) {
	l.EmployeeID = uuidVal(c.EmployeeID)
	l.ProductID = uuidVal(c.ProductID)

	l.IsVehicle = c.IsVehicle
	l.CarLicenseID = uuidVal(c.CarLicenseID)
	if c.CarLicense == "" {
		l.CarLicense = nil
	} else {
		plate := c.CarLicense
		l.CarLicense = &plate
	}
	l.WeightVehicleIn = numVal(c.WeightVehicleIn)
	l.WeightVehicleOut = numVal(c.WeightVehicleOut)

	l.Weight = numVal(c.Weight)
	l.Price = numVal(c.Price)
	l.TotalAmount = numVal(c.TotalAmount)

	l.SplitMode = c.SplitMode
	l.FarmerRatio = numVal(c.FarmerRatio)
	l.EmployeeRatio = numVal(c.EmployeeRatio)
	l.FarmerAmount = numVal(c.FarmerAmount)
	l.EmployeeAmount = numVal(c.EmployeeAmount)

	l.IsTransportationFee = c.IsTransportationFee
	l.TransportationFee = numVal(c.TransportationFee)
	l.TransportationFeeAmount = numVal(c.TransportationFeeAmount)
	l.TransportationFeeFarmerAmount = numVal(c.TransportationFeeFarmerAmount)
	l.TransportationFeeEmployeeAmount = numVal(c.TransportationFeeEmployeeAmount)

	l.FarmerPaidType = c.FarmerPaidType
	l.EmployeePaidType = c.EmployeePaidType

	l.IsHarvestRate = c.IsHarvestRate
	l.HarvestRate = numVal(c.HarvestRate)

	l.PromotionRate = numVal(c.PromotionRate)
	if c.PromotionTarget == "" {
		l.PromotionTarget = nil
	} else {
		target := c.PromotionTarget
		l.PromotionTarget = &target
	}
	l.PromotionAmount = numVal(c.PromotionAmount)

	l.TotalNetAmount = numVal(c.TotalNetAmount)
}
