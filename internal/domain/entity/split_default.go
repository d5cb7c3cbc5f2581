package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SplitDefault is the remembered allocation configuration for one
// (employee, product) pair. It is captured the first time an operator
// submits a line for the pair and replayed onto new lines afterwards.
// Optional fields are pointers: a nil field is absent from the default and
// leaves the target line untouched when the default is applied.
type SplitDefault struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_split_default_pair" json:"employee_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_split_default_pair" json:"product_id"`

	SplitMode     enum.SplitMode `gorm:"size:20;default:'none'" json:"split_mode"`
	IsHarvestRate bool           `gorm:"default:false" json:"is_harvest_rate"`
	HarvestRate   *float64       `gorm:"type:decimal(10,4)" json:"harvest_rate,omitempty"`
	FarmerRatio   *float64       `gorm:"type:decimal(6,4)" json:"farmer_ratio,omitempty"`
	EmployeeRatio *float64       `gorm:"type:decimal(6,4)" json:"employee_ratio,omitempty"`

	IsTransportationFee *bool    `json:"is_transportation_fee,omitempty"`
	TransportationFee   *float64 `gorm:"type:decimal(10,4)" json:"transportation_fee,omitempty"`

	PromotionTarget *enum.PromotionTarget `gorm:"size:10" json:"promotion_target,omitempty"`
	PromotionRate   *float64              `gorm:"type:decimal(10,4)" json:"promotion_rate,omitempty"`

	FarmerPaidType   *enum.PaidType `gorm:"size:20" json:"farmer_paid_type,omitempty"`
	EmployeePaidType *enum.PaidType `gorm:"size:20" json:"employee_paid_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new split default
func (s *SplitDefault) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SplitDefault model
func (SplitDefault) TableName() string {
	return "split_defaults"
}
