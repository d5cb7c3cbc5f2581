package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Farmer represents a farmer who sells produce to the shop
type Farmer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Employees   []Employee         `gorm:"foreignKey:FarmerID" json:"employees,omitempty"`
	CarLicenses []CarLicense       `gorm:"foreignKey:FarmerID" json:"-"`
	Groups      []TransactionGroup `gorm:"foreignKey:FarmerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new farmer
func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Farmer model
func (Farmer) TableName() string {
	return "farmers"
}
