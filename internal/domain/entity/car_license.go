package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarLicense is a remembered vehicle plate for a farmer, used to prefill
// weigh-in/weigh-out lines. NormalizedPlate strips spaces and dashes so
// look-ups survive inconsistent operator entry.
type CarLicense struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FarmerID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"farmer_id"`
	Plate           string         `gorm:"size:50;not null" json:"plate"`
	NormalizedPlate string         `gorm:"size:50;not null;index" json:"normalized_plate"`
	Active          bool           `gorm:"default:true" json:"active"`
	LastUsedAt      *time.Time     `json:"last_used_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Farmer Farmer `gorm:"foreignKey:FarmerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new car license
func (c *CarLicense) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CarLicense model
func (CarLicense) TableName() string {
	return "car_licenses"
}

// NormalizePlate canonicalizes a plate for matching: spaces and dashes
// removed, letters upper-cased.
func NormalizePlate(plate string) string {
	out := make([]rune, 0, len(plate))
	for _, r := range plate {
		switch r {
		case ' ', '-', '\t':
			continue
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
