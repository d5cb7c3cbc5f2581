package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
)

// CarLicenseRepository defines the interface for car-license data operations
type CarLicenseRepository interface {
	Create(ctx context.Context, license *entity.CarLicense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CarLicense, error)
	// GetByNormalizedPlate looks a farmer's plate up by its normalized form
	GetByNormalizedPlate(ctx context.Context, farmerID uuid.UUID, normalizedPlate string) (*entity.CarLicense, error)
	Update(ctx context.Context, license *entity.CarLicense) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByFarmer returns a farmer's active plates, most recently used first
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]entity.CarLicense, error)
	// TouchLastUsed stamps the plate's last-used time
	TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
}
