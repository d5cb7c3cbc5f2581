package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/apperror"
)

// CarLicenseService handles car-license prefill operations
type CarLicenseService struct {
	licenseRepo repository.CarLicenseRepository
	farmerRepo  repository.FarmerRepository
}

// NewCarLicenseService creates a new car license service
func NewCarLicenseService(licenseRepo repository.CarLicenseRepository, farmerRepo repository.FarmerRepository) *CarLicenseService {
	return &CarLicenseService{
		licenseRepo: licenseRepo,
		farmerRepo:  farmerRepo,
	}
}

// CreateCarLicenseInput represents the create car license input
type CreateCarLicenseInput struct {
	FarmerID uuid.UUID
	Plate    string
}

// CreateCarLicense registers a plate for a farmer. Plates are deduplicated per
// farmer on their normalized form, so re-registering an existing plate returns
// the stored one instead of creating a duplicate.
func (s *CarLicenseService) CreateCarLicense(ctx context.Context, input *CreateCarLicenseInput) (*entity.CarLicense, error) {
	plate := strings.TrimSpace(input.Plate)
	if plate == "" {
		return nil, apperror.NewBadRequestError("Plate is required")
	}

	farmer, err := s.farmerRepo.GetByID(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, apperror.NewNotFoundError("Farmer")
	}

	normalized := entity.NormalizePlate(plate)
	existing, err := s.licenseRepo.GetByNormalizedPlate(ctx, input.FarmerID, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.Active {
			existing.Active = true
			if err := s.licenseRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	license := &entity.CarLicense{
		FarmerID:        input.FarmerID,
		Plate:           plate,
		NormalizedPlate: normalized,
		Active:          true,
	}
	if err := s.licenseRepo.Create(ctx, license); err != nil {
		return nil, err
	}

	return license, nil
}

// ListCarLicensesByFarmer returns a farmer's active plates, most recently used first
func (s *CarLicenseService) ListCarLicensesByFarmer(ctx context.Context, farmerID uuid.UUID) ([]entity.CarLicense, error) {
	farmer, err := s.farmerRepo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, apperror.NewNotFoundError("Farmer")
	}

	return s.licenseRepo.ListByFarmer(ctx, farmerID)
}
