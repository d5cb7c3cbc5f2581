package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	domainRepo "github.com/supthawee/farmgate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type carLicenseRepository struct {
	db *gorm.DB
}

// NewCarLicenseRepository creates a new car license repository
func NewCarLicenseRepository(db *gorm.DB) domainRepo.CarLicenseRepository {
	return &carLicenseRepository{db: db}
}

func (r *carLicenseRepository) Create(ctx context.Context, license *entity.CarLicense) error {
	return r.db.WithContext(ctx).Create(license).Error
}

func (r *carLicenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CarLicense, error) {
	var license entity.CarLicense
	err := r.db.WithContext(ctx).First(&license, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &license, err
}

func (r *carLicenseRepository) GetByNormalizedPlate(ctx context.Context, farmerID uuid.UUID, normalizedPlate string) (*entity.CarLicense, error) {
	var license entity.CarLicense
	err := r.db.WithContext(ctx).
		First(&license, "farmer_id = ? AND normalized_plate = ?", farmerID, normalizedPlate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &license, err
}

func (r *carLicenseRepository) Update(ctx context.Context, license *entity.CarLicense) error {
	return r.db.WithContext(ctx).Save(license).Error
}

func (r *carLicenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CarLicense{}, "id = ?", id).Error
}

func (r *carLicenseRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]entity.CarLicense, error) {
	var licenses []entity.CarLicense
	err := r.db.WithContext(ctx).
		Where("farmer_id = ? AND active = ?", farmerID, true).
		Order("last_used_at DESC NULLS LAST, created_at DESC").
		Find(&licenses).Error
	return licenses, err
}

func (r *carLicenseRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.CarLicense{}).
		Where("id = ?", id).
		Update("last_used_at", usedAt).Error
}
