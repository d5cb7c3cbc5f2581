package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	domainRepo "github.com/supthawee/farmgate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type splitDefaultRepository struct {
	db *gorm.DB
}

// NewSplitDefaultRepository creates a new split default repository
func NewSplitDefaultRepository(db *gorm.DB) domainRepo.SplitDefaultRepository {
	return &splitDefaultRepository{db: db}
}

func (r *splitDefaultRepository) Create(ctx context.Context, def *entity.SplitDefault) error {
	return r.db.WithContext(ctx).Create(def).Error
}

func (r *splitDefaultRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SplitDefault, error) {
	var def entity.SplitDefault
	err := r.db.WithContext(ctx).First(&def, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &def, err
}

func (r *splitDefaultRepository) GetByPair(ctx context.Context, employeeID, productID uuid.UUID) (*entity.SplitDefault, error) {
	var def entity.SplitDefault
	err := r.db.WithContext(ctx).
		First(&def, "employee_id = ? AND product_id = ?", employeeID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &def, err
}

func (r *splitDefaultRepository) Update(ctx context.Context, def *entity.SplitDefault) error {
	return r.db.WithContext(ctx).Save(def).Error
}

func (r *splitDefaultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SplitDefault{}, "id = ?", id).Error
}

func (r *splitDefaultRepository) List(ctx context.Context) ([]entity.SplitDefault, error) {
	var defs []entity.SplitDefault
	err := r.db.WithContext(ctx).
		Preload("Employee").Preload("Product").
		Order("created_at DESC").
		Find(&defs).Error
	return defs, err
}

func (r *splitDefaultRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.SplitDefault, error) {
	var defs []entity.SplitDefault
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Preload("Product").
		Find(&defs).Error
	return defs, err
}
