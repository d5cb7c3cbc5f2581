package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	domainRepo "github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/pagination"
	"gorm.io/gorm"
)

type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository creates a new farmer repository
func NewFarmerRepository(db *gorm.DB) domainRepo.FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) Create(ctx context.Context, farmer *entity.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

func (r *farmerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error) {
	var farmer entity.Farmer
	err := r.db.WithContext(ctx).First(&farmer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &farmer, err
}

func (r *farmerRepository) GetByName(ctx context.Context, name string) (*entity.Farmer, error) {
	var farmer entity.Farmer
	err := r.db.WithContext(ctx).First(&farmer, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &farmer, err
}

func (r *farmerRepository) GetWithEmployees(ctx context.Context, id uuid.UUID) (*entity.Farmer, error) {
	var farmer entity.Farmer
	err := r.db.WithContext(ctx).Preload("Employees").First(&farmer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &farmer, err
}

func (r *farmerRepository) Update(ctx context.Context, farmer *entity.Farmer) error {
	return r.db.WithContext(ctx).Save(farmer).Error
}

func (r *farmerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Farmer{}, "id = ?", id).Error
}

func (r *farmerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Farmer, int64, error) {
	var farmers []entity.Farmer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Farmer{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&farmers).Error

	return farmers, total, err
}

func (r *farmerRepository) ListWithEmployees(ctx context.Context) ([]entity.Farmer, error) {
	var farmers []entity.Farmer
	err := r.db.WithContext(ctx).Preload("Employees").
		Order("name ASC").
		Find(&farmers).Error
	return farmers, err
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Employee, error) {
	if len(ids) == 0 {
		return []entity.Employee{}, nil
	}
	var employees []entity.Employee
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *employeeRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).Where("farmer_id = ?", farmerID).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Employee, int64, error) {
	var employees []entity.Employee
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Employee{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&employees).Error

	return employees, total, err
}
