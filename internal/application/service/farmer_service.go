package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/apperror"
	"github.com/supthawee/farmgate-api/pkg/pagination"
)

// FarmerService handles farmer-related operations
type FarmerService struct {
	farmerRepo   repository.FarmerRepository
	employeeRepo repository.EmployeeRepository
}

// NewFarmerService creates a new farmer service
func NewFarmerService(farmerRepo repository.FarmerRepository, employeeRepo repository.EmployeeRepository) *FarmerService {
	return &FarmerService{
		farmerRepo:   farmerRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateFarmerInput represents the create farmer input
type CreateFarmerInput struct {
	Name  string
	Phone *string
}

// CreateFarmer creates a new farmer. Farmer names are unique.
func (s *FarmerService) CreateFarmer(ctx context.Context, input *CreateFarmerInput) (*entity.Farmer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Farmer name is required")
	}

	existing, err := s.farmerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Farmer with this name already exists")
	}

	farmer := &entity.Farmer{
		Name:  name,
		Phone: input.Phone,
	}

	if err := s.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, err
	}

	return farmer, nil
}

// GetFarmer retrieves a farmer by ID
func (s *FarmerService) GetFarmer(ctx context.Context, id uuid.UUID) (*entity.Farmer, error) {
	farmer, err := s.farmerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, apperror.NewNotFoundError("Farmer")
	}
	return farmer, nil
}

// ListFarmers lists farmers with optional name search
func (s *FarmerService) ListFarmers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Farmer], error) {
	farmers, total, err := s.farmerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(farmers, pag), nil
}

// ListFarmersWithEmployees returns every farmer with its employees, for the
// line-editor picker
func (s *FarmerService) ListFarmersWithEmployees(ctx context.Context) ([]entity.Farmer, error) {
	return s.farmerRepo.ListWithEmployees(ctx)
}

// UpdateFarmerInput represents the update farmer input
type UpdateFarmerInput struct {
	ID    uuid.UUID
	Name  *string
	Phone *string
}

// UpdateFarmer updates a farmer
func (s *FarmerService) UpdateFarmer(ctx context.Context, input *UpdateFarmerInput) (*entity.Farmer, error) {
	farmer, err := s.farmerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, apperror.NewNotFoundError("Farmer")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Farmer name is required")
		}
		if name != farmer.Name {
			existing, err := s.farmerRepo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != farmer.ID {
				return nil, apperror.NewConflictError("Farmer with this name already exists")
			}
		}
		farmer.Name = name
	}
	if input.Phone != nil {
		farmer.Phone = input.Phone
	}

	if err := s.farmerRepo.Update(ctx, farmer); err != nil {
		return nil, err
	}

	return farmer, nil
}

// DeleteFarmer deletes a farmer
func (s *FarmerService) DeleteFarmer(ctx context.Context, id uuid.UUID) error {
	farmer, err := s.farmerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if farmer == nil {
		return apperror.NewNotFoundError("Farmer")
	}

	return s.farmerRepo.Delete(ctx, id)
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	FarmerID uuid.UUID
	Name     string
	Address  *string
	Phone    *string
}

// CreateEmployee creates a new employee under a farmer
func (s *FarmerService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Employee name is required")
	}

	farmer, err := s.farmerRepo.GetByID(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, apperror.NewNotFoundError("Farmer")
	}

	employee := &entity.Employee{
		FarmerID: input.FarmerID,
		Name:     name,
		Address:  input.Address,
		Phone:    input.Phone,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *FarmerService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployeesByFarmer lists all employees of a farmer
func (s *FarmerService) ListEmployeesByFarmer(ctx context.Context, farmerID uuid.UUID) ([]entity.Employee, error) {
	farmer, err := s.farmerRepo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, apperror.NewNotFoundError("Farmer")
	}

	return s.employeeRepo.ListByFarmer(ctx, farmerID)
}

// ListEmployees lists employees with optional name search
func (s *FarmerService) ListEmployees(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	ID      uuid.UUID
	Name    *string
	Address *string
	Phone   *string
}

// UpdateEmployee updates an employee
func (s *FarmerService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Employee name is required")
		}
		employee.Name = name
	}
	if input.Address != nil {
		employee.Address = input.Address
	}
	if input.Phone != nil {
		employee.Phone = input.Phone
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee deletes an employee
func (s *FarmerService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	return s.employeeRepo.Delete(ctx, id)
}
