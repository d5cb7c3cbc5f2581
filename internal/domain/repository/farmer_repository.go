package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/pkg/pagination"
)

// FarmerRepository defines the interface for farmer data operations
type FarmerRepository interface {
	Create(ctx context.Context, farmer *entity.Farmer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error)
	GetByName(ctx context.Context, name string) (*entity.Farmer, error)
	// GetWithEmployees retrieves a farmer with its employees preloaded
	GetWithEmployees(ctx context.Context, id uuid.UUID) (*entity.Farmer, error)
	Update(ctx context.Context, farmer *entity.Farmer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Farmer, int64, error)
	// ListWithEmployees returns every farmer with employees preloaded, for the
	// line-editor picker that needs the full farmer/employee tree at once
	ListWithEmployees(ctx context.Context) ([]entity.Farmer, error)
}

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	// GetByIDs retrieves multiple employees by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]entity.Employee, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Employee, int64, error)
}
