package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
)

// SplitDefaultRepository defines the interface for split-default operations
type SplitDefaultRepository interface {
	Create(ctx context.Context, def *entity.SplitDefault) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SplitDefault, error)
	// GetByPair looks a default up by its (employee, product) key, nil when
	// the pair has no remembered configuration
	GetByPair(ctx context.Context, employeeID, productID uuid.UUID) (*entity.SplitDefault, error)
	Update(ctx context.Context, def *entity.SplitDefault) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.SplitDefault, error)
	// ListByEmployee returns every remembered default for one employee
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.SplitDefault, error)
}
