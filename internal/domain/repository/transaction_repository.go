package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"github.com/supthawee/farmgate-api/pkg/pagination"
)

// TransactionGroupRepository defines the interface for group data operations
type TransactionGroupRepository interface {
	Create(ctx context.Context, group *entity.TransactionGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error)
	// GetWithLines retrieves a group with its farmer and its lines preloaded,
	// lines ordered by line number
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error)
	Update(ctx context.Context, group *entity.TransactionGroup) error
	// Delete removes the group and cascades to its lines
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, status *enum.TransactionStatus, farmerID *uuid.UUID) ([]entity.TransactionGroup, int64, error)
	// ListPendingCreatedBefore returns up to limit pending groups created
	// before the cutoff, oldest first. The retention sweep drains these in
	// batches.
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]entity.TransactionGroup, error)
	// CountPendingCreatedBefore counts the groups still eligible for the sweep
	CountPendingCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// TransactionLineRepository defines the interface for line data operations
type TransactionLineRepository interface {
	Create(ctx context.Context, line *entity.TransactionLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TransactionLine, error)
	// GetByIDs retrieves multiple lines by their IDs in a single query
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.TransactionLine, error)
	Update(ctx context.Context, line *entity.TransactionLine) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByGroup removes every line of a group
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) error
	// ListByGroup returns a group's lines ordered by line number
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.TransactionLine, error)
	// NextLineNo returns the next free line number within a group
	NextLineNo(ctx context.Context, groupID uuid.UUID) (int, error)
	// ListCreatedBetween returns the lines created in [from, to), for the
	// daily dashboard
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.TransactionLine, error)
	// ListRecent returns lines with group, farmer, product and employee
	// preloaded, newest group first, for the transaction table feed
	ListRecent(ctx context.Context, params *pagination.PaginationParams) ([]entity.TransactionLine, int64, error)
	// ListRecentAfter returns up to limit lines strictly after the cursor
	// position, newest line first, with the same preloads as ListRecent. A
	// nil cursor starts from the newest line.
	ListRecentAfter(ctx context.Context, cursor *pagination.Cursor, limit int) ([]entity.TransactionLine, error)
}
