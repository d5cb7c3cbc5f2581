package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
)

// UserRepository defines the interface for operator account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Count reports how many operator accounts exist, for first-run setup
	Count(ctx context.Context) (int64, error)
}
