package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	// GetByName matches the trimmed name case-insensitively
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all products ordered by product line ascending, products
	// without a product line last, ties broken by name
	List(ctx context.Context, search string) ([]entity.Product, error)
}

// ProductPriceRepository defines the interface for price-history operations
type ProductPriceRepository interface {
	Create(ctx context.Context, price *entity.ProductPrice) error
	// Latest returns the most recent price entry for a product, nil when the
	// product has no price yet
	Latest(ctx context.Context, productID uuid.UUID) (*entity.ProductPrice, error)
	// LatestByProducts returns the most recent price entry per product in one
	// query, keyed by product ID
	LatestByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]entity.ProductPrice, error)
	// History returns the newest price entries for a product, most recent
	// first, capped at limit
	History(ctx context.Context, productID uuid.UUID, limit int) ([]entity.ProductPrice, error)
}
