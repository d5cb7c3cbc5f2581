package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	domainRepo "github.com/supthawee/farmgate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		First(&product, "LOWER(name) = LOWER(?)", strings.TrimSpace(name)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, search string) ([]entity.Product, error) {
	var products []entity.Product
	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	// NULLS LAST keeps unkeyed products after every keyed one
	err := query.Order("product_line ASC NULLS LAST, name ASC").Find(&products).Error
	return products, err
}

type productPriceRepository struct {
	db *gorm.DB
}

// NewProductPriceRepository creates a new product price repository
func NewProductPriceRepository(db *gorm.DB) domainRepo.ProductPriceRepository {
	return &productPriceRepository{db: db}
}

func (r *productPriceRepository) Create(ctx context.Context, price *entity.ProductPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *productPriceRepository) Latest(ctx context.Context, productID uuid.UUID) (*entity.ProductPrice, error) {
	var price entity.ProductPrice
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *productPriceRepository) LatestByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]entity.ProductPrice, error) {
	result := make(map[uuid.UUID]entity.ProductPrice, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var prices []entity.ProductPrice
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("created_at ASC").
		Find(&prices).Error
	if err != nil {
		return nil, err
	}
	// Ascending scan leaves the newest entry per product in the map.
	for _, p := range prices {
		result[p.ProductID] = p
	}
	return result, nil
}

func (r *productPriceRepository) History(ctx context.Context, productID uuid.UUID, limit int) ([]entity.ProductPrice, error) {
	var prices []entity.ProductPrice
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&prices).Error
	return prices, err
}
