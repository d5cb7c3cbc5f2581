package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/config"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/apperror"
)

// ruangSurcharge is added on top of the base palm price for the loose-fruit
// ("ruang") palm variant.
const ruangSurcharge = 0.5

// ProductService handles product and price-history operations
type ProductService struct {
	productRepo repository.ProductRepository
	priceRepo   repository.ProductPriceRepository
	shopCfg     config.ShopConfig
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	priceRepo repository.ProductPriceRepository,
	shopCfg config.ShopConfig,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		priceRepo:   priceRepo,
		shopCfg:     shopCfg,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string
	ProductLine *int
	Price       *float64
}

// CreateProduct creates a new product. An initial price entry is recorded when
// a price is provided.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}

	existing, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product with this name already exists")
	}

	product := &entity.Product{
		Name:        name,
		ProductLine: input.ProductLine,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperror.NewBadRequestError("Price must be greater than zero")
		}
		price := &entity.ProductPrice{
			ProductID: product.ID,
			Price:     *input.Price,
		}
		if err := s.priceRepo.Create(ctx, price); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products ordered by product line, then name
func (s *ProductService) ListProducts(ctx context.Context, search string) ([]entity.Product, error) {
	return s.productRepo.List(ctx, search)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        *string
	ProductLine *int
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Product name is required")
		}
		if !strings.EqualFold(name, product.Name) {
			existing, err := s.productRepo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != product.ID {
				return nil, apperror.NewConflictError("Product with this name already exists")
			}
		}
		product.Name = name
	}
	if input.ProductLine != nil {
		product.ProductLine = input.ProductLine
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// AddPrice records a new price entry for a product. Prices are append-only;
// the newest entry is the product's current price.
func (s *ProductService) AddPrice(ctx context.Context, productID uuid.UUID, price float64) (*entity.ProductPrice, error) {
	if price <= 0 {
		return nil, apperror.NewBadRequestError("Price must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	entry := &entity.ProductPrice{
		ProductID: productID,
		Price:     price,
	}
	if err := s.priceRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// PriceHistory returns the newest price entries for a product, most recent first
func (s *ProductService) PriceHistory(ctx context.Context, productID uuid.UUID, limit int) ([]entity.ProductPrice, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	return s.priceRepo.History(ctx, productID, limit)
}

// ProductWithPrices is a product joined with its latest price and recent history
type ProductWithPrices struct {
	Product     entity.Product
	LatestPrice *entity.ProductPrice
	History     []entity.ProductPrice
}

// ListProductsWithPrices returns every product with its latest price and the
// five most recent history entries
func (s *ProductService) ListProductsWithPrices(ctx context.Context) ([]ProductWithPrices, error) {
	products, err := s.productRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	latest, err := s.priceRepo.LatestByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]ProductWithPrices, 0, len(products))
	for _, p := range products {
		item := ProductWithPrices{Product: p}
		if entry, ok := latest[p.ID]; ok {
			e := entry
			item.LatestPrice = &e
			history, err := s.priceRepo.History(ctx, p.ID, 5)
			if err != nil {
				return nil, err
			}
			item.History = history
		}
		result = append(result, item)
	}

	return result, nil
}

// PalmPrice is the suggested line price for one palm product
type PalmPrice struct {
	ProductID uuid.UUID
	Name      string
	Price     *float64
	IsRuang   bool
}

// PalmPrices returns the palm products with their suggested prices. Palm
// products are matched by the configured name keyword; the loose-fruit variant
// (exact configured name) is priced at the base palm price plus 0.5.
func (s *ProductService) PalmPrices(ctx context.Context) ([]PalmPrice, error) {
	keyword := s.shopCfg.PalmKeyword
	if keyword == "" {
		return []PalmPrice{}, nil
	}

	products, err := s.productRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	palm := make([]entity.Product, 0, 2)
	for _, p := range products {
		if strings.Contains(p.Name, keyword) {
			palm = append(palm, p)
		}
	}
	if len(palm) == 0 {
		return []PalmPrice{}, nil
	}

	ids := make([]uuid.UUID, 0, len(palm))
	for _, p := range palm {
		ids = append(ids, p.ID)
	}
	latest, err := s.priceRepo.LatestByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Base price comes from the first non-ruang palm product with a price.
	var basePrice *float64
	for _, p := range palm {
		if p.Name == s.shopCfg.PalmRuang {
			continue
		}
		if entry, ok := latest[p.ID]; ok {
			price := entry.Price
			basePrice = &price
			break
		}
	}

	result := make([]PalmPrice, 0, len(palm))
	for _, p := range palm {
		item := PalmPrice{
			ProductID: p.ID,
			Name:      p.Name,
			IsRuang:   p.Name == s.shopCfg.PalmRuang,
		}
		if item.IsRuang && basePrice != nil {
			price := *basePrice + ruangSurcharge
			item.Price = &price
		} else if entry, ok := latest[p.ID]; ok {
			price := entry.Price
			item.Price = &price
		}
		result = append(result, item)
	}

	return result, nil
}
