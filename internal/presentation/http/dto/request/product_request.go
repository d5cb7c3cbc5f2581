package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	ProductLine *int     `json:"product_line" binding:"omitempty,min=0"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	ProductLine *int    `json:"product_line" binding:"omitempty,min=0"`
}

// AddPriceRequest records a new posted price for a product
type AddPriceRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}
