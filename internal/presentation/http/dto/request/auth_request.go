package request

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// UpdateShopRequest represents an update to the shop identity printed on
// receipt headers
type UpdateShopRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	ShopName    *string `json:"shop_name" binding:"omitempty,max=255"`
	ShopAddress *string `json:"shop_address" binding:"omitempty,max=255"`
	ShopPhone   *string `json:"shop_phone" binding:"omitempty,max=50"`
}
