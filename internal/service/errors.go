package service

import "errors"

// 业务错误哨兵值，由 handler 层映射为 HTTP 状态码。
var (
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidProductName  = errors.New("product name is required")
	ErrInvalidCategoryName = errors.New("category name is required")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductInactive     = errors.New("product is not available")
	ErrInvalidPrice        = errors.New("price must be a positive number")
	ErrInvalidStock        = errors.New("stock must be a non-negative number")
	ErrCartNotFound        = errors.New("no cart found for this user")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrInsufficientStock   = errors.New("insufficient product stock")
	ErrAddressIncomplete   = errors.New("missing required address fields")
	ErrAddressNotFound     = errors.New("shipping address not found")
	ErrAddressNotOwned     = errors.New("shipping address does not belong to this user")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryInUse       = errors.New("category is still referenced by products or child categories")
	ErrCategoryCycle       = errors.New("category parent would create a cycle")
)
