package store

import (
	"strings"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	CategoryID  uint         `json:"categoryId" binding:"required"`
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"imageUrl"`
	Stock       int          `json:"stock"`
}

// UpdateProductRequest 更新商品请求，缺省字段保持不变
type UpdateProductRequest struct {
	ID          uint          `json:"id" binding:"required"`
	CategoryID  *uint         `json:"categoryId"`
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *models.Money `json:"price"`
	ImageURL    *string       `json:"imageUrl"`
	Stock       *int          `json:"stock"`
	IsActive    *bool         `json:"isActive"`
}

// ListProducts 商品列表（仅上架商品）
func (h *Handler) ListProducts(c *gin.Context) {
	limit, offset := parseLimitOffset(c, constants.DefaultProductLimit)
	filter := repository.ProductListFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Limit:  limit,
		Offset: offset,
	}
	if categoryID := optionalUintQuery(c, "category"); categoryID != nil {
		filter.CategoryID = *categoryID
	}

	products, err := h.ProductService.List(filter)
	if err != nil {
		respondWithMappedError(c, err, nil, "failed to fetch products")
		return
	}
	response.OK(c, products)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "categoryId and name are required")
		return
	}
	product, err := h.ProductService.Create(service.CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
	})
	if err != nil {
		respondWithMappedError(c, err, productWriteErrorRules, "failed to create product")
		return
	}
	response.Created(c, product)
}

// UpdateProduct 部分更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "id is required")
		return
	}
	product, err := h.ProductService.Update(req.ID, service.UpdateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, productWriteErrorRules, "failed to update product")
		return
	}
	response.OK(c, product)
}

// DeactivateProduct 下架商品（软删除）
func (h *Handler) DeactivateProduct(c *gin.Context) {
	id, ok := requireUintQuery(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Deactivate(id)
	if err != nil {
		respondWithMappedError(c, err, productWriteErrorRules, "failed to deactivate product")
		return
	}
	response.OK(c, gin.H{
		"message": "product deactivated",
		"product": product,
	})
}
