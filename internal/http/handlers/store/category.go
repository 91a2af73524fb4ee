package store

import (
	"strings"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/repository"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ParentID    *uint  `json:"parentId"`
}

// UpdateCategoryRequest 更新分类请求，缺省字段保持不变。
// clearParent 为 true 时忽略 parentId 并提升为根分类。
type UpdateCategoryRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	ParentID    *uint   `json:"parentId"`
	ClearParent bool    `json:"clearParent"`
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	limit, offset := parseLimitOffset(c, constants.DefaultCategoryLimit)
	filter := repository.CategoryListFilter{
		ParentID: optionalUintQuery(c, "parentId"),
		Search:   strings.TrimSpace(c.Query("search")),
		Limit:    limit,
		Offset:   offset,
	}

	categories, err := h.CategoryService.List(filter)
	if err != nil {
		respondWithMappedError(c, err, nil, "failed to fetch categories")
		return
	}
	response.OK(c, categories)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}
	category, err := h.CategoryService.Create(service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ParentID:    req.ParentID,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryCreateErrorRules, "failed to create category")
		return
	}
	response.Created(c, category)
}

// UpdateCategory 部分更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "id is required")
		return
	}
	category, err := h.CategoryService.Update(req.ID, service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ParentID:    req.ParentID,
		ClearParent: req.ClearParent,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryMutateErrorRules, "failed to update category")
		return
	}
	response.OK(c, category)
}

// DeleteCategory 删除分类（仍被引用时拒绝）
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := requireUintQuery(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondWithMappedError(c, err, categoryMutateErrorRules, "failed to delete category")
		return
	}
	response.OK(c, gin.H{"message": "category deleted"})
}
