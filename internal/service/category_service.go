package service

import (
	"strings"

	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput 创建分类参数
type CreateCategoryInput struct {
	ParentID    *uint
	Name        string
	Description string
	ImageURL    string
}

// UpdateCategoryInput 更新分类参数，nil 字段保持不变。
// ClearParent 为 true 时将分类提升为根分类。
type UpdateCategoryInput struct {
	ParentID    *uint
	ClearParent bool
	Name        *string
	Description *string
	ImageURL    *string
}

// List 分类列表
func (s *CategoryService) List(filter repository.CategoryListFilter) ([]models.Category, error) {
	return s.categoryRepo.List(filter)
}

// Create 创建分类；父分类（如指定）必须存在
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidCategoryName
	}
	if input.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
	}

	category := &models.Category{
		ParentID:    input.ParentID,
		Name:        name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 部分更新分类；变更父分类时拒绝会形成环的挂载
func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidCategoryName
		}
		category.Name = name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.ImageURL != nil {
		category.ImageURL = *input.ImageURL
	}
	if input.ClearParent {
		category.ParentID = nil
	} else if input.ParentID != nil {
		if err := s.checkParent(id, *input.ParentID); err != nil {
			return nil, err
		}
		parentID := *input.ParentID
		category.ParentID = &parentID
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类；仍被商品或子分类引用时拒绝
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	products, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	children, err := s.categoryRepo.CountChildren(id)
	if err != nil {
		return err
	}
	if products > 0 || children > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}

// checkParent 校验新父分类：必须存在，且沿祖先链向上不得回到自身。
func (s *CategoryService) checkParent(id, parentID uint) error {
	if parentID == id {
		return ErrCategoryCycle
	}
	current := parentID
	for current != 0 {
		ancestor, err := s.categoryRepo.GetByID(current)
		if err != nil {
			return err
		}
		if ancestor == nil {
			if current == parentID {
				return ErrCategoryNotFound
			}
			break
		}
		if ancestor.ID == id {
			return ErrCategoryCycle
		}
		if ancestor.ParentID == nil {
			break
		}
		current = *ancestor.ParentID
	}
	return nil
}
