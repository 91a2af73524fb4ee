package service

import (
	"fmt"

	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"gorm.io/gorm"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartDetail 购物车与明细（用于响应）。cart 为 null 表示该用户尚无购物车，是合法的空状态。
type CartDetail struct {
	Cart  *models.Cart                `json:"cart"`
	Items []repository.CartItemDetail `json:"items"`
}

// UpsertCartItemInput 添加/更新购物车项输入
type UpsertCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// Get 获取用户购物车及明细。没有购物车不是错误。
func (s *CartService) Get(userID uint) (*CartDetail, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartDetail{Cart: nil, Items: []repository.CartItemDetail{}}, nil
	}
	items, err := s.cartRepo.ListItemDetails(cart.ID)
	if err != nil {
		return nil, err
	}
	return &CartDetail{Cart: cart, Items: items}, nil
}

// UpsertItem 添加或更新购物车项。
// 同一商品重复添加时覆盖数量（替换语义）。购物车查找/创建、项写入与
// 购物车时间戳刷新在一个事务内完成，失败则整体回滚。
func (s *CartService) UpsertItem(input UpsertCartItemInput) (*models.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	var result *models.CartItem
	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)

		cart, err := repo.GetOrCreateByUser(input.UserID)
		if err != nil {
			return err
		}
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if err := repo.UpsertItem(item); err != nil {
			return err
		}
		// 冲突更新路径不回填主键，重新读取落库结果
		saved, err := repo.GetItem(cart.ID, input.ProductID)
		if err != nil {
			return err
		}
		if saved == nil {
			return fmt.Errorf("cart item missing after upsert: cart=%d product=%d", cart.ID, input.ProductID)
		}
		if err := repo.TouchCart(cart.ID); err != nil {
			return err
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveItem 删除购物车项。项不存在返回 ErrCartItemNotFound，且不产生任何写入。
func (s *CartService) RemoveItem(cartItemID uint) (*models.CartItem, error) {
	var removed *models.CartItem
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)

		item, err := repo.GetItemByID(cartItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrCartItemNotFound
		}
		if err := repo.DeleteItem(item.ID); err != nil {
			return err
		}
		if err := repo.TouchCart(item.CartID); err != nil {
			return err
		}
		removed = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
