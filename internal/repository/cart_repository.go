package repository

import (
	"errors"
	"time"

	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	ListItemDetails(cartID uint) ([]CartItemDetail, error)
	GetItem(cartID, productID uint) (*models.CartItem, error)
	GetItemByID(id uint) (*models.CartItem, error)
	UpsertItem(item *models.CartItem) error
	DeleteItem(id uint) error
	ClearItems(cartID uint) error
	TouchCart(cartID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// CartItemDetail 购物车项与商品展示字段的联查结果
type CartItemDetail struct {
	ID        uint         `json:"id"`
	CartID    uint         `json:"cartId"`
	ProductID uint         `json:"productId"`
	Quantity  int          `json:"quantity"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	ImageURL  string       `json:"imageUrl"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByUser 获取用户购物车，不存在返回 nil（空购物车是合法状态，不是错误）
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByUser 获取或创建用户购物车。
// user_id 上的唯一索引保证并发下也只有一个购物车。
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// ListItemDetails 联查购物车项与商品展示字段
func (r *GormCartRepository) ListItemDetails(cartID uint) ([]CartItemDetail, error) {
	details := make([]CartItemDetail, 0)
	err := r.db.Table("cart_items").
		Select("cart_items.id, cart_items.cart_id, cart_items.product_id, cart_items.quantity, cart_items.created_at, cart_items.updated_at, products.name, products.price, products.image_url").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.created_at ASC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// GetItem 按 (cart, product) 获取购物车项
func (r *GormCartRepository) GetItem(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetItemByID 按 ID 获取购物车项
func (r *GormCartRepository) GetItemByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpsertItem 添加或更新购物车项。
// 冲突时覆盖数量（替换语义，不累加），依赖 (cart_id, product_id) 唯一索引。
func (r *GormCartRepository) UpsertItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(item).Error
}

// DeleteItem 删除购物车项
func (r *GormCartRepository) DeleteItem(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

// ClearItems 清空购物车项（购物车行保留，供复用）
func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// TouchCart 刷新购物车更新时间
func (r *GormCartRepository) TouchCart(cartID uint) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).
		UpdateColumn("updated_at", time.Now()).Error
}
