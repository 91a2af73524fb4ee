package repository

import (
	"errors"
	"time"

	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, error)
	ListItemDetails(orderID uint) ([]OrderItemDetail, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// OrderItemDetail 订单项与商品展示字段的联查结果
type OrderItemDetail struct {
	ID        uint         `json:"id"`
	OrderID   uint         `json:"orderId"`
	ProductID uint         `json:"productId"`
	Quantity  int          `json:"quantity"`
	Price     models.Money `json:"price"`
	Name      string       `json:"name"`
	ImageURL  string       `json:"imageUrl"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 订单列表。过滤条件按 AND 组合，创建时间倒序。
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, error) {
	query := r.db.Model(&models.Order{})
	if filter.ID != 0 {
		query = query.Where("id = ?", filter.ID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = applyLimitOffset(query, filter.Limit, filter.Offset)

	orders := make([]models.Order, 0)
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListItemDetails 联查订单项与商品展示字段
func (r *GormOrderRepository) ListItemDetails(orderID uint) ([]OrderItemDetail, error) {
	details := make([]OrderItemDetail, 0)
	err := r.db.Table("order_items").
		Select("order_items.id, order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, order_items.created_at, order_items.updated_at, products.name, products.image_url").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id ASC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
