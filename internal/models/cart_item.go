package models

import (
	"time"
)

// CartItem 购物车项（(cart, product) 组合唯一，重复添加覆盖数量）
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                        // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_item_cart_product" json:"cartId"` // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_item_cart_product" json:"productId"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                    // 数量
	CreatedAt time.Time `json:"createdAt"`                                                   // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`                                      // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
