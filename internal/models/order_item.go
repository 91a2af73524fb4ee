package models

import (
	"time"
)

// OrderItem 订单项表。price 为下单时刻的单价快照，与商品现价解耦。
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                // 主键
	OrderID   uint      `gorm:"index;not null" json:"orderId"`                       // 订单ID
	ProductID uint      `gorm:"index;not null" json:"productId"`                     // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                            // 数量
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // 下单时单价
	CreatedAt time.Time `json:"createdAt"`                                           // 创建时间
	UpdatedAt time.Time `json:"updatedAt"`                                           // 更新时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
