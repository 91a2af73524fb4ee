package models

import (
	"time"
)

// Order 订单表。创建后即为不可变快照：总额在结算时计算一次，不随商品价格变化。
type Order struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                      // 主键
	UserID            uint      `gorm:"index;not null" json:"userId"`                              // 用户ID
	Status            string    `gorm:"type:varchar(20);index;not null" json:"status"`             // 订单状态
	TotalAmount       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"totalAmount"`  // 订单总额
	ShippingAddressID uint      `gorm:"not null" json:"shippingAddressId"`                         // 收货地址ID
	CreatedAt         time.Time `gorm:"index" json:"createdAt"`                                    // 创建时间
	UpdatedAt         time.Time `json:"updatedAt"`                                                 // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
