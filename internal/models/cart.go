package models

import (
	"time"
)

// Cart 购物车表（每个用户至多一个，由 user_id 唯一索引兜底）
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"` // 用户ID
	CreatedAt time.Time `json:"createdAt"`                         // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`            // 更新时间（随任意购物车项变更刷新）

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}
