package models

import (
	"time"
)

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                               // 主键
	CategoryID  uint      `gorm:"not null;index" json:"categoryId"`                   // 分类ID
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`             // 商品名称
	Description string    `gorm:"type:text" json:"description"`                       // 商品描述
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	ImageURL    string    `gorm:"type:varchar(500)" json:"imageUrl"`                  // 商品图片
	Stock       int       `gorm:"not null;default:0" json:"stock"`                    // 库存数量
	IsActive    bool      `gorm:"index" json:"isActive"`                              // 是否上架（下架即软删除，创建方显式赋值）
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`                             // 创建时间
	UpdatedAt   time.Time `json:"updatedAt"`                                          // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
