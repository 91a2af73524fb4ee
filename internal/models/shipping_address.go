package models

import (
	"time"
)

// ShippingAddress 收货地址表
type ShippingAddress struct {
	ID           uint      `gorm:"primarykey" json:"id"`                           // 主键
	UserID       uint      `gorm:"index;not null" json:"userId"`                   // 用户ID
	FullName     string    `gorm:"type:varchar(200);not null" json:"fullName"`     // 收件人
	AddressLine1 string    `gorm:"type:varchar(500);not null" json:"addressLine1"` // 地址行1
	AddressLine2 string    `gorm:"type:varchar(500)" json:"addressLine2"`          // 地址行2
	City         string    `gorm:"type:varchar(100);not null" json:"city"`         // 城市
	State        string    `gorm:"type:varchar(100)" json:"state"`                 // 省/州
	PostalCode   string    `gorm:"type:varchar(20)" json:"postalCode"`             // 邮编
	Country      string    `gorm:"type:varchar(100);not null" json:"country"`      // 国家
	PhoneNumber  string    `gorm:"type:varchar(50)" json:"phoneNumber"`            // 联系电话
	IsDefault    bool      `gorm:"default:false" json:"isDefault"`                 // 是否默认地址
	CreatedAt    time.Time `json:"createdAt"`                                      // 创建时间
	UpdatedAt    time.Time `json:"updatedAt"`                                      // 更新时间
}

// TableName 指定表名
func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}
