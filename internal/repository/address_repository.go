package repository

import (
	"errors"

	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
)

// AddressRepository 收货地址数据访问接口
type AddressRepository interface {
	ListByUser(userID uint) ([]models.ShippingAddress, error)
	GetByID(id uint) (*models.ShippingAddress, error)
	Create(address *models.ShippingAddress) error
}

// GormAddressRepository GORM 实现
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository 创建收货地址仓库
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// ListByUser 获取用户的收货地址列表，默认地址优先
func (r *GormAddressRepository) ListByUser(userID uint) ([]models.ShippingAddress, error) {
	addresses := make([]models.ShippingAddress, 0)
	err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByID 根据 ID 获取收货地址
func (r *GormAddressRepository) GetByID(id uint) (*models.ShippingAddress, error) {
	var address models.ShippingAddress
	if err := r.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// Create 创建收货地址
func (r *GormAddressRepository) Create(address *models.ShippingAddress) error {
	return r.db.Create(address).Error
}
