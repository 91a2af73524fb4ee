package service

import (
	"strings"

	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"
)

// AddressService 收货地址服务
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService 创建收货地址服务
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// CreateAddressInput 创建收货地址参数
type CreateAddressInput struct {
	UserID       uint
	FullName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	PhoneNumber  string
	IsDefault    bool
}

// ListByUser 获取用户的收货地址列表
func (s *AddressService) ListByUser(userID uint) ([]models.ShippingAddress, error) {
	return s.addressRepo.ListByUser(userID)
}

// Create 创建收货地址
func (s *AddressService) Create(input CreateAddressInput) (*models.ShippingAddress, error) {
	for _, value := range []string{input.FullName, input.AddressLine1, input.City, input.Country} {
		if strings.TrimSpace(value) == "" {
			return nil, ErrAddressIncomplete
		}
	}

	address := &models.ShippingAddress{
		UserID:       input.UserID,
		FullName:     strings.TrimSpace(input.FullName),
		AddressLine1: strings.TrimSpace(input.AddressLine1),
		AddressLine2: strings.TrimSpace(input.AddressLine2),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		Country:      strings.TrimSpace(input.Country),
		PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		IsDefault:    input.IsDefault,
	}
	if err := s.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}
