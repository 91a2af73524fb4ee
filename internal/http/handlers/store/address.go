package store

import (
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAddressRequest 创建收货地址请求
type CreateAddressRequest struct {
	UserID       uint   `json:"userId" binding:"required"`
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	PhoneNumber  string `json:"phoneNumber"`
	IsDefault    bool   `json:"isDefault"`
}

// ListAddresses 获取用户收货地址列表
func (h *Handler) ListAddresses(c *gin.Context) {
	userID, ok := requireUintQuery(c, "userId")
	if !ok {
		return
	}
	addresses, err := h.AddressService.ListByUser(userID)
	if err != nil {
		respondWithMappedError(c, err, nil, "failed to fetch addresses")
		return
	}
	response.OK(c, addresses)
}

// CreateAddress 创建收货地址
func (h *Handler) CreateAddress(c *gin.Context) {
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId is required")
		return
	}
	address, err := h.AddressService.Create(service.CreateAddressInput{
		UserID:       req.UserID,
		FullName:     req.FullName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		PhoneNumber:  req.PhoneNumber,
		IsDefault:    req.IsDefault,
	})
	if err != nil {
		respondWithMappedError(c, err, addressWriteErrorRules, "failed to create address")
		return
	}
	response.Created(c, address)
}
