package store

import (
	"strings"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 结算下单请求
type CreateOrderRequest struct {
	UserID            uint `json:"userId" binding:"required"`
	ShippingAddressID uint `json:"shippingAddressId" binding:"required"`
}

// ListOrders 订单列表。指定 id 且命中时返回订单与明细，否则返回数组。
func (h *Handler) ListOrders(c *gin.Context) {
	limit, offset := parseLimitOffset(c, constants.DefaultOrderLimit)
	filter := repository.OrderListFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	}
	if id := optionalUintQuery(c, "id"); id != nil {
		filter.ID = *id
	}
	if userID := optionalUintQuery(c, "userId"); userID != nil {
		filter.UserID = *userID
	}

	orders, err := h.OrderService.List(filter)
	if err != nil {
		respondWithMappedError(c, err, nil, "failed to fetch orders")
		return
	}

	if filter.ID != 0 && len(orders) == 1 {
		items, err := h.OrderService.ItemDetails(orders[0].ID)
		if err != nil {
			respondWithMappedError(c, err, nil, "failed to fetch order items")
			return
		}
		response.OK(c, gin.H{"order": orders[0], "items": items})
		return
	}
	response.OK(c, orders)
}

// CreateOrder 结算下单：把购物车快照为订单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId and shippingAddressId are required")
		return
	}
	detail, err := h.OrderService.PlaceOrder(req.UserID, req.ShippingAddressID)
	if err != nil {
		respondWithMappedError(c, err, orderCreateErrorRules, "failed to create order")
		return
	}
	response.Created(c, detail)
}
