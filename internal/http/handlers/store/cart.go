package store

import (
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 添加/更新购物车项请求
type CartItemRequest struct {
	UserID    uint `json:"userId" binding:"required"`
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetCart 获取购物车及明细。用户还没有购物车时 cart 为 null。
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := requireUintQuery(c, "userId")
	if !ok {
		return
	}
	detail, err := h.CartService.Get(userID)
	if err != nil {
		respondWithMappedError(c, err, nil, "failed to fetch cart")
		return
	}
	response.OK(c, detail)
}

// UpsertCartItem 添加或更新购物车项（替换数量语义）
func (h *Handler) UpsertCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId and productId are required")
		return
	}
	item, err := h.CartService.UpsertItem(service.UpsertCartItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, cartWriteErrorRules, "failed to add item to cart")
		return
	}
	response.Created(c, item)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cartItemID, ok := requireUintQuery(c, "cartItemId")
	if !ok {
		return
	}
	removed, err := h.CartService.RemoveItem(cartItemID)
	if err != nil {
		respondWithMappedError(c, err, cartRemoveErrorRules, "failed to remove cart item")
		return
	}
	response.OK(c, gin.H{
		"message":    "cart item removed",
		"cartItemId": removed.ID,
	})
}
