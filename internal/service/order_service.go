package service

import (
	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, addressRepo repository.AddressRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
	}
}

// OrderDetail 订单与明细（用于响应）
type OrderDetail struct {
	Order *models.Order                `json:"order"`
	Items []repository.OrderItemDetail `json:"items"`
}

// List 订单列表，过滤条件按 AND 组合
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, error) {
	return s.orderRepo.List(filter)
}

// ItemDetails 获取订单明细（商品名称与图片联查）
func (s *OrderService) ItemDetails(orderID uint) ([]repository.OrderItemDetail, error) {
	return s.orderRepo.ListItemDetails(orderID)
}

// PlaceOrder 结算下单：把当前购物车快照为一个不可变订单。
//
// 单一事务内依次执行：购物车存在性与非空校验（任何写入之前）、
// 按当前单价计算总额、写入订单与订单项（单价随单固化）、
// 条件扣减每个商品的库存（不足则整体失败）、清空购物车项。
// 任何一步失败都会回滚全部写入，不留下部分状态。
func (s *OrderService) PlaceOrder(userID, shippingAddressID uint) (*OrderDetail, error) {
	address, err := s.addressRepo.GetByID(shippingAddressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	if address.UserID != userID {
		return nil, ErrAddressNotOwned
	}

	var detail *OrderDetail
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		cart, err := cartRepo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		items, err := cartRepo.ListItemDetails(cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		order := &models.Order{
			UserID:            userID,
			Status:            constants.OrderStatusPending,
			TotalAmount:       models.NewMoneyFromDecimal(total),
			ShippingAddressID: shippingAddressID,
		}
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}

		for _, item := range items {
			affected, err := productRepo.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
		}

		if err := cartRepo.ClearItems(cart.ID); err != nil {
			return err
		}

		details, err := orderRepo.ListItemDetails(order.ID)
		if err != nil {
			return err
		}
		detail = &OrderDetail{Order: order, Items: details}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_placed",
		"order_id", detail.Order.ID,
		"user_id", userID,
		"total_amount", detail.Order.TotalAmount.String(),
		"item_count", len(detail.Items),
	)
	return detail, nil
}
