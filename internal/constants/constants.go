package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 列表分页默认值
const (
	DefaultProductLimit  = 10
	DefaultOrderLimit    = 10
	DefaultCategoryLimit = 50
	MaxListLimit         = 100
)
