package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	CategoryID uint
	Search     string
	OnlyActive bool
	Limit      int
	Offset     int
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	ParentID *uint
	Search   string
	Limit    int
	Offset   int
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	ID     uint
	UserID uint
	Status string
	Limit  int
	Offset int
}
