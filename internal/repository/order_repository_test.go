package repository

import (
	"testing"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/models"

	"github.com/shopspring/decimal"
)

func TestOrderCreate_AssignsOrderIDToItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	product := createProduct(t, db, "chips", "3.00", 10)

	order := &models.Order{
		UserID:            7,
		Status:            constants.OrderStatusPending,
		TotalAmount:       models.NewMoneyFromDecimal(decimal.RequireFromString("6.00")),
		ShippingAddressID: 1,
	}
	items := []models.OrderItem{
		{ProductID: product.ID, Quantity: 2, Price: product.Price},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected persisted order ID")
	}

	details, err := repo.ListItemDetails(order.ID)
	if err != nil {
		t.Fatalf("list item details failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 item, got %d", len(details))
	}
	if details[0].OrderID != order.ID {
		t.Fatalf("item must carry order id %d, got %d", order.ID, details[0].OrderID)
	}
	if details[0].Name != "chips" {
		t.Fatalf("expected joined product name, got %q", details[0].Name)
	}
	if details[0].Price.String() != "3.00" {
		t.Fatalf("expected snapshot price 3.00, got %s", details[0].Price.String())
	}
}

func TestOrderList_FiltersAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	seed := []models.Order{
		{UserID: 1, Status: constants.OrderStatusPending, ShippingAddressID: 1},
		{UserID: 1, Status: constants.OrderStatusShipped, ShippingAddressID: 1},
		{UserID: 2, Status: constants.OrderStatusPending, ShippingAddressID: 2},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	pendingOfUser1, err := repo.List(OrderListFilter{UserID: 1, Status: constants.OrderStatusPending})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pendingOfUser1) != 1 {
		t.Fatalf("expected 1 pending order for user 1, got %d", len(pendingOfUser1))
	}

	byID, err := repo.List(OrderListFilter{ID: seed[2].ID})
	if err != nil {
		t.Fatalf("list by id failed: %v", err)
	}
	if len(byID) != 1 || byID[0].UserID != 2 {
		t.Fatalf("id filter returned wrong rows: %+v", byID)
	}

	missing, err := repo.GetByID(99999)
	if err != nil {
		t.Fatalf("get missing order errored: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing order, got %+v", missing)
	}
}
