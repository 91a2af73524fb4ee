package service

import (
	"errors"
	"testing"

	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"gorm.io/gorm"
)

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func TestCartGet_NoCartIsEmptyState(t *testing.T) {
	svc, _ := newCartService(t)

	detail, err := svc.Get(42)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if detail.Cart != nil {
		t.Fatalf("expected nil cart, got %+v", detail.Cart)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(detail.Items))
	}
}

func TestCartUpsertItem_CreatesCartAndItem(t *testing.T) {
	svc, db := newCartService(t)
	category := seedCategory(t, db, "books")
	product := seedProduct(t, db, category.ID, "novel", "12.50", 10)

	item, err := svc.UpsertItem(UpsertCartItemInput{UserID: 7, ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("upsert item failed: %v", err)
	}
	if item.ID == 0 {
		t.Fatal("expected persisted item ID")
	}
	if item.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", item.Quantity)
	}

	detail, err := svc.Get(7)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if detail.Cart == nil {
		t.Fatal("expected cart to be created")
	}
	if len(detail.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(detail.Items))
	}
	if detail.Items[0].Name != "novel" {
		t.Fatalf("expected joined product name, got %q", detail.Items[0].Name)
	}
}

func TestCartUpsertItem_ReplacesQuantity(t *testing.T) {
	svc, db := newCartService(t)
	category := seedCategory(t, db, "books")
	product := seedProduct(t, db, category.ID, "novel", "12.50", 10)

	first, err := svc.UpsertItem(UpsertCartItemInput{UserID: 7, ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	second, err := svc.UpsertItem(UpsertCartItemInput{UserID: 7, ProductID: product.ID, Quantity: 5})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same item row, got %d then %d", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected replaced quantity 5, got %d", second.Quantity)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row per (cart, product), got %d", count)
	}
}

func TestCartUpsertItem_Validation(t *testing.T) {
	svc, db := newCartService(t)
	category := seedCategory(t, db, "books")
	inactive := seedProduct(t, db, category.ID, "retired", "1.00", 5)
	if err := db.Model(inactive).UpdateColumn("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	if _, err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: inactive.ID, Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: 9999, Quantity: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: inactive.ID, Quantity: 1}); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("expected ErrProductInactive, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected upserts must not create carts, got %d", count)
	}
}

func TestCartRemoveItem_NotFoundLeavesNoTrace(t *testing.T) {
	svc, db := newCartService(t)

	if _, err := svc.RemoveItem(12345); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no carts after failed removal, got %d", count)
	}
}

func TestCartRemoveItem_DeletesAndKeepsCart(t *testing.T) {
	svc, db := newCartService(t)
	category := seedCategory(t, db, "books")
	product := seedProduct(t, db, category.ID, "novel", "12.50", 10)

	item, err := svc.UpsertItem(UpsertCartItemInput{UserID: 7, ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("upsert item failed: %v", err)
	}

	removed, err := svc.RemoveItem(item.ID)
	if err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	if removed.ID != item.ID {
		t.Fatalf("expected removed item %d, got %d", item.ID, removed.ID)
	}

	detail, err := svc.Get(7)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if detail.Cart == nil {
		t.Fatal("cart row should survive item removal")
	}
	if len(detail.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(detail.Items))
	}
}
