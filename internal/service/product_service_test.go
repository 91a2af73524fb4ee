package service

import (
	"errors"
	"testing"

	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"gorm.io/gorm"
)

func newProductService(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db)), db
}

func TestProductCreate_Validation(t *testing.T) {
	svc, db := newProductService(t)
	category := seedCategory(t, db, "books")

	cases := []struct {
		name  string
		input CreateProductInput
		want  error
	}{
		{"blank name", CreateProductInput{CategoryID: category.ID, Name: "  ", Price: money(t, "1.00")}, ErrInvalidProductName},
		{"zero price", CreateProductInput{CategoryID: category.ID, Name: "x", Price: money(t, "0.00")}, ErrInvalidPrice},
		{"negative stock", CreateProductInput{CategoryID: category.ID, Name: "x", Price: money(t, "1.00"), Stock: -1}, ErrInvalidStock},
		{"missing category", CreateProductInput{CategoryID: 9999, Name: "x", Price: money(t, "1.00")}, ErrCategoryNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	created, err := svc.Create(CreateProductInput{CategoryID: category.ID, Name: " novel ", Price: money(t, "12.50"), Stock: 3})
	if err != nil {
		t.Fatalf("valid create failed: %v", err)
	}
	if created.Name != "novel" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if !created.IsActive {
		t.Fatal("new products must start active")
	}
}

func TestProductList_ActiveOnlyWithFilters(t *testing.T) {
	svc, db := newProductService(t)
	books := seedCategory(t, db, "books")
	games := seedCategory(t, db, "games")
	seedProduct(t, db, books.ID, "Deep Novel", "10.00", 5)
	seedProduct(t, db, books.ID, "Cookbook", "8.00", 5)
	seedProduct(t, db, games.ID, "Deep Quest", "20.00", 5)
	hidden := seedProduct(t, db, books.ID, "Deep Archive", "6.00", 5)
	if err := db.Model(hidden).UpdateColumn("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	// 分类与搜索条件按 AND 组合，搜索大小写不敏感
	results, err := svc.List(repository.ProductListFilter{CategoryID: books.ID, Search: "deep"})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Name != "Deep Novel" {
		t.Fatalf("expected Deep Novel, got %q", results[0].Name)
	}

	all, err := svc.List(repository.ProductListFilter{})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	for _, p := range all {
		if !p.IsActive {
			t.Fatalf("listing leaked inactive product %q", p.Name)
		}
	}
}

func TestProductUpdate_PartialAndNotFound(t *testing.T) {
	svc, db := newProductService(t)
	category := seedCategory(t, db, "books")
	product := seedProduct(t, db, category.ID, "novel", "12.50", 3)

	if _, err := svc.Update(9999, UpdateProductInput{}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	newPrice := money(t, "15.00")
	updated, err := svc.Update(product.ID, UpdateProductInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	if updated.Price.String() != "15.00" {
		t.Fatalf("expected price 15.00, got %s", updated.Price.String())
	}
	if updated.Name != "novel" || updated.Stock != 3 {
		t.Fatalf("untouched fields must survive partial update: %+v", updated)
	}

	bad := money(t, "-1.00")
	if _, err := svc.Update(product.ID, UpdateProductInput{Price: &bad}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestProductDeactivate_SoftDeleteKeepsRow(t *testing.T) {
	svc, db := newProductService(t)
	category := seedCategory(t, db, "books")
	product := seedProduct(t, db, category.ID, "novel", "12.50", 3)

	deactivated, err := svc.Deactivate(product.ID)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if deactivated.IsActive {
		t.Fatal("expected isActive false after deactivation")
	}

	var row models.Product
	if err := db.First(&row, product.ID).Error; err != nil {
		t.Fatalf("row must survive soft delete: %v", err)
	}

	// 按 ID 仍可取到，历史订单展示要用
	got, err := svc.Get(product.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.IsActive {
		t.Fatal("expected stored isActive false")
	}

	if _, err := svc.Deactivate(9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
