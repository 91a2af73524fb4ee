package repository

import (
	"testing"

	"github.com/storefront-api/internal/models"
)

func TestDecrementStock_GuardedBySufficientStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	product := createProduct(t, db, "chips", "3.00", 5)

	affected, err := repo.DecrementStock(product.ID, 3)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	affected, err = repo.DecrementStock(product.ID, 3)
	if err != nil {
		t.Fatalf("guarded decrement errored: %v", err)
	}
	if affected != 0 {
		t.Fatalf("insufficient stock must affect 0 rows, got %d", affected)
	}

	var after models.Product
	if err := db.First(&after, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if after.Stock != 2 {
		t.Fatalf("stock must stay at 2 after refused decrement, got %d", after.Stock)
	}
}

func TestProductCreate_KeepsInactiveFlag(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "clearance"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{CategoryID: category.ID, Name: "retired", IsActive: false}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	var after models.Product
	if err := db.First(&after, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if after.IsActive {
		t.Fatalf("inactive product must stay inactive after insert")
	}
}

func TestProductList_SearchIsCaseInsensitiveAndConjunctive(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	category := &models.Category{Name: "books"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	other := &models.Category{Name: "games"}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	rows := []models.Product{
		{CategoryID: category.ID, Name: "Deep Novel", Description: "a story", IsActive: true},
		{CategoryID: category.ID, Name: "Cookbook", Description: "deep dish recipes", IsActive: true},
		{CategoryID: other.ID, Name: "Deep Quest", Description: "a game", IsActive: true},
		{CategoryID: category.ID, Name: "Deep Archive", Description: "retired", IsActive: false},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	// 搜索覆盖 name 与 description 两列
	got, err := repo.List(ProductListFilter{CategoryID: category.ID, Search: "DEEP", OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches in category, got %d", len(got))
	}
	for _, p := range got {
		if p.CategoryID != category.ID {
			t.Fatalf("category filter leaked product %q", p.Name)
		}
		if !p.IsActive {
			t.Fatalf("active filter leaked product %q", p.Name)
		}
	}
}

func TestProductList_LimitOffset(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	category := &models.Category{Name: "bulk"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		product := models.Product{CategoryID: category.ID, Name: "item", IsActive: true}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	page, err := repo.List(ProductListFilter{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}

	tail, err := repo.List(ProductListFilter{Limit: 10, Offset: 4})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tail) != 1 {
		t.Fatalf("expected 1 row after offset 4, got %d", len(tail))
	}
}
