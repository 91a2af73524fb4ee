package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/storefront-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func money(t *testing.T, value string) models.Money {
	t.Helper()
	return models.NewMoneyFromDecimal(decimal.RequireFromString(value))
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category %s failed: %v", name, err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, name, price string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		CategoryID: categoryID,
		Name:       name,
		Price:      money(t, price),
		Stock:      stock,
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product %s failed: %v", name, err)
	}
	return product
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) *models.ShippingAddress {
	t.Helper()

	address := &models.ShippingAddress{
		UserID:       userID,
		FullName:     "Test Recipient",
		AddressLine1: "1 Demo Street",
		City:         "Springfield",
		Country:      "US",
	}
	if err := db.Create(address).Error; err != nil {
		t.Fatalf("seed address for user %d failed: %v", userID, err)
	}
	return address
}
