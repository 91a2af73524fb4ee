package main

import (
	"github.com/storefront-api/internal/config"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	db, err := models.Open(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	})
	if err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Electronics", Description: "Phones, laptops and gadgets"},
		{Name: "Books", Description: "Paper and digital books"},
		{Name: "Home", Description: "Home and kitchen supplies"},
	}
	for i := range categories {
		if err := db.Where("name = ?", categories[i].Name).
			FirstOrCreate(&categories[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", categories[i].Name, err)
		}
	}

	// 添加商品
	products := []models.Product{
		{
			CategoryID:  categories[0].ID,
			Name:        "Wireless Earbuds",
			Description: "Bluetooth 5.3 earbuds with charging case",
			Price:       models.NewMoneyFromDecimal(decimal.RequireFromString("59.99")),
			ImageURL:    "https://example.com/images/earbuds.jpg",
			Stock:       120,
			IsActive:    true,
		},
		{
			CategoryID:  categories[0].ID,
			Name:        "USB-C Charger 65W",
			Description: "GaN fast charger with two ports",
			Price:       models.NewMoneyFromDecimal(decimal.RequireFromString("29.50")),
			ImageURL:    "https://example.com/images/charger.jpg",
			Stock:       200,
			IsActive:    true,
		},
		{
			CategoryID:  categories[1].ID,
			Name:        "The Go Programming Language",
			Description: "Reference book for Go developers",
			Price:       models.NewMoneyFromDecimal(decimal.RequireFromString("39.00")),
			ImageURL:    "https://example.com/images/gopl.jpg",
			Stock:       35,
			IsActive:    true,
		},
		{
			CategoryID:  categories[2].ID,
			Name:        "Ceramic Mug Set",
			Description: "Set of four 350ml mugs",
			Price:       models.NewMoneyFromDecimal(decimal.RequireFromString("18.75")),
			ImageURL:    "https://example.com/images/mugs.jpg",
			Stock:       80,
			IsActive:    true,
		},
	}
	for i := range products {
		if err := db.Where("name = ?", products[i].Name).
			FirstOrCreate(&products[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", products[i].Name, err)
		}
	}

	// 演示用收货地址
	address := models.ShippingAddress{
		UserID:       1,
		FullName:     "Demo User",
		AddressLine1: "100 Market Street",
		City:         "San Francisco",
		State:        "CA",
		PostalCode:   "94105",
		Country:      "US",
		PhoneNumber:  "+1-555-0100",
		IsDefault:    true,
	}
	if err := db.Where("user_id = ? AND address_line1 = ?", address.UserID, address.AddressLine1).
		FirstOrCreate(&address).Error; err != nil {
		stdLog.Fatalf("Failed to seed address: %v", err)
	}

	stdLog.Printf("Seed finished: %d categories, %d products", len(categories), len(products))
}
