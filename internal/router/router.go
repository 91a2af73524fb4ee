package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/storefront-api/internal/cache"
	"github.com/storefront-api/internal/config"
	"github.com/storefront-api/internal/http/handlers/store"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	storeHandler := store.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/cart", storeHandler.GetCart)
	r.POST("/cart", RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("userId")), storeHandler.UpsertCartItem)
	r.DELETE("/cart", storeHandler.RemoveCartItem)

	r.GET("/categories", storeHandler.ListCategories)
	r.POST("/categories", storeHandler.CreateCategory)
	r.PUT("/categories", storeHandler.UpdateCategory)
	r.DELETE("/categories", storeHandler.DeleteCategory)

	r.GET("/orders", storeHandler.ListOrders)
	r.POST("/orders", RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("userId")), storeHandler.CreateOrder)

	r.GET("/products", storeHandler.ListProducts)
	r.POST("/products", storeHandler.CreateProduct)
	r.PUT("/products", storeHandler.UpdateProduct)
	r.DELETE("/products", storeHandler.DeactivateProduct)

	r.GET("/addresses", storeHandler.ListAddresses)
	r.POST("/addresses", storeHandler.CreateAddress)

	return r
}
