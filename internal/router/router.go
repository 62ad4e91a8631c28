// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"sweetshop/internal/cache"
	"sweetshop/internal/config"
	"sweetshop/internal/database"
	"sweetshop/internal/handler"
	"sweetshop/internal/handler/auth"
	"sweetshop/internal/handler/sweets"
	"sweetshop/internal/middleware"
	"sweetshop/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, store cache.Cache, wp worker.Pool, cfg *config.Config) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireAdmin(cfg.JWTSecret)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, store), requireAuth)

	// 註冊、登入與當前使用者
	api.POST("/auth/register", auth.RegisterHandler(db, cfg.JWTSecret, cfg.TokenTTL))
	api.POST("/auth/login", auth.LoginHandler(db, cfg.JWTSecret, cfg.TokenTTL))
	api.GET("/auth/me", auth.MeHandler(db), requireAuth)

	// 甜點目錄：任何已登入使用者可讀寫，刪除與補貨僅限管理員
	apiSweets := api.Group("/sweets", requireAuth)
	apiSweets.POST("", sweets.CreateSweetHandler(db, store, wp))
	apiSweets.GET("", sweets.ListSweetsHandler(db, store, cfg.CacheTTL))
	apiSweets.GET("/search", sweets.SearchSweetsHandler(db))
	apiSweets.PUT("/:id", sweets.UpdateSweetHandler(db, store, wp))
	apiSweets.POST("/:id/purchase", sweets.PurchaseSweetHandler(db, store, wp))

	apiSweets.DELETE("/:id", sweets.DeleteSweetHandler(db, store, wp), requireAdmin)
	apiSweets.POST("/:id/restock", sweets.RestockSweetHandler(db, store, wp), requireAdmin)
}
