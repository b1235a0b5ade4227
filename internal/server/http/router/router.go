package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/AbhishekM14/order-management-api/internal/server/http/handlers"
	"github.com/AbhishekM14/order-management-api/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, parser middleware.TokenParser, users middleware.UserLoader, limits handlers.PageLimits, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade, limits)
	orderHandler := handlers.NewOrderHandler(facade, limits)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authenticated := api.Group("")
	authenticated.Use(middleware.AuthRequired(parser, users))

	products := authenticated.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)

	productAdmin := products.Group("")
	productAdmin.Use(middleware.RequireAdmin())
	productAdmin.POST("", productHandler.Create)
	productAdmin.PUT("/:id", productHandler.Update)
	productAdmin.DELETE("/:id", productHandler.Delete)

	orders := authenticated.Group("/orders")
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.Mine)
	orders.GET("/:id", orderHandler.Get)

	admin := authenticated.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	return engine
}
