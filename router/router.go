package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/bistro-pos/config"
	"github.com/yeremiapane/bistro-pos/controllers"
	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/middlewares"
	"github.com/yeremiapane/bistro-pos/repository"
	"github.com/yeremiapane/bistro-pos/services"
)

// SetupRouter merakit repository -> service -> controller dan memasang route.
// Semua mutasi order lewat OrderService; route query bersifat read-only.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())
	// Rate limit 50 request per detik per IP
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Repositories
	codeEntryRepo := repository.NewCodeEntryRepository(db)
	translationRepo := repository.NewCodeTranslationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	orderItemExtraRepo := repository.NewOrderItemExtraRepository(db)
	tableRepo := repository.NewTableRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	registry := services.NewCodeRegistry(codeEntryRepo, translationRepo)
	tableService := services.NewTableService(tableRepo, registry)
	cartService := services.NewCartService(config.CartStorePath(), config.TaxRate())
	orderService := services.NewOrderService(
		orderRepo, orderItemRepo, orderItemExtraRepo, registry, tableService, config.TaxRate())

	// Controllers
	userCtrl := controllers.NewUserController(userRepo, registry)
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(orderService, cartService, registry)
	tableCtrl := controllers.NewTableController(tableService, registry)
	codeCtrl := controllers.NewCodeController(registry)

	api := r.Group("/api/v1")

	// Public. Login dibatasi lebih ketat dari rate limit umum.
	api.POST("/auth/login", middlewares.NewStrictRateLimiter(), userCtrl.Login)

	// Authenticated
	auth := api.Group("")
	auth.Use(middlewares.AuthMiddleware())
	{
		// Cart (kasir)
		auth.POST("/cart/context", cartCtrl.SetContext)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.Clear)
		auth.GET("/cart/summary", cartCtrl.GetSummary)

		// Orders
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetAllOrders)
		auth.GET("/orders/active", orderCtrl.GetActiveOrders)
		auth.GET("/orders/active-and-served", orderCtrl.GetActiveAndServedOrders)
		auth.GET("/orders/by-status", orderCtrl.GetOrdersByStatus)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.GET("/orders/:order_id/items", orderCtrl.GetOrderItems)
		auth.POST("/orders/:order_id/items", orderCtrl.AddItems)
		auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		auth.POST("/orders/:order_id/complete", orderCtrl.CompleteOrder)
		auth.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
		auth.GET("/order-items/:item_id/extras", orderCtrl.GetOrderItemExtras)

		// Progres dapur per item
		auth.PATCH("/order-items/:item_id/status",
			middlewares.RequireRoles(domain.RoleKitchen, domain.RoleAdmin),
			orderCtrl.UpdateOrderItemStatus)

		// Tables
		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
		auth.GET("/tables/:table_id/open-order", orderCtrl.GetOpenOrderByTable)
		auth.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)

		// Code table (read)
		auth.GET("/codes/:code_type", codeCtrl.GetByType)
		auth.GET("/codes/entry/:id/translation", codeCtrl.GetTranslation)

		// Admin
		admin := auth.Group("")
		admin.Use(middlewares.RequireRoles(domain.RoleAdmin))
		{
			admin.POST("/auth/register", middlewares.NewStrictRateLimiter(), userCtrl.Register)
			admin.POST("/tables", tableCtrl.CreateTable)
			admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
			admin.PATCH("/codes/active", codeCtrl.SetActive)
		}
	}

	// WebSocket events (token lewat query string)
	r.GET("/ws/events", middlewares.WebSocketAuthMiddleware(), controllers.EventsHandler)

	return r
}
