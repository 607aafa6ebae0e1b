package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/muhwezim78/Nashiecom-sub000/configs"
	"github.com/muhwezim78/Nashiecom-sub000/controllers"
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/middlewares"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
	"github.com/muhwezim78/Nashiecom-sub000/services"
	"github.com/muhwezim78/Nashiecom-sub000/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger zerolog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	chatRepo := repository.NewChatRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Realtime core: explicit registry injected into router/relay/notifier
	registry := ws.NewRegistry()
	notifier := ws.NewNotifier(registry, logger)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	couponSvc := services.NewCouponService(couponRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, notifRepo, couponSvc, notifier)
	chatSvc := services.NewChatService(chatRepo, orderRepo, userRepo, notifRepo)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo)
	notifSvc := services.NewNotificationService(notifRepo)

	router := ws.NewRouter(registry, orderSvc)
	relay := ws.NewRelay(registry, chatSvc, logger)
	hub := ws.NewHub(registry, router, relay, notifier, orderSvc, chatSvc, logger)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir, cfg.UploadMaxMB)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/products/:id/reviews", reviewCtrl.ListForProduct)
	r.GET("/categories", productCtrl.Categories)

	// Customer surface
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.AddItem)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)

		u.GET("/orders/:id/messages", chatCtrl.ListMessages)
		u.POST("/orders/:id/messages", chatCtrl.SendMessage)

		u.POST("/products/:id/reviews", reviewCtrl.Create)
		u.POST("/coupons/preview", couponCtrl.Preview)

		u.GET("/notifications", notifCtrl.List)
		u.GET("/notifications/unread-count", notifCtrl.UnreadCount)
		u.PATCH("/notifications/:id/read", notifCtrl.MarkRead)
		u.POST("/notifications/read-all", notifCtrl.MarkAllRead)

		u.POST("/uploads/image", uploadCtrl.Image)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/orders", adminOrderCtrl.List)
		admin.PATCH("/orders/:id/status", adminOrderCtrl.UpdateStatus)

		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)
		admin.POST("/categories", productCtrl.CreateCategory)

		admin.GET("/coupons", couponCtrl.List)
		admin.POST("/coupons", couponCtrl.Create)
		admin.DELETE("/coupons/:id", couponCtrl.Delete)
	}

	// Realtime endpoint; token comes via ?token= on the upgrade request
	r.GET("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWS)
}
