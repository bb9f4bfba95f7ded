package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SineMag/Eatery/configs"
	"github.com/SineMag/Eatery/controllers"
	"github.com/SineMag/Eatery/middlewares"
	"github.com/SineMag/Eatery/repository"
	"github.com/SineMag/Eatery/services"
	"github.com/SineMag/Eatery/ws"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *configs.Config,
	menuSvc *services.MenuService,
	cartSvc *services.CartService,
	orderSvc *services.OrderService,
	hub *ws.OrderHub,
) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	users := repository.NewUserRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(users, cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cartSvc, users, cfg)
	adminCtrl := controllers.NewAdminController(orderSvc, users)

	auth := middlewares.Auth(cfg.JWTSecret)
	staffOrAdmin := middlewares.Auth(cfg.JWTSecret, "staff", "admin")
	adminOnly := middlewares.Auth(cfg.JWTSecret, "admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Menu (public browse)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/categories", menuCtrl.Categories)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Cart (per logged-in user)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id/qty", cartCtrl.UpdateQuantity)
		cart.PUT("/items/:id/customization", cartCtrl.UpdateCustomization)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user)
	orders := r.Group("/orders", auth)
	{
		orders.POST("/checkout", orderCtrl.Checkout)
		orders.GET("", orderCtrl.ListMine)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Admin dashboard
	admin := r.Group("/admin", staffOrAdmin)
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
	}

	// admin only
	adminStrict := r.Group("/admin", adminOnly)
	{
		adminStrict.DELETE("/orders/:id", adminCtrl.DeleteOrder)
		adminStrict.GET("/staff", adminCtrl.ListStaff)
		adminStrict.POST("/staff", adminCtrl.CreateStaff)
	}

	// live order feed for the dashboard; token comes via query string on
	// browser websocket connects
	r.GET("/ws/orders", middlewares.WSAuth(cfg.JWTSecret, "staff", "admin"), hub.HandleWebSocket)
}
