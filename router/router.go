package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/controllers"
	"github.com/sushimonsters/restaurant-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.LocaleMiddleware())
	// Registered before the routes so gin bakes it into every handler chain;
	// the strict login/register limiter stacks on top of it.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	catalogCtrl := controllers.NewCatalogController(db)
	orderCtrl := controllers.NewOrderController(db)
	reservationCtrl := controllers.NewReservationController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", catalogCtrl.Index)
	r.GET("/menu", catalogCtrl.Menu)
	r.GET("/set_language/:language", authCtrl.SetLanguage)

	public := r.Group("/auth")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/auth/logout", authCtrl.Logout)

		auth.POST("/cart/add/:item_id", orderCtrl.AddToCart)
		auth.GET("/cart", orderCtrl.Cart)
		auth.POST("/cart/update/:order_id", orderCtrl.UpdateCart)
		auth.POST("/checkout", orderCtrl.Checkout)
		auth.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
		auth.GET("/order_history", orderCtrl.OrderHistory)

		auth.POST("/reservations", reservationCtrl.CreateReservation)
		auth.GET("/reservations", reservationCtrl.MyReservations)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	// The is_admin capability check is the first statement of every
	// AdminService method; the group only requires authentication.
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/menu", adminCtrl.ListMenu)
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu/:item_id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:item_id", adminCtrl.DeleteMenuItem)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.POST("/orders/:order_id/status", adminCtrl.UpdateOrderStatus)
		admin.POST("/orders/:order_id/cancel", adminCtrl.CancelOrder)

		admin.POST("/settings", adminCtrl.UpdateSettings)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.POST("/users/:user_id/toggle-admin", adminCtrl.ToggleAdmin)
		admin.DELETE("/users/:user_id", adminCtrl.DeleteUser)

		admin.GET("/reports/orders.pdf", adminCtrl.ExportOrdersPDF)
		admin.GET("/reports/revenue.png", adminCtrl.RevenueChart)
	}

	return r
}
