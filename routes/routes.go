package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/parthdk16/Restaurant-Management-System-sub001/configs"
	"github.com/parthdk16/Restaurant-Management-System-sub001/controllers"
	"github.com/parthdk16/Restaurant-Management-System-sub001/middlewares"
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/billing"
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/objectstore"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, rdb *redis.Client) error {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	txnRepo := repository.NewTransactionRepository(db)

	// Services
	authSvc := services.NewAuthService(adminRepo, rdb, cfg.JWTSecret, cfg.JWTTTL)
	tableSvc := services.NewTableService(tableRepo, menuRepo, billing.MustRate(cfg.TaxRate))
	menuSvc := services.NewMenuService(menuRepo)
	checkoutSvc := services.NewCheckoutService(db, tableSvc, orderRepo, txnRepo)
	txnSvc := services.NewTransactionService(txnRepo)
	reportSvc := services.NewReportService(tableRepo, menuRepo, orderRepo, txnRepo, rdb)

	if err := tableSvc.LoadSessions(); err != nil {
		return err
	}

	store := objectstore.NewLocal(cfg.UploadDir, cfg.JWTSecret)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tableCtrl := controllers.NewTableController(tableSvc, checkoutSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(checkoutSvc)
	txnCtrl := controllers.NewTransactionController(txnSvc)
	dashCtrl := controllers.NewDashboardController(reportSvc)
	uploadCtrl := controllers.NewUploadController(store)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, authSvc.IsRevoked, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", middlewares.RateLimit("10-M"), authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Admin dashboard
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/dashboard", dashCtrl.Dashboard)

		// Tables + per-table session
		admin.GET("/tables", tableCtrl.List)
		admin.POST("/tables", tableCtrl.Create)
		admin.PATCH("/tables/:id", tableCtrl.Update)
		admin.DELETE("/tables/:id", tableCtrl.Delete)
		admin.PATCH("/tables/:id/status", tableCtrl.SetStatus)
		admin.GET("/tables/:id/session", tableCtrl.Session)
		admin.POST("/tables/:id/cart", tableCtrl.AddItem)
		admin.PATCH("/tables/:id/cart/:itemId", tableCtrl.UpdateLine)
		admin.PATCH("/tables/:id/split", tableCtrl.SetSplit)
		admin.POST("/tables/:id/bill", tableCtrl.GenerateBill)
		admin.POST("/tables/:id/checkout", tableCtrl.CheckoutTable)

		// Menu
		admin.GET("/menu", menuCtrl.List)
		admin.POST("/menu", menuCtrl.Create)
		admin.GET("/menu/:id", menuCtrl.Detail)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)

		// Orders + transactions
		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/:id", orderCtrl.Detail)
		admin.GET("/transactions", txnCtrl.List)
		admin.GET("/transactions/export", txnCtrl.ExportCSV)

		// Photo uploads
		admin.POST("/uploads/presign", uploadCtrl.Presign)
		admin.PUT("/uploads/:token", uploadCtrl.Put)
		admin.POST("/uploads", uploadCtrl.Direct)
	}

	return nil
}
