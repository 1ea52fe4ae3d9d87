package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gleamhub/carwash-booking/internal/audit"
	"github.com/gleamhub/carwash-booking/internal/config"
	"github.com/gleamhub/carwash-booking/internal/handlers"
	"github.com/gleamhub/carwash-booking/internal/images"
	infraRepo "github.com/gleamhub/carwash-booking/internal/infra/repository"
	"github.com/gleamhub/carwash-booking/internal/middleware"
	"github.com/gleamhub/carwash-booking/internal/payment"
	ucOrder "github.com/gleamhub/carwash-booking/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploadStore := images.NewStore(cfg.UploadDir)
	imageResolver := images.NewResolver(
		uploadStore.Dir(),
		cfg.ModelsImageDir,
		cfg.BrandsImageDir,
	)

	gateway := payment.NewGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// ======================================================
	// USE CASES — ORDERS
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(orderRepo, cfg.Timezone, auditDispatcher)
	bookedSlotsUC := ucOrder.NewBookedSlots(orderRepo, cfg.Timezone)
	verifyPaymentUC := ucOrder.NewVerifyPayment(orderRepo, cfg.RazorpayKeySecret, auditDispatcher)
	updateOrderUC := ucOrder.NewUpdateOrder(orderRepo, auditDispatcher)
	exportCSVUC := ucOrder.NewExportCSV(orderRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	brandHandler := handlers.NewBrandHandler(db, uploadStore, auditDispatcher)
	carModelHandler := handlers.NewCarModelHandler(db, uploadStore, auditDispatcher)
	segmentHandler := handlers.NewSegmentHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, uploadStore, auditDispatcher)
	locationHandler := handlers.NewLocationHandler(db, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)
	imageHandler := handlers.NewImageHandler(imageResolver)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	webHandler := handlers.NewWebHandler(db)

	orderHandler := handlers.NewOrderHandler(
		orderRepo,
		createOrderUC,
		bookedSlotsUC,
		verifyPaymentUC,
		updateOrderUC,
		exportCSVUC,
		gateway,
		auditDispatcher,
		cfg.Timezone,
	)

	// ======================================================
	// WEB PAGES
	// ======================================================
	r.GET("/", webHandler.BookingPage)
	r.GET("/admin", webHandler.AdminPage)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		api.GET("/cars/brands", brandHandler.List)
		api.GET("/cars/models/:brandId", carModelHandler.ListByBrand)
		api.GET("/cars/segments", segmentHandler.List)

		api.GET("/services", serviceHandler.List)
		api.GET("/locations", locationHandler.List)

		api.GET("/orders/slots", orderHandler.Slots)
		api.POST("/orders", orderHandler.Create)
		api.POST("/orders/create-razorpay-order", orderHandler.CreateGatewayOrder)
		api.POST("/orders/verify-payment", orderHandler.VerifyPayment)

		api.GET("/settings", settingsHandler.List)
		api.GET("/images/:name", imageHandler.Get)

		// ------------------------------
		// ADMIN (bearer JWT)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/cars/brands", brandHandler.Create)
			secured.PUT("/cars/brands/:id", brandHandler.Update)
			secured.DELETE("/cars/brands/:id", brandHandler.Delete)

			secured.POST("/cars/models", carModelHandler.Create)
			secured.PUT("/cars/models/:id", carModelHandler.Update)
			secured.DELETE("/cars/models/:id", carModelHandler.Delete)

			secured.POST("/cars/segments", segmentHandler.Create)
			secured.DELETE("/cars/segments/:id", segmentHandler.Delete)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/locations/all", locationHandler.ListAll)
			secured.POST("/locations", locationHandler.Create)
			secured.DELETE("/locations/:id", locationHandler.Delete)

			secured.GET("/orders", orderHandler.List)
			secured.PUT("/orders/:id", orderHandler.Update)
			secured.GET("/orders/csv", orderHandler.ExportCSV)
			secured.DELETE("/orders", orderHandler.DeleteAll)
			secured.GET("/orders/:id/invoice", orderHandler.Invoice)

			secured.PUT("/settings/:key", settingsHandler.Update)
			secured.POST("/settings/seed", settingsHandler.Seed)

			secured.GET("/admin/audit-logs", auditLogsHandler.List)
		}
	}
}
