package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StudioVitaBR/studio-manager/internal/audit"
	"github.com/StudioVitaBR/studio-manager/internal/cache"
	"github.com/StudioVitaBR/studio-manager/internal/config"
	"github.com/StudioVitaBR/studio-manager/internal/handlers"
	infraRepo "github.com/StudioVitaBR/studio-manager/internal/infra/repository"
	"github.com/StudioVitaBR/studio-manager/internal/middleware"
	"github.com/StudioVitaBR/studio-manager/internal/storage"
	ucAppointment "github.com/StudioVitaBR/studio-manager/internal/usecase/appointment"
	ucDashboard "github.com/StudioVitaBR/studio-manager/internal/usecase/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	statsCache := cache.NewStatsCache(cfg.RedisAddr, time.Minute)
	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	getStatsUC := ucDashboard.NewGetStats(
		dashboardRepo,
		cfg.StudioTimezone,
		cfg.RecentPaymentsLimit,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher, statsCache, photoStore)
	packageHandler := handlers.NewPackageHandler(db, auditDispatcher, statsCache)
	customerPackageHandler := handlers.NewCustomerPackageHandler(db, auditDispatcher, statsCache)
	paymentHandler := handlers.NewPaymentHandler(db, auditDispatcher, statsCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		listAppointmentsUC,
		appointmentRepo,
		statsCache,
	)

	dashboardHandler := handlers.NewDashboardHandler(getStatsUC, statsCache)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/dashboard/stats", dashboardHandler.Stats)

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		api.GET("/customers", customerHandler.List)
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers/:id", customerHandler.Get)
		api.PUT("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)

		// ------------------------------
		// PACKAGES
		// ------------------------------
		api.GET("/packages", packageHandler.List)
		api.POST("/packages", packageHandler.Create)
		api.GET("/packages/:id", packageHandler.Get)
		api.PUT("/packages/:id", packageHandler.Update)
		api.DELETE("/packages/:id", packageHandler.Delete)

		// ------------------------------
		// CUSTOMER PACKAGES (vendas)
		// ------------------------------
		api.GET("/customer-packages", customerPackageHandler.List)
		api.POST("/customer-packages", customerPackageHandler.Create)
		api.GET("/customer-packages/customer/:customerID", customerPackageHandler.ListByCustomer)

		// ------------------------------
		// APPOINTMENTS (sem delete)
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/date/:date", appointmentHandler.ListByDate)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)

		// ------------------------------
		// PAYMENTS (registro do faturamento)
		// ------------------------------
		api.GET("/payments", paymentHandler.List)
		api.POST("/payments", paymentHandler.Create)
	}
}
