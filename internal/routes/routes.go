package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautylink/salon-scheduler/internal/audit"
	"github.com/beautylink/salon-scheduler/internal/cache"
	"github.com/beautylink/salon-scheduler/internal/config"
	"github.com/beautylink/salon-scheduler/internal/handlers"
	infraRepo "github.com/beautylink/salon-scheduler/internal/infra/repository"
	"github.com/beautylink/salon-scheduler/internal/mailer"
	"github.com/beautylink/salon-scheduler/internal/middleware"
	"github.com/beautylink/salon-scheduler/internal/storage"
	ucAppointment "github.com/beautylink/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	publicCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	photoStore := storage.NewPhotoStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailDispatcher := mailer.NewDispatcher(mailer.New(cfg))

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.SlotStepping,
	)

	createBookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		cfg.SlotStepping,
		mailDispatcher,
		auditDispatcher,
	)

	transitionUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db, publicCache)

	serviceHandler := handlers.NewServiceHandler(db, publicCache)
	employeeHandler := handlers.NewEmployeeHandler(db, publicCache, photoStore)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	plannerHandler := handlers.NewPlannerHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(db, transitionUC)

	shareHandler := handlers.NewShareHandler(db, cfg.PublicBaseURL)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		publicCache,
		getAvailabilityUC,
		createBookingUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (página de agendamento)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", profileHandler.Get)
			secured.PATCH("/me", profileHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/employees", employeeHandler.List)
			secured.POST("/me/employees", employeeHandler.Create)
			secured.PATCH("/me/employees/:id", employeeHandler.Update)
			secured.DELETE("/me/employees/:id", employeeHandler.Delete)
			secured.POST("/me/employees/:id/photo", employeeHandler.UploadPhoto)

			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Update)

			secured.GET("/me/planner", plannerHandler.Week)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/me/stats", appointmentHandler.Stats)

			secured.GET("/me/share", shareHandler.Link)
			secured.GET("/me/share/qrcode", shareHandler.QRCode)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
