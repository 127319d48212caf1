package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/config"
	"github.com/dommestudio/lash-studio-api/internal/handlers"
	infraRepo "github.com/dommestudio/lash-studio-api/internal/infra/repository"
	"github.com/dommestudio/lash-studio-api/internal/media"
	"github.com/dommestudio/lash-studio-api/internal/middleware"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

func RegisterRoutes(r *gin.Engine, store recordstore.Store, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewStudioRepository(store)

	auditLogger := audit.New(store)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := media.NewUploader(cfg)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(store, cfg)
	clientHandler := handlers.NewClientHandler(store, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(repo, auditDispatcher)
	financeHandler := handlers.NewFinanceHandler(repo, auditDispatcher)
	consentHandler := handlers.NewConsentHandler(store, auditDispatcher)
	photoHandler := handlers.NewPhotoHandler(store, uploader, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)
			secured.PATCH("/me", authHandler.UpdateProfile)

			// ------------------------------
			// CLIENTES + DOSSIÊ
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.PUT("/clients/:id/dossie/:entryId/analysis", consentHandler.SaveAnalysis)
			secured.POST("/clients/:id/photos", photoHandler.Upload)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Edit)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// FINANCEIRO
			// ------------------------------
			secured.GET("/finance/overview", financeHandler.Overview)
			secured.GET("/finance/receivables", financeHandler.Receivables)
			secured.PATCH("/finance/appointments/:id/settle", financeHandler.Settle)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
