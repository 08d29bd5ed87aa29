package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/easyscheduler/admin-backend/internal/audit"
	"github.com/easyscheduler/admin-backend/internal/auth"
	"github.com/easyscheduler/admin-backend/internal/config"
	"github.com/easyscheduler/admin-backend/internal/domain/privilege"
	"github.com/easyscheduler/admin-backend/internal/handlers"
	"github.com/easyscheduler/admin-backend/internal/infra/privcache"
	infraRepo "github.com/easyscheduler/admin-backend/internal/infra/repository"
	"github.com/easyscheduler/admin-backend/internal/middleware"
	ucWriter "github.com/easyscheduler/admin-backend/internal/usecase/writer"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Session(cfg))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	writerRepo := infraRepo.NewWriterGormRepository(db)
	roleStore := infraRepo.NewRoleGormStore(db)
	cachedRoleStore := privcache.New(roleStore, rdb, cfg.PrivilegeCacheTTL)

	gate := privilege.NewGate(cachedRoleStore)
	hasher := auth.NewHasher()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — WRITERS
	// ======================================================
	saveWriterUC := ucWriter.NewSaveWriter(
		writerRepo,
		hasher,
		auditDispatcher,
		cfg.MinPasswordLength,
	)

	deleteWriterUC := ucWriter.NewDeleteWriter(
		writerRepo,
		auditDispatcher,
	)

	getWriterUC := ucWriter.NewGetWriter(writerRepo)
	listWritersUC := ucWriter.NewListWriters(writerRepo)
	writerSettingsUC := ucWriter.NewWriterSettings(writerRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, hasher, auditDispatcher)

	writerHandler := handlers.NewWriterHandler(
		saveWriterUC,
		deleteWriterUC,
		getWriterUC,
		listWritersUC,
		writerSettingsUC,
	)

	backendHandler := handlers.NewBackendHandler(db, listWritersUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// WRITER MANAGEMENT (ajax-style: denials are 401/403, no redirects)
		// ------------------------------
		writers := api.Group("/writers")
		writers.Use(middleware.RequirePrivilege(gate, privilege.PageUsers, false))
		{
			writers.GET("", writerHandler.List)
			writers.GET("/:id", writerHandler.Get)
			writers.POST("", writerHandler.Save)
			writers.DELETE("/:id", writerHandler.Delete)

			writers.GET("/:id/settings/:name", writerHandler.GetSetting)
			writers.PUT("/:id/settings/:name", writerHandler.SetSetting)
		}

		// ------------------------------
		// BACKEND PAGES (browser-style: denials redirect)
		// ------------------------------
		backend := api.Group("/backend")
		{
			backend.GET("/appointments",
				middleware.RequirePrivilege(gate, privilege.PageAppointments, true),
				backendHandler.Appointments)

			backend.GET("/users",
				middleware.RequirePrivilege(gate, privilege.PageUsers, true),
				backendHandler.Users)
		}
	}
}
