package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tripflow/tripflow_backend/internal/clients/nominatim"
	"github.com/tripflow/tripflow_backend/internal/core/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
	"github.com/tripflow/tripflow_backend/internal/handlers"
	"github.com/tripflow/tripflow_backend/internal/middleware"
	"github.com/tripflow/tripflow_backend/internal/platform/config"
	"github.com/tripflow/tripflow_backend/internal/platform/database"
	"github.com/tripflow/tripflow_backend/internal/repositories/database/sqlite"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Database opened", slog.String("path", cfg.DBPath))

	if err := database.RunMigrations(db); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the mobile client dev server)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Attach cross-field request validations to the binding validator
	dto.RegisterValidations()

	geocoder := nominatim.NewClient(cfg.NominatimBaseURL, cfg.NominatimUserAgent)
	repos := sqlite.NewRepositoryContainer(db)
	serviceContainer := services.NewServiceContainer(repos, geocoder)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
