package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/curex-labs/currency_exchange_app/internal/adapters/database/mongodb"
	"github.com/curex-labs/currency_exchange_app/internal/adapters/fxapi"
	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/curex-labs/currency_exchange_app/internal/core/services"
	"github.com/curex-labs/currency_exchange_app/internal/handlers"
	"github.com/curex-labs/currency_exchange_app/internal/middleware"
	"github.com/curex-labs/currency_exchange_app/internal/platform/config"
	"github.com/curex-labs/currency_exchange_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Currency Exchange API
// @version 1.0
// @description Currency conversion backend over the Frankfurter FX API.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := database.CloseMongo(db); cerr != nil {
			logger.Error("Error closing MongoDB connection", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("MongoDB connection established.")

	// Repositories
	userRepo, err := mongodb.NewUserRepository(ctx, db)
	if err != nil {
		logger.Error("Failed to initialize user repository", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sessionRepo := mongodb.NewSessionRepository(db)
	recordRepo := mongodb.NewConversionRecordRepository(db)

	// One shared FX client for the whole process; it pools connections and
	// retries transient upstream failures.
	fxClient := fxapi.NewClient(cfg, logger)

	rateService := services.NewRateService(fxClient)
	container := &portssvc.ServiceContainer{
		Rate:    rateService,
		Records: services.NewConversionService(rateService, recordRepo),
		Auth:    services.NewAuthService(userRepo, sessionRepo, cfg.SessionTTL),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (CORS, logging, recovery)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig), middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
