package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/myteamhq/myteam_console/internal/adapters/backend"
	portsrepo "github.com/myteamhq/myteam_console/internal/core/ports/repositories"
	"github.com/myteamhq/myteam_console/internal/core/services"
	"github.com/myteamhq/myteam_console/internal/handlers"
	"github.com/myteamhq/myteam_console/internal/middleware"
	"github.com/myteamhq/myteam_console/internal/platform/config"
)

// @title MyTeam Console API
// @version 1.0
// @description Admin console backend for the MyTeam recognition platform. Serves role-scoped table views, charts and leaderboards derived from the upstream MyTeam API.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	// All data comes from the upstream myteam API, one client serves every
	// source port.
	client := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	sources := portsrepo.SourceProvider{
		Employees:        client,
		Recognitions:     client,
		RecognitionTypes: client,
		Leaderboard:      client,
		Metrics:          client,
	}

	container := services.NewServiceContainer(sources)

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
