package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/myteamhq/myteam_console/cmd/docs"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/middleware"
	"github.com/myteamhq/myteam_console/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	auth := middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	// The UI establishes its session from this endpoint on load.
	r.GET("/api/auth/me", auth, getMe)

	v1 := r.Group("/api/v1", auth)
	registerViewRoutes(v1, services.View)
	registerChartRoutes(v1, services.Chart)
	registerLeaderboardRoutes(v1, services.Leaderboard)
	registerDashboardRoutes(v1, services.Dashboard)

	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators adds the console's binding rules to gin's
// validator engine.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// chartmonth: a YYYY-MM month key as emitted by the aggregator.
	_ = v.RegisterValidation("chartmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
