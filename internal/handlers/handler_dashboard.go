package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myteamhq/myteam_console/internal/apperrors"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/dto"
	"github.com/myteamhq/myteam_console/internal/middleware"
)

// dashboardHandler handles HTTP requests for the dashboard summary.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers the dashboard summary route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Composes the backend totals with the session user's visible counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, apperrors.ErrNetwork) || errors.Is(err, apperrors.ErrShapeMismatch) {
			logger.Warn("Dashboard summary degraded", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToDashboardResponse(summary, fetchFailedMessage))
			return
		}
		logger.Error("Failed to compose dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	logger.Info("Dashboard summary served",
		slog.Int("total", summary.TotalRecognitions),
		slog.Int("visible", summary.VisibleRecognitions))
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary, ""))
}
