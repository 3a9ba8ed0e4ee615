package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myteamhq/myteam_console/internal/apperrors"
	"github.com/myteamhq/myteam_console/internal/core/policy"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/dto"
	"github.com/myteamhq/myteam_console/internal/middleware"
)

// chartHandler handles HTTP requests for the metrics charts.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

func newChartHandler(cs portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{
		chartService: cs,
	}
}

// registerChartRoutes registers routes for the metrics charts.
func registerChartRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newChartHandler(chartService)

	charts := rg.Group("/charts")
	{
		charts.GET("/recognitions", h.getRecognitionCharts)
	}
}

// getRecognitionCharts godoc
// @Summary Recognition charts
// @Description Returns monthly activity and recipient-role distribution over the session user's scope. A selected role narrows the month series and a selected month narrows the role series; clickMonth/clickRole toggle the selection.
// @Tags charts
// @Produce json
// @Param month query string false "Selected month (YYYY-MM)"
// @Param role query string false "Selected recipient role"
// @Param clickMonth query string false "Month bucket being clicked (YYYY-MM)"
// @Param clickRole query string false "Role slice being clicked"
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role may not access this page"
// @Security BearerAuth
// @Router /charts/recognitions [get]
func (h *chartHandler) getRecognitionCharts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !policy.CanAccessPage(user.Role, policy.PageDashboard) {
		logger.Warn("Charts denied", slog.String("role", string(user.Role)))
		c.JSON(http.StatusForbidden, gin.H{"error": "Your role may not access the dashboard"})
		return
	}

	var req dto.ChartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for recognition charts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	data, err := h.chartService.RecognitionCharts(c.Request.Context(), user, req.ToSelection())
	if err != nil {
		if errors.Is(err, apperrors.ErrNetwork) || errors.Is(err, apperrors.ErrShapeMismatch) {
			logger.Warn("Recognition charts degraded to empty series", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToChartResponse(data, fetchFailedMessage))
			return
		}
		logger.Error("Failed to derive recognition charts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load charts"})
		return
	}

	logger.Info("Recognition charts served",
		slog.Int("months", len(data.Months)),
		slog.Int("roles", len(data.Roles)))
	c.JSON(http.StatusOK, dto.ToChartResponse(data, ""))
}
