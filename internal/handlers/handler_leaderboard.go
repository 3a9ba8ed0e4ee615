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

// leaderboardHandler handles HTTP requests for the leaderboard panels.
type leaderboardHandler struct {
	leaderboardService portssvc.LeaderboardSvcFacade
}

func newLeaderboardHandler(ls portssvc.LeaderboardSvcFacade) *leaderboardHandler {
	return &leaderboardHandler{
		leaderboardService: ls,
	}
}

// registerLeaderboardRoutes registers routes for the leaderboard panels.
func registerLeaderboardRoutes(rg *gin.RouterGroup, leaderboardService portssvc.LeaderboardSvcFacade) {
	h := newLeaderboardHandler(leaderboardService)

	leaderboard := rg.Group("/leaderboard")
	{
		leaderboard.GET("/top-senders", h.getTopSenders)
		leaderboard.GET("/top-recipients", h.getTopRecipients)
	}
}

// getTopSenders godoc
// @Summary Top senders leaderboard
// @Description Returns the top recognition senders, searched, sorted by points and truncated to topN
// @Tags leaderboard
// @Produce json
// @Param topN query int false "Keep only the first N rows after sorting"
// @Param search query string false "Substring match on entry names"
// @Param sortOrder query string false "asc or desc" Enums(asc, desc)
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role may not access this page"
// @Security BearerAuth
// @Router /leaderboard/top-senders [get]
func (h *leaderboardHandler) getTopSenders(c *gin.Context) {
	h.servePanel(c, portssvc.TopSenders)
}

// getTopRecipients godoc
// @Summary Top recipients leaderboard
// @Description Returns the top recognition recipients, searched, sorted by points and truncated to topN
// @Tags leaderboard
// @Produce json
// @Param topN query int false "Keep only the first N rows after sorting"
// @Param search query string false "Substring match on entry names"
// @Param sortOrder query string false "asc or desc" Enums(asc, desc)
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role may not access this page"
// @Security BearerAuth
// @Router /leaderboard/top-recipients [get]
func (h *leaderboardHandler) getTopRecipients(c *gin.Context) {
	h.servePanel(c, portssvc.TopRecipients)
}

func (h *leaderboardHandler) servePanel(c *gin.Context, kind portssvc.LeaderboardKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !policy.CanAccessPage(user.Role, policy.PageLeaderboard) {
		logger.Warn("Leaderboard denied", slog.String("role", string(user.Role)))
		c.JSON(http.StatusForbidden, gin.H{"error": "Your role may not access the leaderboard"})
		return
	}

	var req dto.LeaderboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for leaderboard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.leaderboardService.Panel(c.Request.Context(), kind, portssvc.LeaderboardQuery{
		Search:    req.Search,
		SortOrder: req.SortOrder,
		TopN:      req.TopN,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNetwork) || errors.Is(err, apperrors.ErrShapeMismatch) {
			logger.Warn("Leaderboard degraded to empty panel",
				slog.String("kind", string(kind)),
				slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToLeaderboardResponse(entries, fetchFailedMessage))
			return
		}
		logger.Error("Failed to derive leaderboard panel", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}

	logger.Info("Leaderboard panel served",
		slog.String("kind", string(kind)),
		slog.Int("entries", len(entries)))
	c.JSON(http.StatusOK, dto.ToLeaderboardResponse(entries, ""))
}
