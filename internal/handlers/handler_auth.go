package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myteamhq/myteam_console/internal/dto"
	"github.com/myteamhq/myteam_console/internal/middleware"
)

// getMe godoc
// @Summary Current session identity
// @Description Returns the identity and role carried by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
