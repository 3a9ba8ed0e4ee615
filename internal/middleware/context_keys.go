package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// contextKey is a private type so context values can't collide with other
// packages.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userCtxKey   = contextKey("user")
)

// GetUserFromContext retrieves the authenticated session user. It returns
// the user and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (domain.User, bool) {
	val := c.Request.Context().Value(userCtxKey)
	if val == nil {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}
