package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// SessionClaims are the claims the upstream auth service puts on console
// tokens. Subject carries the user's email.
type SessionClaims struct {
	Role   string `json:"role"`
	UnitID string `json:"unitId,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and establishes the session
// User for the request. The console never issues tokens; it only reads the
// identity the upstream minted.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		}, jwt.WithIssuer(issuer))

		if err != nil || !token.Valid {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Invalid token", slog.String("error", errString(err)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("Email (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		user := domain.User{
			Email:  claims.Subject,
			Role:   domain.ParseRole(claims.Role),
			UnitID: claims.UnitID,
		}

		// Unknown roles still authenticate; every policy check fails closed
		// on them, so they can only reach the pages open to nobody.
		if !user.Role.Known() {
			logger.Warn("Unrecognised role in token", slog.String("role", string(user.Role)))
		}

		enrichedLogger := logger.With(
			slog.String("user_email", user.Email),
			slog.String("user_role", string(user.Role)),
		)

		ctx := context.WithValue(c.Request.Context(), userCtxKey, user)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
