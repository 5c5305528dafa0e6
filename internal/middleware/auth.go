package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/config"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// AuthMiddleware validates the bearer installation token and puts the
// installation ID in the request context. Every per-device storage key is
// derived from that ID downstream.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateInstallationToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		c.Set("installationID", claims.InstallationID)
		c.Next()
	}
}

// GetInstallationIDFromContext returns the installation ID set by
// AuthMiddleware.
func GetInstallationIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get("installationID")
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
