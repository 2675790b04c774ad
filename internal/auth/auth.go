package auth

import (
	"Roshambo/internal/services"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

// JwtAuthMiddleware requires a spectator token when secret is set. The token
// comes from the Authorization header or, for browser websockets that cannot
// set headers, the token query parameter. Cookies are ignored.
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := services.ParseToken(secret, tokenString)
		if err != nil {
			slog.Warn("Rejected spectator token", "path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
