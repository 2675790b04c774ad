package routes

import (
	"Roshambo/internal/auth"
	"Roshambo/internal/handlers"

	"github.com/gin-gonic/gin"
)

// ProtectedRoutes are open when secret is empty and need a spectator token
// otherwise.
func ProtectedRoutes(r *gin.Engine, handler *handlers.Handler, secret string) {
	spectators := r.Group("/").Use(auth.JwtAuthMiddleware(secret))

	spectators.GET("/history", handler.GetHistory)
	spectators.GET("/score", handler.GetScore)
	spectators.GET("/ws/live", handler.WsHandler)
}
