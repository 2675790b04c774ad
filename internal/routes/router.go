package routes

import (
	"Roshambo/internal/handlers"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// New builds the spectator router. gin's own console logging is off so it
// never interleaves with the game on stdout.
func New(handler *handlers.Handler, secret string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	PublicRoutes(r, handler)
	ProtectedRoutes(r, handler, secret)
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}
