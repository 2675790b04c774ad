package routes

import (
	"Roshambo/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func PublicRoutes(r *gin.Engine, handler *handlers.Handler) {
	r.GET("/ping", handler.PingHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
