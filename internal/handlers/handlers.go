package handlers

import (
	"Roshambo/internal/auth"
	"Roshambo/internal/feed"
	"Roshambo/internal/game"
	"Roshambo/internal/services"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// ScoreReader exposes the live session score.
type ScoreReader interface {
	Scoreboard() game.Scoreboard
}

// Handler serves the read-only spectator API.
type Handler struct {
	History       *game.History
	Scores        ScoreReader
	Hub           *feed.Hub
	AllowedOrigin string
}

func getClaims(c *gin.Context) (services.Claims, error) {
	claimsValue, ok := c.Get(auth.ClaimsKey)
	if !ok {
		return services.Claims{}, fmt.Errorf("error getting claims")
	}
	claims, ok := claimsValue.(jwt.MapClaims)
	if !ok {
		return services.Claims{}, fmt.Errorf("error converting claims")
	}
	return services.ClaimsFromMap(claims), nil
}

// spectatorName is the viewer's username, or "anonymous" when the API
// runs without a secret.
func spectatorName(c *gin.Context) string {
	claims, err := getClaims(c)
	if err != nil || claims.Username == "" {
		return "anonymous"
	}
	return claims.Username
}

func (h *Handler) PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *Handler) GetHistory(c *gin.Context) {
	entries := h.History.Entries()
	slog.Debug("History requested", "spectator", spectatorName(c), "entries", len(entries))
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (h *Handler) GetScore(c *gin.Context) {
	c.JSON(http.StatusOK, h.Scores.Scoreboard())
}
