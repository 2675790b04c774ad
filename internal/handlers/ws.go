package handlers

import (
	"Roshambo/internal/feed"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// WsHandler streams game events to a spectator. The first message is the
// current scoreboard; after that every published event follows in order.
func (h *Handler) WsHandler(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if h.AllowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == h.AllowedOrigin
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub, cancel := h.Hub.Subscribe()
	defer cancel()
	name := spectatorName(c)
	slog.Info("Spectator connected", "spectator", name, "subscriber", sub.ID)

	// Spectators never send anything; reading only notices the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeJSON(conn, feed.GameResponse{Command: feed.CommandScoreboard, Payload: h.Scores.Scoreboard()}); err != nil {
		slog.Warn("Spectator write failed", "spectator", name, "error", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			slog.Info("Spectator disconnected", "spectator", name, "subscriber", sub.ID)
			return
		case msg, ok := <-sub.MsgChan:
			if !ok {
				return
			}
			if err := writeJSON(conn, msg); err != nil {
				slog.Warn("Spectator write failed", "spectator", name, "error", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, msg feed.GameResponse) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
