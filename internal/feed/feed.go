package feed

import (
	"Roshambo/internal/metrics"
	"log/slog"
	"sync"
)

const (
	CommandMatchStarted = "matchStarted"
	CommandRoundTied    = "roundTied"
	CommandRoundPlayed  = "roundPlayed"
	CommandMatchEnded   = "matchEnded"
	CommandScoreboard   = "scoreboard"
)

const subscriberBuffer = 32

// GameResponse is one event pushed to spectators.
type GameResponse struct {
	Command string `json:"command"`
	Payload any    `json:"payload"`
}

type Subscriber struct {
	ID      int
	MsgChan chan GameResponse
}

// Hub fans game events out to live spectators. Publish never blocks: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int]*Subscriber
	nextID      int
}

func NewHub() *Hub {
	return &Hub{
		subscribers: map[int]*Subscriber{},
	}
}

// Subscribe registers a new spectator. The returned func removes it and
// closes its channel; calling it twice is safe.
func (h *Hub) Subscribe() (*Subscriber, func()) {
	h.mu.Lock()
	h.nextID++
	sub := &Subscriber{
		ID:      h.nextID,
		MsgChan: make(chan GameResponse, subscriberBuffer),
	}
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()

	metrics.Spectators.Inc()
	slog.Debug("Spectator joined", "subscriber", sub.ID)

	var once sync.Once
	return sub, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, sub.ID)
			close(sub.MsgChan)
			h.mu.Unlock()

			metrics.Spectators.Dec()
			slog.Debug("Spectator left", "subscriber", sub.ID)
		})
	}
}

func (h *Hub) Publish(command string, payload any) {
	msg := GameResponse{Command: command, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, sub := range h.subscribers {
		select {
		case sub.MsgChan <- msg:
		default:
			metrics.FeedDropped.Inc()
			slog.Warn("Spectator too slow, dropping event", "subscriber", id, "command", command)
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
