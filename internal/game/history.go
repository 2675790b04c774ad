package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one resolved round. Ties are replayed and never recorded.
type Entry struct {
	ID           string    `json:"id"`
	MatchID      string    `json:"match_id"`
	Timestamp    time.Time `json:"timestamp"`
	Mode         Mode      `json:"mode"`
	PlayerMove   Move      `json:"player_move"`
	ComputerMove Move      `json:"computer_move"`
	Result       Outcome   `json:"result"`
}

// Totals aggregates the whole history.
type Totals struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Rounds int `json:"rounds"`
}

// History is the append-only, in-memory log of resolved rounds. The game
// appends from one goroutine; spectators may read concurrently.
type History struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

// Record appends the round unless it was a tie. It reports whether an entry
// was added.
func (h *History) Record(m *Match, player, computer Move, result Outcome) (Entry, bool) {
	if result == Tie {
		return Entry{}, false
	}
	e := Entry{
		ID:           uuid.New().String(),
		MatchID:      m.ID,
		Timestamp:    h.now(),
		Mode:         m.Mode,
		PlayerMove:   player,
		ComputerMove: computer,
		Result:       result,
	}

	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
	return e, true
}

// Entries returns a copy of the log in play order.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

func (h *History) Totals() Totals {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var t Totals
	for _, e := range h.entries {
		switch e.Result {
		case PlayerWin:
			t.Wins++
		case ComputerWin:
			t.Losses++
		}
	}
	t.Rounds = len(h.entries)
	return t
}
