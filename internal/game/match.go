package game

import (
	"fmt"

	"github.com/google/uuid"
)

// State is where a match sits between rounds.
type State uint8

const (
	AwaitingMove State = iota
	RoundResolved
	MatchComplete
)

func (s State) String() string {
	switch s {
	case AwaitingMove:
		return "awaiting-move"
	case RoundResolved:
		return "round-resolved"
	case MatchComplete:
		return "match-complete"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Match holds the score of one best-of-N or practice session. Ties never
// touch the score or the round counter.
type Match struct {
	ID            string
	Mode          Mode
	Rounds        int
	RoundsToWin   int
	Round         int
	PlayerScore   int
	ComputerScore int
	state         State
}

// NormalizeRounds checks n against the allowed range and forces it odd.
func NormalizeRounds(n int) (int, error) {
	if n < MinRounds || n > MaxRounds {
		return 0, fmt.Errorf("%w: %d not in %d-%d", ErrInvalidRounds, n, MinRounds, MaxRounds)
	}
	if n%2 == 0 {
		n++
	}
	return n, nil
}

// RoundsToWin is ceil((n+1)/2): the majority of an odd n.
func RoundsToWin(n int) int {
	return (n + 2) / 2
}

func NewBestOf(n int) (*Match, error) {
	rounds, err := NormalizeRounds(n)
	if err != nil {
		return nil, err
	}
	return &Match{
		ID:          uuid.New().String(),
		Mode:        ModeBestOf,
		Rounds:      rounds,
		RoundsToWin: RoundsToWin(rounds),
	}, nil
}

// NewPractice starts an unlimited match that only ends when the player stops.
func NewPractice() *Match {
	return &Match{
		ID:   uuid.New().String(),
		Mode: ModePractice,
	}
}

func (m *Match) State() State {
	return m.state
}

// CurrentRound is the 1-based number of the round being played.
func (m *Match) CurrentRound() int {
	return m.Round + 1
}

// Play resolves one round. A tie leaves the match awaiting a replay.
func (m *Match) Play(player, computer Move) (Outcome, error) {
	if m.state == MatchComplete {
		return Tie, ErrMatchComplete
	}
	if !player.Valid() || !computer.Valid() {
		return Tie, fmt.Errorf("%w: %d vs %d", ErrInvalidMove, uint8(player), uint8(computer))
	}

	outcome := Resolve(player, computer)
	switch outcome {
	case Tie:
		m.state = AwaitingMove
		return outcome, nil
	case PlayerWin:
		m.PlayerScore++
	case ComputerWin:
		m.ComputerScore++
	}
	m.Round++

	if m.Mode == ModeBestOf && (m.PlayerScore >= m.RoundsToWin || m.ComputerScore >= m.RoundsToWin) {
		m.state = MatchComplete
	} else {
		m.state = RoundResolved
	}
	return outcome, nil
}

// Winner reports who took the match once it is complete.
func (m *Match) Winner() (Outcome, bool) {
	if m.state != MatchComplete {
		return Tie, false
	}
	if m.PlayerScore > m.ComputerScore {
		return PlayerWin, true
	}
	return ComputerWin, true
}

// MatchScore is a read-only snapshot of a match.
type MatchScore struct {
	ID            string `json:"id"`
	Mode          Mode   `json:"mode"`
	Round         int    `json:"round"`
	Rounds        int    `json:"rounds,omitempty"`
	RoundsToWin   int    `json:"rounds_to_win,omitempty"`
	PlayerScore   int    `json:"player_score"`
	ComputerScore int    `json:"computer_score"`
	State         string `json:"state"`
	Winner        string `json:"winner,omitempty"`
}

func (m *Match) Score() MatchScore {
	s := MatchScore{
		ID:            m.ID,
		Mode:          m.Mode,
		Round:         m.Round,
		Rounds:        m.Rounds,
		RoundsToWin:   m.RoundsToWin,
		PlayerScore:   m.PlayerScore,
		ComputerScore: m.ComputerScore,
		State:         m.state.String(),
	}
	if w, ok := m.Winner(); ok {
		s.Winner = w.String()
	}
	return s
}

// Scoreboard is what spectators see: session totals plus the live match.
type Scoreboard struct {
	Player string      `json:"player"`
	Totals Totals      `json:"totals"`
	Match  *MatchScore `json:"match,omitempty"`
}
