package game

import (
	"errors"

	"github.com/google/uuid"
)

const (
	MinRounds = 1
	MaxRounds = 21
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidRounds = errors.New("invalid number of rounds")
	ErrMatchComplete = errors.New("match already complete")
)

// Player is the human side of a session.
type Player struct {
	UserID   string
	Username string
}

func NewPlayer(username string) Player {
	return Player{
		UserID:   uuid.New().String(),
		Username: username,
	}
}

// Mode is the play mode a round was played under.
type Mode string

const (
	ModeBestOf   Mode = "best-of"
	ModePractice Mode = "practice"
)

func (m Mode) Title() string {
	return titleCase(string(m))
}
