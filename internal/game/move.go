package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Move is one of the three hand shapes. The zero value is not a valid move.
type Move uint8

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

// Moves lists the legal moves in menu order.
var Moves = []Move{Rock, Paper, Scissors}

var moveNames = map[Move]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
}

var moveSymbols = map[Move]string{
	Rock:     "✊",
	Paper:    "✋",
	Scissors: "✌️",
}

var moveDescriptions = map[Move]string{
	Rock:     "A solid rock-solid choice!",
	Paper:    "Smooth as a sheet of paper.",
	Scissors: "Sharp and precise cutting edge.",
}

// beats maps each move to the one move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// titleCase builds a fresh Caser per call; Casers are not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func (m Move) Valid() bool {
	_, ok := moveNames[m]
	return ok
}

// Name is the lowercase wire name of the move, e.g. "rock".
func (m Move) Name() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return ""
}

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return titleCase(m.Name())
}

func (m Move) Symbol() string {
	return moveSymbols[m]
}

func (m Move) Description() string {
	return moveDescriptions[m]
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	target, ok := beats[m]
	return ok && target == other
}

// ParseMove accepts a menu number (1-3), a move name or its first letter,
// case-insensitively.
func ParseMove(input string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Moves) {
			return Moves[n-1], nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, input)
	}
	for _, m := range Moves {
		name := m.Name()
		if s == name || (len(s) == 1 && s == name[:1]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, input)
}

func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMove, uint8(m))
	}
	return []byte(m.Name()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
