package game

import "fmt"

// Outcome is the result of one round, seen from the player's side.
type Outcome uint8

const (
	Tie Outcome = iota
	PlayerWin
	ComputerWin
)

var outcomeNames = map[Outcome]string{
	Tie:         "tie",
	PlayerWin:   "win",
	ComputerWin: "loss",
}

var outcomeMessages = map[Outcome]string{
	Tie:         "Draw! 🤝",
	PlayerWin:   "Victory! 🏆",
	ComputerWin: "Defeat! 😔",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Message is the banner shown next to the outcome.
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// Flip returns the same outcome seen from the other side.
func (o Outcome) Flip() Outcome {
	switch o {
	case PlayerWin:
		return ComputerWin
	case ComputerWin:
		return PlayerWin
	default:
		return Tie
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	name, ok := outcomeNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown outcome %d", uint8(o))
	}
	return []byte(name), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for k, name := range outcomeNames {
		if name == string(text) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Resolve decides a round from a's perspective.
func Resolve(a, b Move) Outcome {
	if a == b {
		return Tie
	}
	if a.Beats(b) {
		return PlayerWin
	}
	return ComputerWin
}
