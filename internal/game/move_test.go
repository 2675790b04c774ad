package game

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Move
		wantErr error
	}{
		{name: "menu number rock", input: "1", want: Rock},
		{name: "menu number paper", input: "2", want: Paper},
		{name: "menu number scissors", input: " 3 ", want: Scissors},
		{name: "name", input: "Paper", want: Paper},
		{name: "upper name", input: "SCISSORS", want: Scissors},
		{name: "initial", input: "r", want: Rock},
		{name: "zero", input: "0", wantErr: ErrInvalidMove},
		{name: "out of range", input: "4", wantErr: ErrInvalidMove},
		{name: "negative", input: "-1", wantErr: ErrInvalidMove},
		{name: "empty", input: "", wantErr: ErrInvalidMove},
		{name: "unknown word", input: "lizard", wantErr: ErrInvalidMove},
		{name: "prefix is not enough", input: "roc", wantErr: ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMove(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseMove(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoveDisplay(t *testing.T) {
	if got := Scissors.String(); got != "Scissors" {
		t.Fatalf("Scissors.String() = %q", got)
	}
	if got := Move(0).String(); got != "Move(0)" {
		t.Fatalf("Move(0).String() = %q", got)
	}
	for _, m := range Moves {
		if m.Symbol() == "" || m.Description() == "" {
			t.Fatalf("%v missing symbol or description", m)
		}
	}
}

func TestMoveBeatsIsCyclic(t *testing.T) {
	for _, a := range Moves {
		wins := 0
		for _, b := range Moves {
			if a.Beats(b) {
				wins++
				if b.Beats(a) {
					t.Fatalf("%v and %v beat each other", a, b)
				}
			}
		}
		if wins != 1 {
			t.Fatalf("%v beats %d moves, want 1", a, wins)
		}
	}
}

func TestMoveJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		M Move `json:"m"`
	}{M: Paper})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"m":"paper"}` {
		t.Fatalf("marshal = %s", data)
	}

	var out struct {
		M Move `json:"m"`
	}
	if err := json.Unmarshal([]byte(`{"m":"scissors"}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.M != Scissors {
		t.Fatalf("unmarshal = %v", out.M)
	}

	if _, err := json.Marshal(Move(9)); err == nil {
		t.Fatal("expected error marshaling invalid move")
	}
}
