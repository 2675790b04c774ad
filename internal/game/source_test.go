package game

import "testing"

func TestRandomSourceIsDeterministicPerSeed(t *testing.T) {
	a, b := NewRandomSource(42), NewRandomSource(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRandomSourceCoversAllMoves(t *testing.T) {
	s := NewRandomSource(7)
	seen := map[Move]int{}
	for i := 0; i < 3000; i++ {
		m := s.Next()
		if !m.Valid() {
			t.Fatalf("invalid move %v", m)
		}
		seen[m]++
	}
	for _, m := range Moves {
		// Uniform draws land near 1000 each; 800 leaves plenty of slack.
		if seen[m] < 800 {
			t.Fatalf("%v drawn %d times out of 3000", m, seen[m])
		}
	}
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
}
