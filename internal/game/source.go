package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// MoveSource supplies the computer's moves.
type MoveSource interface {
	Next() Move
}

// RandomSource draws moves uniformly. Not safe for concurrent use.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource seeds a PCG generator. The same seed replays the same
// sequence of moves.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

func (s *RandomSource) Next() Move {
	return Moves[s.rng.IntN(len(Moves))]
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
