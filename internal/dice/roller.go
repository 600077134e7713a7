// internal/dice/roller.go
//
// Randomness for die rolls.
// The game never touches a process-wide source: every session is handed a
// Roller, so tests and daily games can replay an exact sequence of faces.
//
// Provided sources:
//   - NewSeeded: math/rand generator for a fixed seed (deterministic).
//   - NewSeed:   crypto-random seed for ordinary games.
//   - Sequence:  scripted faces, replayed in order.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

// Sides is the number of faces on every die.
const Sides = 6

// ErrEmptySequence is returned when a scripted sequence has no faces.
var ErrEmptySequence = errors.New("dice: sequence has no faces")

// Roller is the randomness provider for dice rolls.
// Intn returns a non-negative random int in [0, n). n > 0.
type Roller interface {
	Intn(n int) int
}

// Roll returns a single face in [1, Sides].
func Roll(r Roller) int {
	return r.Intn(Sides) + 1
}

// NewSeeded returns a deterministic Roller for seed.
// The same seed always yields the same faces in the same order.
func NewSeeded(seed int64) Roller {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays a fixed list of faces, wrapping around at the end.
type Sequence struct {
	faces []int
	pos   int
}

// NewSequence builds a scripted Roller. Every face must be in [1, Sides].
func NewSequence(faces ...int) (*Sequence, error) {
	if len(faces) == 0 {
		return nil, ErrEmptySequence
	}
	for _, f := range faces {
		if f < 1 || f > Sides {
			return nil, fmt.Errorf("dice: face %d out of range 1-%d", f, Sides)
		}
	}
	return &Sequence{faces: append([]int(nil), faces...)}, nil
}

// Intn returns the next scripted face, shifted to [0, n).
func (s *Sequence) Intn(n int) int {
	f := s.faces[s.pos%len(s.faces)]
	s.pos++
	return (f - 1) % n
}

// Used reports how many faces have been consumed so far.
func (s *Sequence) Used() int { return s.pos }
