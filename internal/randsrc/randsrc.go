// Package randsrc holds the single pseudo-random source shared by language
// selection, proverb selection, confetti and party colors.
package randsrc

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the renderer draws from.
type Source interface {
	Intn(n int) int
}

// New returns a source seeded with seed. A zero seed picks a time-based seed.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence replays fixed draws, each reduced modulo n. It is meant for tests
// that need to pin exact choices.
type Sequence struct {
	Values []int
	pos    int
}

// Intn returns the next value modulo n.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("randsrc: invalid argument to Intn")
	}
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
