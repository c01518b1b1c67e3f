package tictactoe

import "math/rand"

// Rand is the source used to break ties between equally good moves.
// *rand.Rand satisfies it; a seeded one makes games reproducible.
type Rand interface {
	Intn(n int) int
}

// globalRand uses the process-wide math/rand source.
type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n) //nolint: gosec // it's ok
}

// pick returns a uniformly random member of cells.
func pick(rnd Rand, cells Cells) (int, bool) {
	indexes := cells.Indexes()
	if len(indexes) == 0 {
		return 0, false
	}
	return indexes[rnd.Intn(len(indexes))], true
}
