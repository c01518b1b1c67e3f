package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, Beginner, ParseDifficulty(1))
	assert.Equal(t, Intermediate, ParseDifficulty(2))
	assert.Equal(t, Experienced, ParseDifficulty(3))
	assert.Equal(t, Perfect, ParseDifficulty(4))

	for _, level := range []int{-1, 0, 5, 42} {
		assert.Equal(t, Intermediate, ParseDifficulty(level), "level %d", level)
	}
}

func TestDifficulty_String(t *testing.T) {
	assert.Equal(t, "beginner", Beginner.String())
	assert.Equal(t, "perfect", Perfect.String())
	assert.Equal(t, "difficulty(7)", Difficulty(7).String())
}

func TestDifficulty_Candidates(t *testing.T) {
	decided := FromBoard(Board{
		"X", "X", "X",
		"O", "O", "",
		"", "", "",
	})

	t.Run("Every tier is a no-op on a decided board", func(t *testing.T) {
		for _, difficulty := range []Difficulty{Beginner, Intermediate, Experienced, Perfect} {
			assert.True(t, difficulty.Candidates(decided, Computer).IsEmpty(), difficulty.String())
		}
	})

	t.Run("Beginner allows every legal move", func(t *testing.T) {
		// Given: O could win at once
		state := FromBoard(Board{
			"X", "X", "",
			"O", "O", "",
			"", "", "X",
		})

		// Then: the beginner does not look for it
		assert.Equal(t, state.LegalMoves(), Beginner.Candidates(state, Computer))
	})

	t.Run("Intermediate takes its own win first", func(t *testing.T) {
		// Given: O can win at 5 and X threatens 2
		state := FromBoard(Board{
			"X", "X", "",
			"O", "O", "",
			"", "", "X",
		})

		// Then: only the win is offered
		assert.Equal(t, cellsOf(5), Intermediate.Candidates(state, Computer))
	})

	t.Run("Intermediate blocks", func(t *testing.T) {
		// Given: X threatens 2 and O has no win
		state := FromBoard(Board{
			"X", "X", "",
			"", "O", "",
			"", "", "",
		})

		// Then: only the block is offered
		assert.Equal(t, cellsOf(2), Intermediate.Candidates(state, Computer))
	})

	t.Run("Intermediate falls back to any legal move", func(t *testing.T) {
		state := State(0).Apply(4, Human)

		assert.Equal(t, state.LegalMoves(), Intermediate.Candidates(state, Computer))
	})

	t.Run("Experienced uses the book", func(t *testing.T) {
		// Given: X opened on an edge
		state := State(0).Apply(7, Human)

		// Then: the book replies are offered
		assert.Equal(t, cellsOf(1, 4, 6, 8), Experienced.Candidates(state, Computer))
	})

	t.Run("Experienced opens in a corner", func(t *testing.T) {
		assert.Equal(t, corners, Experienced.Candidates(0, Computer))
	})

	t.Run("Experienced falls back to the heuristic", func(t *testing.T) {
		// Given: a position out of the book with a threat to block
		state := FromBoard(Board{
			"X", "X", "",
			"", "O", "",
			"", "", "",
		})

		// Then: it blocks like the intermediate tier
		assert.Equal(t, cellsOf(2), Experienced.Candidates(state, Computer))
	})

	t.Run("Perfect uses the book before searching", func(t *testing.T) {
		state := State(0).Apply(0, Human)

		assert.Equal(t, center, Perfect.Candidates(state, Computer))
	})

	t.Run("Perfect searches out of the book", func(t *testing.T) {
		state := FromBoard(Board{
			"X", "X", "",
			"", "O", "",
			"", "", "",
		})

		assert.Equal(t, BestMoves(state, Computer, PerfectDepthLimit), Perfect.Candidates(state, Computer))
	})

	t.Run("Unknown difficulty plays like intermediate", func(t *testing.T) {
		state := FromBoard(Board{
			"X", "X", "",
			"", "O", "",
			"", "", "",
		})

		assert.Equal(t, cellsOf(2), Difficulty(9).Candidates(state, Computer))
	})
}

// TestPerfect_NeverLoses walks every line the human can play against every reply the
// perfect tier may pick.
func TestPerfect_NeverLoses(t *testing.T) {
	var draws, wins int

	var explore func(state State)
	explore = func(state State) {
		for _, cell := range state.LegalMoves().Indexes() {
			afterHuman := state.Apply(cell, Human)

			switch Detect(afterHuman).Result {
			case XWins:
				t.Fatalf("human won with board %v", afterHuman.Board())
			case Draw:
				draws++
				continue
			}

			replies := Perfect.Candidates(afterHuman, Computer)
			if replies.IsEmpty() {
				t.Fatalf("no reply for board %v", afterHuman.Board())
			}

			for _, reply := range replies.Indexes() {
				afterComputer := afterHuman.Apply(reply, Computer)

				switch Detect(afterComputer).Result {
				case OWins:
					wins++
				case Draw:
					draws++
				default:
					explore(afterComputer)
				}
			}
		}
	}

	explore(0)

	assert.Positive(t, draws)
	assert.Positive(t, wins)
}
