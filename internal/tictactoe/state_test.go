package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allBoards calls fn with every assignment of Empty, X and O to the nine cells.
func allBoards(fn func(state State)) {
	for n := 0; n < 19683; n++ {
		var state State
		code := n
		for cell := 0; cell < CellCount; cell++ {
			switch code % 3 {
			case 1:
				state = state.Apply(cell, Human)
			case 2:
				state = state.Apply(cell, Computer)
			}
			code /= 3
		}
		fn(state)
	}
}

func TestState_Apply(t *testing.T) {
	t.Run("Human places X and computer places O", func(t *testing.T) {
		// Given: an empty board
		var state State

		// When: the human takes the center and the computer a corner
		state = state.Apply(4, Human).Apply(0, Computer)

		// Then: the cells decode to the placed marks
		assert.Equal(t, X, state.Cell(4))
		assert.Equal(t, O, state.Cell(0))
		assert.Equal(t, Empty, state.Cell(8))

		// Then: the packed layout uses 11 for X and 10 for O
		assert.Equal(t, State(0b11<<8|0b10), state)
	})

	t.Run("Apply returns a new value", func(t *testing.T) {
		// Given: a state with one mark
		state := State(0).Apply(1, Human)

		// When: a move is applied to it
		_ = state.Apply(2, Computer)

		// Then: the original value is untouched
		assert.Equal(t, Empty, state.Cell(2))
	})

	t.Run("Cell outside the board reads as empty", func(t *testing.T) {
		state := MaxState

		assert.Equal(t, Empty, state.Cell(-1))
		assert.Equal(t, Empty, state.Cell(9))
	})
}

func TestState_LegalMovesPartition(t *testing.T) {
	allBoards(func(state State) {
		legal := state.LegalMoves()
		occupied := state.Occupied()

		require.Equal(t, AllCells, legal|occupied, "state %#x", state)
		require.Zero(t, legal&occupied, "state %#x", state)
		require.Equal(t, occupied.Len(), state.MoveCount(), "state %#x", state)
		require.True(t, state.Valid(), "state %#x", state)
	})
}

func TestState_Valid(t *testing.T) {
	t.Run("Reserved pattern is invalid", func(t *testing.T) {
		// Given: cell 3 encoded as 01
		state := State(0b01 << 6)

		// Then: the state is rejected
		assert.False(t, state.Valid())
	})

	t.Run("State above nine cells is invalid", func(t *testing.T) {
		assert.False(t, (MaxState + 1).Valid())
	})

	t.Run("Full X board is valid", func(t *testing.T) {
		assert.True(t, MaxState.Valid())
	})
}

func TestState_Board(t *testing.T) {
	// Given: a board view
	board := Board{
		"X", "", "O",
		"", "X", "",
		"O", "", "",
	}

	// When: packing it and reading it back
	state := FromBoard(board)

	// Then: the view does not change
	assert.Equal(t, board, state.Board())
	assert.Equal(t, 4, state.MoveCount())
	assert.Equal(t, cellsOf(1, 3, 5, 7, 8), state.LegalMoves())
}

func TestCells(t *testing.T) {
	cells := cellsOf(8, 0, 4)

	assert.Equal(t, []int{0, 4, 8}, cells.Indexes())
	assert.Equal(t, 3, cells.Len())
	assert.True(t, cells.Has(4))
	assert.False(t, cells.Has(5))
	assert.False(t, cells.Has(-1))
	assert.False(t, cells.Has(9))
	assert.True(t, Cells(0).IsEmpty())
	assert.Empty(t, Cells(0).Indexes())
}
