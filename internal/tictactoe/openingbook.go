package tictactoe

var (
	center  = cellsOf(4)
	corners = cellsOf(0, 2, 6, 8)
)

// openingBook maps the occupied cells of an early position to its known-good replies.
// Keys ignore which mark sits in a cell, so every single-mark board collapses onto
// the center, corner or edge entries.
var openingBook = map[Cells]Cells{
	0:          AllCells,
	center:     corners,
	cellsOf(0): center,
	cellsOf(2): center,
	cellsOf(6): center,
	cellsOf(8): center,
	cellsOf(1): cellsOf(0, 2, 4, 7),
	cellsOf(3): cellsOf(0, 4, 5, 6),
	cellsOf(5): cellsOf(2, 3, 4, 8),
	cellsOf(7): cellsOf(1, 4, 6, 8),
}

// LookupOpeningReply returns the book replies for state, or an empty set when the
// position is not in the book.
func LookupOpeningReply(state State) Cells {
	return openingBook[state.Occupied()]
}
