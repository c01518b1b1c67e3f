package tictactoe

// Result is the tag of an Outcome.
type Result uint8

const (
	None Result = iota
	XWins
	OWins
	Draw
)

func (that Result) String() string {
	switch that {
	case XWins:
		return "X"
	case OWins:
		return "O"
	case Draw:
		return "C" // cat's game
	default:
		return ""
	}
}

// Outcome is the result of a position. Line holds the cells of the completed line for a
// win and is empty otherwise.
type Outcome struct {
	Result Result
	Line   Cells
}

func (that Outcome) Decided() bool {
	return that.Result != None
}

// Winner returns the mark that completed a line, or Empty for a draw or an open game.
func (that Outcome) Winner() Mark {
	switch that.Result {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

// Line is a winning triple of cell indexes.
type Line [3]int

// WinLines in detection priority: rows top to bottom, columns left to right, then diagonals.
var WinLines = [8]Line{
	{6, 7, 8},
	{3, 4, 5},
	{0, 1, 2},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{2, 4, 6},
	{0, 4, 8},
}

type linePattern struct {
	cells Cells
	mask  State
	x     State
	o     State
}

var linePatterns = buildLinePatterns()

func buildLinePatterns() [len(WinLines)]linePattern {
	var patterns [len(WinLines)]linePattern
	for i, line := range WinLines {
		var pattern linePattern
		for _, cell := range line {
			pattern.cells = pattern.cells.With(cell)
			pattern.mask |= cellMask << cellShift(cell)
			pattern.x |= cellX << cellShift(cell)
			pattern.o |= cellO << cellShift(cell)
		}
		patterns[i] = pattern
	}
	return patterns
}

// Detect evaluates the eight lines and then the full-board draw.
func Detect(state State) Outcome {
	for _, pattern := range linePatterns {
		switch state & pattern.mask {
		case pattern.x:
			return Outcome{Result: XWins, Line: pattern.cells}
		case pattern.o:
			return Outcome{Result: OWins, Line: pattern.cells}
		}
	}

	if state&occupiedBits == occupiedBits {
		return Outcome{Result: Draw}
	}

	return Outcome{}
}

// winsWith reports whether placing the mark of turn on cell completes a line for turn.
func winsWith(state State, cell int, turn Turn) bool {
	return Detect(state.Apply(cell, turn)).Winner() == turn.Mark()
}
