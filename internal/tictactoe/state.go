package tictactoe

import "math/bits"

// Board indexing:
//
//	6|7|8
//	-+-+-
//	3|4|5
//	-+-+-
//	0|1|2
const CellCount = 9

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Turn says whose move it is. The human always plays X.
type Turn int

const (
	Human    Turn = 1
	Computer Turn = -1
)

func (that Turn) Opponent() Turn {
	return -that
}

func (that Turn) Mark() Mark {
	if that == Human {
		return X
	}
	return O
}

// Cells is a bitset over the cell indexes 0..8.
type Cells uint16

const AllCells Cells = 1<<CellCount - 1

func cellsOf(indexes ...int) Cells {
	var cells Cells
	for _, i := range indexes {
		cells = cells.With(i)
	}
	return cells
}

func (that Cells) With(index int) Cells {
	return that | 1<<index
}

func (that Cells) Has(index int) bool {
	return index >= 0 && index < CellCount && that&(1<<index) != 0
}

func (that Cells) Len() int {
	return bits.OnesCount16(uint16(that & AllCells))
}

func (that Cells) IsEmpty() bool {
	return that&AllCells == 0
}

// Indexes returns the members in ascending order.
func (that Cells) Indexes() []int {
	indexes := make([]int, 0, that.Len())
	for i := 0; i < CellCount; i++ {
		if that.Has(i) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// State is a packed board, two bits per cell at cell*2: the high bit marks the cell as
// occupied and the low bit says the mark is X. Empty is 00, O is 10, X is 11.
// Methods never modify a State, they return an updated one.
type State uint32

const (
	MaxState State = 1<<(2*CellCount) - 1

	cellX        = 0b11
	cellO        = 0b10
	cellMask     = 0b11
	occupiedBits = 0x2AAAA
	xBits        = 0x15555
)

func cellShift(index int) uint {
	return uint(index * 2) //nolint: gosec // index is always in 0..8
}

// Cell decodes one cell. Indexes outside the board read as Empty.
func (that State) Cell(index int) Mark {
	if index < 0 || index >= CellCount {
		return Empty
	}

	switch (that >> cellShift(index)) & cellMask {
	case cellX:
		return X
	case cellO:
		return O
	default:
		return Empty
	}
}

// Apply places the mark of turn on an empty cell.
func (that State) Apply(index int, turn Turn) State {
	value := State(cellO)
	if turn == Human {
		value = cellX
	}
	return that | value<<cellShift(index)
}

func (that State) Occupied() Cells {
	var cells Cells
	for i := 0; i < CellCount; i++ {
		if that&(1<<(cellShift(i)+1)) != 0 {
			cells = cells.With(i)
		}
	}
	return cells
}

func (that State) LegalMoves() Cells {
	return AllCells &^ that.Occupied()
}

func (that State) MoveCount() int {
	return bits.OnesCount32(uint32(that & occupiedBits))
}

// Valid reports whether the state fits the board and no cell uses the reserved 01 pattern.
func (that State) Valid() bool {
	if that > MaxState {
		return false
	}

	// an X bit without its occupied bit is the reserved pattern
	xFlags := that & xBits
	occupied := (that & occupiedBits) >> 1
	return xFlags&^occupied == 0
}

// Board is the presentation view of a state: "", "X" or "O" per cell.
type Board [CellCount]string

func (that State) Board() Board {
	var board Board
	for i := range board {
		board[i] = that.Cell(i).String()
	}
	return board
}

// FromBoard packs a board view. Anything other than "X" or "O" is an empty cell.
func FromBoard(board Board) State {
	var state State
	for i, cell := range board {
		switch cell {
		case X.String():
			state = state.Apply(i, Human)
		case O.String():
			state = state.Apply(i, Computer)
		}
	}
	return state
}
