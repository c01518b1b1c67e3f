package tictactoe

import "strconv"

// Difficulty selects the computer's policy.
type Difficulty int

const (
	Beginner Difficulty = iota + 1
	Intermediate
	Experienced
	Perfect
)

// ParseDifficulty maps a skill level to a Difficulty, falling back to Intermediate.
func ParseDifficulty(level int) Difficulty {
	if d := Difficulty(level); d >= Beginner && d <= Perfect {
		return d
	}
	return Intermediate
}

func (that Difficulty) String() string {
	switch that {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Experienced:
		return "experienced"
	case Perfect:
		return "perfect"
	default:
		return "difficulty(" + strconv.Itoa(int(that)) + ")"
	}
}

// Candidates returns the moves the policy considers equally good for turn.
// It is empty when the game is decided or no move is left.
func (that Difficulty) Candidates(state State, turn Turn) Cells {
	if Detect(state).Decided() {
		return 0
	}

	switch that {
	case Beginner:
		return state.LegalMoves()
	case Experienced:
		return experiencedMoves(state, turn)
	case Perfect:
		return perfectMoves(state, turn)
	default:
		return goodMoves(state, turn)
	}
}

// goodMoves wins now if possible, else blocks the opponent's win, else allows any move.
func goodMoves(state State, turn Turn) Cells {
	legal := state.LegalMoves()

	var wins, blocks Cells
	for _, cell := range legal.Indexes() {
		if winsWith(state, cell, turn) {
			wins = wins.With(cell)
		}
		if winsWith(state, cell, turn.Opponent()) {
			blocks = blocks.With(cell)
		}
	}

	switch {
	case !wins.IsEmpty():
		return wins
	case !blocks.IsEmpty():
		return blocks
	default:
		return legal
	}
}

func experiencedMoves(state State, turn Turn) Cells {
	if state == 0 {
		return corners
	}

	if moves := LookupOpeningReply(state); !moves.IsEmpty() {
		return moves
	}

	return goodMoves(state, turn)
}

func perfectMoves(state State, turn Turn) Cells {
	if moves := LookupOpeningReply(state); !moves.IsEmpty() {
		return moves
	}

	return BestMoves(state, turn, PerfectDepthLimit)
}
