package tictactoe

const (
	// PerfectDepthLimit bounds the search; a game never lasts more than 9 plies.
	PerfectDepthLimit = 15

	winScore = 10

	// unbounded is a ply limit no node ever reaches, depth starts at 1.
	unbounded = -1
)

// Score is a search value. An undetermined score comes from a node cut off by the ply
// limit and never takes part in a parent's minimization or maximization.
type Score struct {
	Value int
	Known bool
}

func known(value int) Score {
	return Score{Value: value, Known: true}
}

// BestMoves scores every legal move of state for player and returns the moves tied for
// the best determined score.
func BestMoves(state State, player Turn, depthLimit int) Cells {
	var (
		best  Score
		moves Cells
	)

	for _, cell := range state.LegalMoves().Indexes() {
		score := moveValue(state, cell, player, player, depthLimit, 1)
		if !score.Known {
			continue
		}

		if !best.Known || score.Value > best.Value {
			best = score
			moves = 0
		}

		if score.Value == best.Value {
			moves = moves.With(cell)
		}
	}

	return moves
}

// moveValue plays cell for mover and scores the result from player's point of view.
// A decided position scores winScore-depth for a win by player, depth-winScore for a
// loss and 0 for a draw, so faster wins and slower losses rank higher.
func moveValue(state State, cell int, player, mover Turn, limit, depth int) Score {
	next := state.Apply(cell, mover)

	outcome := Detect(next)
	switch {
	case outcome.Result == Draw:
		return known(0)
	case outcome.Decided():
		if mover == player {
			return known(winScore - depth)
		}
		return known(depth - winScore)
	}

	if depth == limit {
		return Score{}
	}

	// player moves next when the opponent just moved
	maximizing := mover != player

	var hope Score
	for _, reply := range next.LegalMoves().Indexes() {
		childLimit := unbounded
		if hope.Known {
			childLimit = winScore - abs(hope.Value)
		}

		value := moveValue(next, reply, player, mover.Opponent(), childLimit, depth+1)
		if !value.Known {
			continue
		}

		if !hope.Known || (maximizing && value.Value > hope.Value) || (!maximizing && value.Value < hope.Value) {
			hope = value
		}
	}

	return hope
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
