package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/apperror"

// Game is a single human-versus-computer session. The human plays X and moves first.
// A Game is not safe for concurrent use.
type Game struct {
	state      State
	turn       Turn
	difficulty Difficulty
	rand       Rand
}

type Option func(*Game)

// WithRand sets the source used to break ties between equally good moves.
func WithRand(rnd Rand) Option {
	return func(game *Game) {
		if rnd != nil {
			game.rand = rnd
		}
	}
}

// New returns a fresh Intermediate game.
func New(opts ...Option) *Game {
	game := &Game{
		rand: globalRand{},
	}

	for _, opt := range opts {
		opt(game)
	}

	game.NewGame(Intermediate)

	return game
}

// NewGame resets the board and gives the first move to the human.
func (that *Game) NewGame(difficulty Difficulty) {
	that.state = 0
	that.turn = Human
	that.difficulty = ParseDifficulty(int(difficulty))
}

// PlayerMove marks cell with X and lets the computer reply. A cell that is occupied or
// off the board is ignored. The returned board reflects both half-moves.
func (that *Game) PlayerMove(cell int) (Board, error) {
	if that.turn != Human {
		return that.Board(), apperror.ErrNotYourTurn
	}

	if Detect(that.state).Decided() {
		return that.Board(), apperror.ErrGameFinished
	}

	if !that.state.LegalMoves().Has(cell) {
		return that.Board(), nil
	}

	that.state = that.state.Apply(cell, Human)

	if !Detect(that.state).Decided() {
		that.turn = Computer
		that.computerReply()
	}

	return that.Board(), nil
}

// ComputerMove plays the computer's half-move when a recovered game left the turn with it.
func (that *Game) ComputerMove() (Board, error) {
	if that.turn != Computer {
		return that.Board(), apperror.ErrNotComputerTurn
	}

	if Detect(that.state).Decided() {
		return that.Board(), apperror.ErrGameFinished
	}

	that.computerReply()

	return that.Board(), nil
}

func (that *Game) computerReply() {
	if cell, ok := pick(that.rand, that.difficulty.Candidates(that.state, Computer)); ok {
		that.state = that.state.Apply(cell, Computer)
	}

	that.turn = Human
}

// Winner returns "" while the game is open, "X" or "O" for a win and "C" for a draw.
func (that *Game) Winner() string {
	return Detect(that.state).Result.String()
}

func (that *Game) Outcome() Outcome {
	return Detect(that.state)
}

func (that *Game) Board() Board {
	return that.state.Board()
}

func (that *Game) Difficulty() Difficulty {
	return that.difficulty
}

func (that *Game) Turn() Turn {
	return that.turn
}

func (that *Game) State() Snapshot {
	return Snapshot{
		SkillLevel: int(that.difficulty),
		State:      int(that.state),
		Turn:       int(that.turn),
	}
}

// RecoverGame restores a snapshot taken with State. A malformed snapshot or one whose
// board is not a valid packed state starts a new Intermediate game instead.
func (that *Game) RecoverGame(snapshot Snapshot) {
	if snapshot.malformed || snapshot.State < 0 || snapshot.State > int(MaxState) || !State(snapshot.State).Valid() {
		that.NewGame(Intermediate)
		return
	}

	that.state = State(snapshot.State)

	that.turn = Computer
	if Turn(snapshot.Turn) == Human {
		that.turn = Human
	}

	that.difficulty = ParseDifficulty(snapshot.SkillLevel)
}
