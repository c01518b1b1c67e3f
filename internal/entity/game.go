package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	WinnerHuman    = "X"
	WinnerComputer = "O"
	WinnerDraw     = "C"
)

// SavedGame is what a caller keeps between turns: the opaque engine snapshot under an id.
type SavedGame struct {
	ID        string             `json:"id"`
	Snapshot  tictactoe.Snapshot `json:"snapshot"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func NewSavedGame(id string, snapshot tictactoe.Snapshot, now time.Time) *SavedGame {
	return &SavedGame{
		ID:        id,
		Snapshot:  snapshot,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GameFinished is emitted once for every completed game.
type GameFinished struct {
	GameID     string    `json:"game_id"`
	SkillLevel int       `json:"skill_level"`
	Winner     string    `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

// TurnResult is the outcome of one human move and the computer's reply.
type TurnResult struct {
	Game     *SavedGame      `json:"game"`
	Board    tictactoe.Board `json:"board"`
	Winner   string          `json:"winner"`
	Finished *GameFinished   `json:"finished,omitempty"`
}

func (that *TurnResult) IsFinished() bool {
	return that.Finished != nil
}
