package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.SavedGame) error
	GetByID(ctx context.Context, id string) (*entity.SavedGame, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameFinished) error
	List(ctx context.Context) ([]entity.GameFinished, error)
}

// GameManager runs games whose snapshots live in a repository between turns.
// It is safe for concurrent use.
type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	resultRepo resultRepo

	rand tictactoe.Rand
	now  func() time.Time
}

type Option func(*GameManager)

// WithRand breaks the computer's ties with rnd. Calls into rnd are serialized.
func WithRand(rnd tictactoe.Rand) Option {
	return func(manager *GameManager) {
		if rnd != nil {
			manager.rand = &lockedRand{rnd: rnd}
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(manager *GameManager) {
		if now != nil {
			manager.now = now
		}
	}
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, resultRepo resultRepo, opts ...Option) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		resultRepo: resultRepo,

		now: time.Now,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

func (that *GameManager) StartGame(ctx context.Context, skillLevel int) (*entity.SavedGame, error) {
	game := that.newEngine()
	game.NewGame(tictactoe.ParseDifficulty(skillLevel))

	saved := entity.NewSavedGame(uuid.NewString(), game.State(), that.now())
	if err := that.gameRepo.CreateOrUpdate(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.With("method", "StartGame").
		Debug("game started", "game_id", saved.ID, "difficulty", game.Difficulty().String())

	return saved, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.SavedGame, error) {
	saved, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return saved, nil
}

// MakeTurn plays cell for the human in the stored game and lets the computer answer.
// A game that ends on this turn is recorded in the ledger and its snapshot is removed.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.TurnResult, error) {
	saved, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game := that.newEngine()
	game.RecoverGame(saved.Snapshot)

	if game.Turn() == tictactoe.Computer && !game.Outcome().Decided() {
		if _, err = game.ComputerMove(); err != nil {
			return nil, fmt.Errorf("failed to play computer move: %w", err)
		}
	}

	board, err := game.PlayerMove(cell)
	if errors.Is(err, apperror.ErrGameFinished) {
		return that.finishGame(ctx, saved, game), apperror.ErrGameFinished
	}

	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	saved.Snapshot = game.State()
	saved.UpdatedAt = that.now()

	if err = that.gameRepo.CreateOrUpdate(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.Outcome().Decided() {
		return that.finishGame(ctx, saved, game), nil
	}

	return &entity.TurnResult{
		Game:   saved,
		Board:  board,
		Winner: game.Winner(),
	}, nil
}

// Stats folds every recorded result into a fresh aggregate.
func (that *GameManager) Stats(ctx context.Context) (*entity.Stats, error) {
	results, err := that.resultRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	stats := &entity.Stats{}
	for _, result := range results {
		stats.Apply(result)
	}

	return stats, nil
}

func (that *GameManager) finishGame(ctx context.Context, saved *entity.SavedGame, game *tictactoe.Game) *entity.TurnResult {
	log := that.logger.With("method", "finishGame", "game_id", saved.ID)

	finished := &entity.GameFinished{
		GameID:     saved.ID,
		SkillLevel: int(game.Difficulty()),
		Winner:     game.Winner(),
		Moves:      tictactoe.State(game.State().State).MoveCount(),
		FinishedAt: that.now(),
	}

	if err := that.resultRepo.Save(ctx, finished); err != nil {
		log.Error("failed to save result", "error", err)
	}

	if err := that.gameRepo.DeleteByID(ctx, saved.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	log.Info("game finished", "winner", finished.Winner, "moves", finished.Moves)

	return &entity.TurnResult{
		Game:     saved,
		Board:    game.Board(),
		Winner:   finished.Winner,
		Finished: finished,
	}
}

func (that *GameManager) newEngine() *tictactoe.Game {
	return tictactoe.New(tictactoe.WithRand(that.rand))
}

type lockedRand struct {
	mu  sync.Mutex
	rnd tictactoe.Rand
}

func (that *lockedRand) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}
