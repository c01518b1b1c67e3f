package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryGame struct {
	mu    sync.Mutex
	games map[string]entity.SavedGame
}

// NewMemoryGameRepository keeps saved games in process memory.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.SavedGame),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.SavedGame) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.SavedGame, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

type memoryResult struct {
	mu      sync.Mutex
	results []entity.GameFinished
}

// NewMemoryResultRepository keeps the finished-game ledger in process memory.
func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{}
}

func (that *memoryResult) Save(_ context.Context, result *entity.GameFinished) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.results = append(that.results, *result)

	return nil
}

func (that *memoryResult) List(_ context.Context) ([]entity.GameFinished, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	results := make([]entity.GameFinished, len(that.results))
	copy(results, that.results)

	return results, nil
}
