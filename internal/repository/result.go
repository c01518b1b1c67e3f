package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// ResultRepository is the ledger of finished games.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameFinished) error
	List(ctx context.Context) ([]entity.GameFinished, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.GameFinished) error {
	query := `INSERT INTO results (game_id, skill_level, winner, moves, finished_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, result.GameID, result.SkillLevel, result.Winner, result.Moves, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *resultRepository) List(ctx context.Context) ([]entity.GameFinished, error) {
	query := `SELECT game_id, skill_level, winner, moves, finished_at FROM results ORDER BY finished_at, game_id`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	var results []entity.GameFinished
	for rows.Next() {
		var result entity.GameFinished
		if err = rows.Scan(&result.GameID, &result.SkillLevel, &result.Winner, &result.Moves, &result.FinishedAt); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}
