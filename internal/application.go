package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/terminal"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one terminal game on in and out until it ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeGames, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeGames(log)

	resultRepo, closeResults, err := newResultRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeResults(log)

	var opts []usecase.Option
	if conf.RandomSeed != 0 {
		opts = append(opts, usecase.WithRand(rand.New(rand.NewSource(conf.RandomSeed)))) //nolint: gosec // it's ok
	}

	gameManager := usecase.NewGameManager(logger, gameRepo, resultRepo, opts...)

	log.Info("Starting terminal game", "storage", conf.Storage, "skill_level", conf.SkillLevel)

	if err = terminal.New(logger, gameManager, conf.SkillLevel, in, out).Start(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	return nil
}

type closer func(log *slog.Logger)

func noClose(*slog.Logger) {}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, closer, error) {
	switch conf.Storage {
	case "", config.StorageMemory:
		return repository.NewMemoryGameRepository(), noClose, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection), func(log *slog.Logger) {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorage, conf.Storage)
	}
}

func newResultRepository(ctx context.Context, conf *config.Config) (repository.ResultRepository, closer, error) {
	if conf.SQLiteStoragePath == "" {
		return repository.NewMemoryResultRepository(), noClose, nil
	}

	sqliteStorage, err := sqlite.New(conf.SQLiteStoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		_ = sqliteStorage.Close()
		return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
	}

	return repository.NewResultRepository(sqliteStorage.Connection), func(log *slog.Logger) {
		if err := sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}, nil
}
