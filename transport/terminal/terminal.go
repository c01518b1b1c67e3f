package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const prompt = "What's your move? "

type uGame interface {
	StartGame(ctx context.Context, skillLevel int) (*entity.SavedGame, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.TurnResult, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

// Terminal plays one game against the computer over a line-oriented reader and writer.
type Terminal struct {
	logger     *slog.Logger
	uGame      uGame
	skillLevel int

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, uGame uGame, skillLevel int, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger:     logger.With("component", "terminal"),
		uGame:      uGame,
		skillLevel: skillLevel,

		in:  in,
		out: out,
	}
}

// Start runs the game until it is decided, the input ends or ctx is canceled.
func (that *Terminal) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	game, err := that.uGame.StartGame(ctx, that.skillLevel)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	log.Info("game started", "game_id", game.ID, "skill_level", game.Snapshot.SkillLevel)

	that.printf("%s\n", Render(tictactoe.Board{}))

	lines := readLines(ctx, that.in)

	for {
		that.printf("%s", prompt)

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			log.Info("session canceled", "game_id", game.ID)
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			log.Info("input closed", "game_id", game.ID)
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cell, err := strconv.Atoi(line)
		if err != nil {
			that.printf("%q is not a cell, use 0 to 8\n", line)
			continue
		}

		result, err := that.uGame.MakeTurn(ctx, game.ID, cell)
		if err != nil && !errors.Is(err, apperror.ErrGameFinished) {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		that.printf("%s\n", Render(result.Board))

		if result.IsFinished() {
			that.printf("Result of game: %s\n", result.Winner)
			that.printStats(ctx)

			return nil
		}
	}
}

func (that *Terminal) printStats(ctx context.Context) {
	stats, err := that.uGame.Stats(ctx)
	if err != nil {
		that.logger.With("method", "printStats").Error("failed to get stats", "error", err)
		return
	}

	that.printf("%s\n", stats)
}

func (that *Terminal) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// Render draws the board top row first. Empty cells show their index.
func Render(board tictactoe.Board) string {
	var builder strings.Builder

	for row := 2; row >= 0; row-- {
		for col := 0; col < 3; col++ {
			cell := row*3 + col

			mark := board[cell]
			if mark == "" {
				mark = strconv.Itoa(cell)
			}

			builder.WriteString(mark)
			if col < 2 {
				builder.WriteString("|")
			}
		}

		if row > 0 {
			builder.WriteString("\n_+_+_\n")
		}
	}

	return builder.String()
}

// readLines feeds the lines of in to the returned channel and closes it at the end of input.
// A read blocked in in outlives ctx until in returns.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
