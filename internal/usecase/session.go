package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/mastermind/internal/apperror"
	"github.com/rocketscienceinc/mastermind/internal/entity"
	"github.com/rocketscienceinc/mastermind/internal/mastermind"
)

const showScoresAnswer = "y"

// Display renders everything the player sees. Calls must be shown in order.
type Display interface {
	Palette(palette entity.Palette)
	Board(history []entity.Guess)
	PointsAvailable(points int)
	Rejected(answer string, err error)
	Victory(points int)
	Defeat(secret string)
	HighScores(scores []entity.Score)
}

// Input supplies the player's answers.
type Input interface {
	Guess(ctx context.Context) (string, error)
	Initials(ctx context.Context) (string, error)
	ShowHighScores(ctx context.Context) (string, error)
}

type ScoreStore interface {
	Save(ctx context.Context, score entity.Score) error
	List(ctx context.Context) ([]entity.Score, error)
}

// Session drives one game from the first guess to the high score table.
type Session struct {
	logger  *slog.Logger
	game    *mastermind.Game
	display Display
	input   Input
	store   ScoreStore
}

func NewSession(logger *slog.Logger, game *mastermind.Game, display Display, input Input, store ScoreStore) *Session {
	return &Session{
		logger:  logger.With("component", "session", "game_id", game.ID()),
		game:    game,
		display: display,
		input:   input,
		store:   store,
	}
}

func (that *Session) Play(ctx context.Context) error {
	that.logger.Info("game started", "colors", that.game.Palette().Size())
	that.display.Palette(that.game.Palette())

	for !that.game.IsOver() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.turn(ctx); err != nil {
			return err
		}
	}

	return that.finish(ctx)
}

func (that *Session) turn(ctx context.Context) error {
	that.display.Board(that.game.History())
	that.display.PointsAvailable(that.game.Points())

	answer, err := that.input.Guess(ctx)
	if err != nil {
		return fmt.Errorf("failed to read guess: %w", err)
	}

	event, err := that.game.Submit(answer)
	if errors.Is(err, apperror.ErrInvalidGuessLength) {
		that.logger.Debug("guess rejected", "answer", answer)
		that.display.Rejected(answer, err)

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to submit guess: %w", err)
	}

	that.logger.Debug("guess evaluated",
		"answer", event.Guess.Text(),
		"exact", event.Guess.Exact,
		"partial", event.Guess.Partial,
		"outcome", event.Outcome.String(),
		"points", event.Points,
	)

	return nil
}

func (that *Session) finish(ctx context.Context) error {
	that.logger.Info("game over", "status", that.game.Status(), "points", that.game.Points())

	if that.game.Won() {
		if err := that.recordWin(ctx); err != nil {
			return err
		}
	} else {
		secret, err := that.game.Reveal()
		if err != nil {
			return fmt.Errorf("failed to reveal secret: %w", err)
		}

		that.display.Defeat(secret)
	}

	answer, err := that.input.ShowHighScores(ctx)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	if answer != showScoresAnswer {
		return nil
	}

	scores, err := that.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list high scores: %w", err)
	}

	that.display.HighScores(scores)

	return nil
}

func (that *Session) recordWin(ctx context.Context) error {
	points := that.game.Points()
	that.display.Victory(points)

	initials, err := that.input.Initials(ctx)
	if err != nil {
		return fmt.Errorf("failed to read initials: %w", err)
	}

	if err = that.store.Save(ctx, entity.Score{Points: points, Initials: initials}); err != nil {
		that.logger.Error("could not save score", "error", err)
		return fmt.Errorf("failed to save score: %w", err)
	}

	return nil
}
