package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/mastermind/internal/apperror"
	"github.com/rocketscienceinc/mastermind/internal/config"
	"github.com/rocketscienceinc/mastermind/internal/entity"
	"github.com/rocketscienceinc/mastermind/internal/mastermind"
	"github.com/rocketscienceinc/mastermind/internal/repository"
	"github.com/rocketscienceinc/mastermind/internal/repository/storage"
	"github.com/rocketscienceinc/mastermind/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/mastermind/internal/transport/console"
	"github.com/rocketscienceinc/mastermind/internal/usecase"
)

// RunApp - plays one game on the given terminal streams.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	scoreRepo, closeStore, err := newScoreRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open score storage: %w", err)
	}

	defer func() {
		if err = closeStore(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's a game
	game := mastermind.NewGame(entity.NewPalette(conf.Colors), rnd)

	session := usecase.NewSession(logger, game, console.NewDisplay(out), console.NewInput(in, out), scoreRepo)

	log.Debug("starting game", "backend", conf.Scores.Backend)

	if err = session.Play(ctx); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	switch conf.Scores.Backend {
	case config.BackendFile, "":
		return repository.NewFileScoreRepository(conf.Scores.FilePath), func() error { return nil }, nil
	case config.BackendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, err
		}

		return repository.NewRedisScoreRepository(redisStorage.Connection), redisStorage.Close, nil
	case config.BackendSQLite:
		sqliteStorage, err := sqlite.New(conf.Scores.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, err
		}

		return repository.NewSQLiteScoreRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", apperror.ErrUnknownBackend, conf.Scores.Backend)
	}
}
