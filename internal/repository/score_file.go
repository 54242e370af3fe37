package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rocketscienceinc/mastermind/internal/entity"
)

type fileScore struct {
	path string
}

func NewFileScoreRepository(path string) ScoreRepository {
	if path == "" {
		path = DefaultScoresFile
	}

	return &fileScore{
		path: path,
	}
}

func (that *fileScore) Save(ctx context.Context, score entity.Score) error {
	scores, err := that.List(ctx)
	if err != nil {
		return err
	}

	data, err := encodeScores(scores, score)
	if err != nil {
		return err
	}

	if err = os.WriteFile(that.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scores file: %w", err)
	}

	return nil
}

func (that *fileScore) List(_ context.Context) ([]entity.Score, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.Score{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}

	return decodeScores(data), nil
}
