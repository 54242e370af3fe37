package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/mastermind/internal/entity"
)

// DefaultScoresFile is the well-known file the high scores live in.
const DefaultScoresFile = "high_scores.txt"

// ScoreRepository keeps the high score table, highest points first.
// Callers are expected to serialize access.
type ScoreRepository interface {
	Save(ctx context.Context, score entity.Score) error
	List(ctx context.Context) ([]entity.Score, error)
}

// decodeScores reads a persisted score list. Anything that is not a list of pairs counts as empty.
func decodeScores(data []byte) []entity.Score {
	var scores []entity.Score
	if err := json.Unmarshal(data, &scores); err != nil {
		return []entity.Score{}
	}

	if scores == nil {
		return []entity.Score{}
	}

	return scores
}

func encodeScores(scores []entity.Score, score entity.Score) ([]byte, error) {
	scores = append(scores, score)
	entity.SortScores(scores)

	data, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("could not marshal scores: %w", err)
	}

	return data, nil
}
