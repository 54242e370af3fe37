package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/mastermind/internal/entity"
)

const scoresKey = "mastermind:high_scores"

type redisScore struct {
	client *redis.Client
}

func NewRedisScoreRepository(client *redis.Client) ScoreRepository {
	return &redisScore{
		client: client,
	}
}

func (that *redisScore) Save(ctx context.Context, score entity.Score) error {
	scores, err := that.List(ctx)
	if err != nil {
		return err
	}

	data, err := encodeScores(scores, score)
	if err != nil {
		return err
	}

	if err = that.client.Set(ctx, scoresKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set scores: %w", err)
	}

	return nil
}

func (that *redisScore) List(ctx context.Context) ([]entity.Score, error) {
	response, err := that.client.Get(ctx, scoresKey).Result()
	if errors.Is(err, redis.Nil) {
		return []entity.Score{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	return decodeScores([]byte(response)), nil
}
