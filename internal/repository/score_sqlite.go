package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/mastermind/internal/entity"
)

type sqliteScore struct {
	conn *sql.DB
}

// NewSQLiteScoreRepository expects the scores table created by sqlite.Storage.Init.
func NewSQLiteScoreRepository(conn *sql.DB) ScoreRepository {
	return &sqliteScore{
		conn: conn,
	}
}

func (that *sqliteScore) Save(ctx context.Context, score entity.Score) error {
	query := `INSERT INTO scores (points, initials) VALUES (?, ?)`

	_, err := that.conn.ExecContext(ctx, query, score.Points, score.Initials)
	if err != nil {
		return fmt.Errorf("can't save score: %w", err)
	}

	return nil
}

func (that *sqliteScore) List(ctx context.Context) ([]entity.Score, error) {
	query := `SELECT points, initials FROM scores ORDER BY points DESC, id ASC`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list scores: %w", err)
	}
	defer rows.Close()

	scores := []entity.Score{}
	for rows.Next() {
		var score entity.Score
		if err = rows.Scan(&score.Points, &score.Initials); err != nil {
			return nil, fmt.Errorf("can't scan score: %w", err)
		}

		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read scores: %w", err)
	}

	return scores, nil
}
