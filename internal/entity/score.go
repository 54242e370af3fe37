package entity

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Score is one high score entry. It is persisted as the pair [points, "initials"].
type Score struct {
	Points   int
	Initials string
}

func (that Score) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{that.Points, that.Initials})
}

func (that *Score) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("score is not a list: %w", err)
	}

	if len(pair) != 2 {
		return fmt.Errorf("score must have 2 elements, got %d", len(pair))
	}

	if err := json.Unmarshal(pair[0], &that.Points); err != nil {
		return fmt.Errorf("invalid points: %w", err)
	}

	if err := json.Unmarshal(pair[1], &that.Initials); err != nil {
		return fmt.Errorf("invalid initials: %w", err)
	}

	return nil
}

// SortScores orders scores highest first. Equal points keep their insertion order.
func SortScores(scores []Score) {
	slices.SortStableFunc(scores, func(a, b Score) int {
		return b.Points - a.Points
	})
}
