package mastermind

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/mastermind/internal/apperror"
	"github.com/rocketscienceinc/mastermind/internal/entity"
)

// Evaluate compares a guess with the secret and returns the black (exact) and white (partial) peg counts.
func Evaluate(secret, guess []entity.Symbol) (int, int, error) {
	if err := validateLength(secret); err != nil {
		return 0, 0, fmt.Errorf("invalid secret: %w", err)
	}

	if err := validateLength(guess); err != nil {
		return 0, 0, fmt.Errorf("invalid guess: %w", err)
	}

	// first pass: pegs in the right spot are taken out of both sides
	var exact int

	restSecret := make([]entity.Symbol, 0, entity.CodeLength)
	restGuess := make([]entity.Symbol, 0, entity.CodeLength)

	for i := range entity.CodeLength {
		if secret[i] == guess[i] {
			exact++
			continue
		}

		restSecret = append(restSecret, secret[i])
		restGuess = append(restGuess, guess[i])
	}

	// second pass: each remaining secret peg satisfies at most one guess peg
	var partial int

	for _, symbol := range restGuess {
		if i := slices.Index(restSecret, symbol); i >= 0 {
			partial++
			restSecret = slices.Delete(restSecret, i, i+1)
		}
	}

	return exact, partial, nil
}

func validateLength(symbols []entity.Symbol) error {
	if len(symbols) != entity.CodeLength {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidGuessLength, len(symbols))
	}

	return nil
}
