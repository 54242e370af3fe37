package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrInvalidGuessLength = errors.New("guess must be exactly 4 symbols")
	ErrGuessAlreadyScored = errors.New("guess is already scored")
	ErrUnknownBackend     = errors.New("unknown score backend")
)
