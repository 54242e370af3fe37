package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	guessPrompt      = "Enter your guess."
	initialsPrompt   = "Enter your initials:"
	highScoresPrompt = "Would you like to see the high scores? [y/N]"
)

// Input reads one answer per line, printing a prompt before each read.
type Input struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewInput(in io.Reader, out io.Writer) *Input {
	return &Input{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (that *Input) Guess(ctx context.Context) (string, error) {
	return that.readLine(ctx, guessPrompt)
}

func (that *Input) Initials(ctx context.Context) (string, error) {
	return that.readLine(ctx, initialsPrompt)
}

func (that *Input) ShowHighScores(ctx context.Context) (string, error) {
	return that.readLine(ctx, highScoresPrompt)
}

func (that *Input) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprintln(that.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.scanner.Text()), nil
}
