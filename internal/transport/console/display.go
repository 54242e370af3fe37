package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/rocketscienceinc/mastermind/internal/entity"
)

var frame = strings.Repeat("-", 24)

// Display prints the board and game messages to a writer.
type Display struct {
	out     io.Writer
	colored bool
}

// NewDisplay renders symbols with their terminal colors.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out, colored: true}
}

// NewPlainDisplay renders without escape sequences.
func NewPlainDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (that *Display) Palette(palette entity.Palette) {
	that.println("valid colors are: " + palette.String())
}

func (that *Display) Board(history []entity.Guess) {
	that.println(frame)
	for _, guess := range history {
		that.println(guess.Render(that.colorize))
	}
	that.println(frame)
}

func (that *Display) PointsAvailable(points int) {
	that.println(fmt.Sprintf("For %d possible points:", points))
}

func (that *Display) Rejected(answer string, err error) {
	that.println(fmt.Sprintf("%q is not a valid guess: %v", answer, err))
}

func (that *Display) Victory(points int) {
	message := fmt.Sprintf("You win! - %d points", points)
	if that.colored {
		message = color.Ize(color.Green, message)
	}

	that.println(message)
}

func (that *Display) Defeat(secret string) {
	that.println("You lose! The secret was " + secret)
}

func (that *Display) HighScores(scores []entity.Score) {
	if len(scores) == 0 {
		that.println("No high scores yet")
		return
	}

	that.println("High Scores:")
	for _, score := range scores {
		that.println(fmt.Sprintf("%d       %s", score.Points, score.Initials))
	}
}

func (that *Display) colorize(symbol entity.Symbol) string {
	if that.colored {
		return entity.ColorOf(symbol)
	}

	return string(symbol)
}

func (that *Display) println(line string) {
	// a broken terminal leaves nothing to report to
	_, _ = fmt.Fprintln(that.out, line)
}
