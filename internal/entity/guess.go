package entity

import (
	"fmt"

	"github.com/rocketscienceinc/mastermind/internal/apperror"
)

const CodeLength = 4

// Guess is a submitted answer and its evaluation. Exact counts black pegs, Partial white pegs.
type Guess struct {
	Answer  []Symbol
	Exact   int
	Partial int

	scored bool
}

func NewGuess(answer string) *Guess {
	return &Guess{Answer: ParseSymbols(answer)}
}

func ParseSymbols(s string) []Symbol {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(r))
	}

	return symbols
}

func FormatSymbols(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		runes[i] = rune(s)
	}

	return string(runes)
}

// Score records the evaluation. A guess can be scored only once.
func (that *Guess) Score(exact, partial int) error {
	if that.scored {
		return apperror.ErrGuessAlreadyScored
	}

	that.Exact = exact
	that.Partial = partial
	that.scored = true

	return nil
}

// Clone returns an independent copy of the guess.
func (that *Guess) Clone() Guess {
	clone := *that
	clone.Answer = append([]Symbol(nil), that.Answer...)

	return clone
}

func (that *Guess) IsScored() bool {
	return that.scored
}

func (that *Guess) Text() string {
	return FormatSymbols(that.Answer)
}

// Render formats the guess as one board line, passing each symbol through colorize.
func (that *Guess) Render(colorize func(Symbol) string) string {
	cells := make([]any, CodeLength)
	for i := range cells {
		if i < len(that.Answer) {
			cells[i] = colorize(that.Answer[i])
		} else {
			cells[i] = ""
		}
	}

	return fmt.Sprintf("%s, %s, %s, %s,     W:%d, B:%d", append(cells, that.Partial, that.Exact)...)
}

func (that *Guess) String() string {
	return that.Render(ColorOf)
}
