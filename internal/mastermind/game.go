package mastermind

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/mastermind/internal/apperror"
	"github.com/rocketscienceinc/mastermind/internal/entity"
)

const MaxGuesses = 10

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

type Outcome int

const (
	Continue Outcome = iota
	Won
	Lost
)

func (that Outcome) String() string {
	switch that {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "continue"
	}
}

// Event is what a submitted guess led to. The driver renders it.
type Event struct {
	Outcome Outcome
	Guess   entity.Guess
	Points  int
}

// Randomizer picks secret symbols. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Points is the score a win would be worth after guessCount guesses.
func Points(guessCount, paletteSize int) int {
	return (MaxGuesses - guessCount) * paletteSize * 10
}

func MakeSecret(palette entity.Palette, rnd Randomizer) []entity.Symbol {
	secret := make([]entity.Symbol, entity.CodeLength)
	for i := range secret {
		secret[i] = palette.At(rnd.Intn(palette.Size()))
	}

	return secret
}

// Game holds the secret, the guess history and the scoring state of one match.
type Game struct {
	id      string
	palette entity.Palette
	secret  []entity.Symbol
	guesses []*entity.Guess
	points  int
	status  Status
}

func NewGame(palette entity.Palette, rnd Randomizer) *Game {
	return newGame(palette, MakeSecret(palette, rnd))
}

// NewGameWithSecret starts a game with a known secret.
func NewGameWithSecret(palette entity.Palette, secret string) (*Game, error) {
	symbols := entity.ParseSymbols(secret)
	if err := validateLength(symbols); err != nil {
		return nil, fmt.Errorf("invalid secret: %w", err)
	}

	return newGame(palette, symbols), nil
}

func newGame(palette entity.Palette, secret []entity.Symbol) *Game {
	game := &Game{
		id:      uuid.NewString(),
		palette: palette,
		secret:  secret,
		status:  StatusInProgress,
	}

	game.updatePoints()

	return game
}

// Submit plays one guess and reports what it led to.
func (that *Game) Submit(answer string) (Event, error) {
	if that.IsOver() {
		return Event{}, apperror.ErrGameFinished
	}

	guess := entity.NewGuess(answer)
	if err := validateLength(guess.Answer); err != nil {
		return Event{}, err
	}

	that.guesses = append(that.guesses, guess)

	if slices.Equal(guess.Answer, that.secret) {
		if err := guess.Score(entity.CodeLength, 0); err != nil {
			return Event{}, fmt.Errorf("failed to score guess: %w", err)
		}

		that.status = StatusWon

		return that.event(Won, guess), nil
	}

	if that.points < 0 {
		that.status = StatusLost

		return that.event(Lost, guess), nil
	}

	exact, partial, err := Evaluate(that.secret, guess.Answer)
	if err != nil {
		return Event{}, fmt.Errorf("failed to evaluate guess: %w", err)
	}

	if err = guess.Score(exact, partial); err != nil {
		return Event{}, fmt.Errorf("failed to score guess: %w", err)
	}

	if that.updatePoints() {
		return that.event(Lost, guess), nil
	}

	return that.event(Continue, guess), nil
}

// updatePoints recalculates the score and reports whether it ended the game.
func (that *Game) updatePoints() bool {
	that.points = Points(len(that.guesses), that.palette.Size())
	if that.points <= 0 {
		that.status = StatusLost
		return true
	}

	return false
}

func (that *Game) event(outcome Outcome, guess *entity.Guess) Event {
	return Event{
		Outcome: outcome,
		Guess:   guess.Clone(),
		Points:  that.points,
	}
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Palette() entity.Palette {
	return that.palette
}

func (that *Game) Points() int {
	return that.points
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) IsOver() bool {
	return that.status != StatusInProgress
}

func (that *Game) Won() bool {
	return that.status == StatusWon
}

// History returns copies of the guesses in the order they were made.
func (that *Game) History() []entity.Guess {
	history := make([]entity.Guess, len(that.guesses))
	for i, guess := range that.guesses {
		history[i] = guess.Clone()
	}

	return history
}

// Reveal returns the secret once the game is over.
func (that *Game) Reveal() (string, error) {
	if !that.IsOver() {
		return "", fmt.Errorf("game %s is still in progress", that.id)
	}

	return entity.FormatSymbols(that.secret), nil
}
