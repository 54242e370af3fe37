package mastermind

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/mastermind/internal/apperror"
	"github.com/rocketscienceinc/mastermind/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceRand returns the given values in order.
type sequenceRand struct {
	values []int
	calls  int
}

func (that *sequenceRand) Intn(n int) int {
	v := that.values[that.calls%len(that.values)] % n
	that.calls++

	return v
}

func newTestGame(t *testing.T, colors int, secret string) *Game {
	t.Helper()

	game, err := NewGameWithSecret(entity.NewPalette(colors), secret)
	require.NoError(t, err)

	return game
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 600, Points(0, 6))
	assert.Equal(t, 540, Points(1, 6))
	assert.Equal(t, 30, Points(9, 3))
	assert.Equal(t, 0, Points(10, 8))
	assert.Equal(t, -80, Points(11, 8))
}

func TestMakeSecret(t *testing.T) {
	t.Run("Uses the randomizer", func(t *testing.T) {
		// Given: a randomizer with a known sequence
		rnd := &sequenceRand{values: []int{0, 3, 5, 1}}

		// When: making a secret from 6 colors
		secret := MakeSecret(entity.NewPalette(6), rnd)

		// Then: the secret follows the palette order
		assert.Equal(t, entity.ParseSymbols("rgmG"), secret)
		assert.Equal(t, 4, rnd.calls)
	})

	t.Run("Stays inside the palette", func(t *testing.T) {
		// Given: a seeded randomizer and a small palette
		palette := entity.NewPalette(3)
		rnd := rand.New(rand.NewSource(7))

		for range 100 {
			// When: making a secret
			secret := MakeSecret(palette, rnd)

			// Then: every symbol belongs to the palette
			require.Len(t, secret, entity.CodeLength)
			for _, symbol := range secret {
				require.True(t, palette.Contains(symbol))
			}
		}
	})
}

func TestNewGame(t *testing.T) {
	// When: a new game with 6 colors is created
	game := NewGame(entity.NewPalette(6), rand.New(rand.NewSource(1)))

	// Then: it is in progress with full points and an empty history
	assert.Equal(t, StatusInProgress, game.Status())
	assert.False(t, game.IsOver())
	assert.False(t, game.Won())
	assert.Equal(t, 600, game.Points())
	assert.Empty(t, game.History())
	assert.NotEmpty(t, game.ID())
	assert.Len(t, game.secret, entity.CodeLength)
}

func TestNewGame_ZeroPointsGuard(t *testing.T) {
	// When: a game starts with a palette that yields no points
	game := newGame(entity.Palette{}, entity.ParseSymbols("rrrr"))

	// Then: it is lost right away
	assert.Equal(t, StatusLost, game.Status())
	assert.Equal(t, 0, game.Points())
}

func TestNewGameWithSecret_InvalidLength(t *testing.T) {
	_, err := NewGameWithSecret(entity.NewPalette(6), "rgb")

	require.ErrorIs(t, err, apperror.ErrInvalidGuessLength)
}

func TestGame_Submit(t *testing.T) {
	t.Run("Wrong guess keeps the game going", func(t *testing.T) {
		// Given: a game with a known secret
		game := newTestGame(t, 6, "gbyr")

		// When: a wrong guess is submitted
		event, err := game.Submit("rgby")

		// Then: the guess is scored and points drop
		require.NoError(t, err)
		assert.Equal(t, Continue, event.Outcome)
		assert.Equal(t, 0, event.Guess.Exact)
		assert.Equal(t, 4, event.Guess.Partial)
		assert.Equal(t, 540, event.Points)
		assert.Equal(t, StatusInProgress, game.Status())

		history := game.History()
		require.Len(t, history, 1)
		assert.True(t, history[0].IsScored())
	})

	t.Run("Matching guess wins", func(t *testing.T) {
		// Given: a game with a known secret
		game := newTestGame(t, 6, "rgby")

		// When: the secret is guessed
		event, err := game.Submit("rgby")

		// Then: the game is won with the points it was worth
		require.NoError(t, err)
		assert.Equal(t, Won, event.Outcome)
		assert.Equal(t, 4, event.Guess.Exact)
		assert.Equal(t, 0, event.Guess.Partial)
		assert.Equal(t, 600, event.Points)
		assert.Equal(t, StatusWon, game.Status())
		assert.True(t, game.Won())
	})

	t.Run("Win after several guesses", func(t *testing.T) {
		// Given: a game with some wrong guesses in its history
		game := newTestGame(t, 4, "yGGr")
		for _, answer := range []string{"rrrr", "GGGG", "yyyy"} {
			event, err := game.Submit(answer)
			require.NoError(t, err)
			require.Equal(t, Continue, event.Outcome)
		}

		// When: the secret is guessed
		event, err := game.Submit("yGGr")

		// Then: one submission is enough to win
		require.NoError(t, err)
		assert.Equal(t, Won, event.Outcome)
		assert.Equal(t, Points(3, 4), event.Points)
		assert.Len(t, game.History(), 4)
	})

	t.Run("Running out of points loses", func(t *testing.T) {
		// Given: a game with a known secret
		game := newTestGame(t, 3, "rrrr")

		for n := 1; n < MaxGuesses; n++ {
			// When: wrong guesses are submitted
			event, err := game.Submit("GGGG")
			require.NoError(t, err)

			// Then: the game is not lost before points reach zero
			require.Equal(t, Continue, event.Outcome, "guess %d", n)
			require.Equal(t, Points(n, 3), event.Points)
		}

		// When: the last wrong guess is submitted
		event, err := game.Submit("yyyy")

		// Then: the game is lost at zero points
		require.NoError(t, err)
		assert.Equal(t, Lost, event.Outcome)
		assert.Equal(t, 0, event.Points)
		assert.Equal(t, StatusLost, game.Status())
		assert.False(t, game.Won())
	})

	t.Run("Winning on the last guess", func(t *testing.T) {
		// Given: a game with nine wrong guesses
		game := newTestGame(t, 3, "rrrr")
		for range MaxGuesses - 1 {
			_, err := game.Submit("GGGG")
			require.NoError(t, err)
		}

		// When: the tenth guess matches
		event, err := game.Submit("rrrr")

		// Then: the game is won with the remaining points
		require.NoError(t, err)
		assert.Equal(t, Won, event.Outcome)
		assert.Equal(t, 30, event.Points)
	})

	t.Run("Negative points lose without scoring", func(t *testing.T) {
		// Given: a game whose points are already negative
		game := newTestGame(t, 6, "rgby")
		game.points = -60

		// When: a wrong guess is submitted
		event, err := game.Submit("rgbr")

		// Then: the game is lost and the guess stays unscored
		require.NoError(t, err)
		assert.Equal(t, Lost, event.Outcome)
		assert.False(t, event.Guess.IsScored())
		assert.Equal(t, StatusLost, game.Status())
	})

	t.Run("Exact match wins even with negative points", func(t *testing.T) {
		// Given: a game whose points are already negative
		game := newTestGame(t, 6, "rgby")
		game.points = -60

		// When: the secret is guessed
		event, err := game.Submit("rgby")

		// Then: the game is won
		require.NoError(t, err)
		assert.Equal(t, Won, event.Outcome)
	})

	t.Run("Invalid length leaves history untouched", func(t *testing.T) {
		// Given: a new game
		game := newTestGame(t, 6, "rgby")

		// When: a short guess is submitted
		_, err := game.Submit("rgb")

		// Then: ErrInvalidGuessLength is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidGuessLength)
		assert.Empty(t, game.History())
		assert.Equal(t, 600, game.Points())
		assert.Equal(t, StatusInProgress, game.Status())
	})

	t.Run("Guess after the game is over", func(t *testing.T) {
		// Given: a won game
		game := newTestGame(t, 6, "rgby")
		_, err := game.Submit("rgby")
		require.NoError(t, err)

		// When: another guess is submitted
		_, err = game.Submit("rrrr")

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Len(t, game.History(), 1)
	})
}

func TestGame_HistoryIsACopy(t *testing.T) {
	// Given: a game with one guess
	game := newTestGame(t, 6, "rgby")
	_, err := game.Submit("rrrr")
	require.NoError(t, err)

	// When: the returned history is modified
	history := game.History()
	history[0].Answer[0] = entity.White
	history[0].Exact = 3

	// Then: the game history is unchanged
	fresh := game.History()
	assert.Equal(t, "rrrr", fresh[0].Text())
	assert.Equal(t, 1, fresh[0].Exact)
}

func TestGame_Reveal(t *testing.T) {
	t.Run("Hidden while in progress", func(t *testing.T) {
		game := newTestGame(t, 6, "rgby")

		_, err := game.Reveal()

		require.Error(t, err)
	})

	t.Run("Shown after the game is over", func(t *testing.T) {
		game := newTestGame(t, 6, "rgby")
		game.status = StatusLost

		secret, err := game.Reveal()

		require.NoError(t, err)
		assert.Equal(t, "rgby", secret)
	})
}
