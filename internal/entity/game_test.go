package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, humanMark engine.Cell) *Game {
	t.Helper()

	game, err := NewGame("123", humanMark, DifficultyHard)
	require.NoError(t, err)

	return game
}

func TestNewGame(t *testing.T) {
	t.Run("Starts an ongoing game with X to move", func(t *testing.T) {
		// When: a new game is created for a human playing O
		game := newGame(t, engine.O)

		// Then: the bot plays X and X moves first
		expectedGame := &Game{
			ID:         "123",
			Board:      engine.InitialState(),
			HumanMark:  engine.O,
			BotMark:    engine.X,
			Difficulty: DifficultyHard,
			Status:     StatusOngoing,
			Turn:       engine.X,
			Moves:      []engine.Action{},
		}

		require.Equal(t, expectedGame, game)
		assert.True(t, game.IsBotTurn())
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		_, err := NewGame("123", engine.Empty, DifficultyHard)

		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		_, err := NewGame("123", engine.X, "nightmare")

		assert.ErrorIs(t, err, apperror.ErrInvalidDifficulty)
	})
}

func TestGame_Apply(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, engine.X)

		// When: X plays the center
		err := game.Apply(engine.X, engine.Action{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the board, history and turn are updated
		assert.Equal(t, engine.X, game.Board[1][1])
		assert.Equal(t, []engine.Action{{Row: 1, Col: 1}}, game.Moves)
		assert.Equal(t, engine.O, game.Turn)
		assert.True(t, game.IsOngoing())
		assert.True(t, game.IsBotTurn())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where X is to move
		game := newGame(t, engine.X)

		// When: O tries to move
		err := game.Apply(engine.O, engine.Action{Row: 0, Col: 0})

		// Then: ErrNotYourTurn is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, newGame(t, engine.X), game)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		game := newGame(t, engine.X)
		require.NoError(t, game.Apply(engine.X, engine.Action{Row: 0, Col: 0}))

		err := game.Apply(engine.O, engine.Action{Row: 0, Col: 0})

		require.ErrorIs(t, err, engine.ErrInvalidAction)
		assert.Len(t, game.Moves, 1)
	})

	t.Run("Error on off-board cell", func(t *testing.T) {
		game := newGame(t, engine.X)

		err := game.Apply(engine.X, engine.Action{Row: 3, Col: 0})

		assert.ErrorIs(t, err, engine.ErrInvalidAction)
	})

	t.Run("Finishes with a winner", func(t *testing.T) {
		// Given: a game about to be won by X
		game := newGame(t, engine.X)
		for _, a := range []engine.Action{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}} {
			require.NoError(t, game.Apply(engine.Player(game.Board), a))
		}

		// When: X completes the top row
		require.NoError(t, game.Apply(engine.X, engine.Action{Row: 0, Col: 2}))

		// Then: the game is finished and X wins
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, engine.Empty, game.Turn)

		// And: no more moves are accepted
		err := game.Apply(engine.O, engine.Action{Row: 2, Col: 2})
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Finishes with a tie", func(t *testing.T) {
		// Given: moves leading to XOX / XOO / OXX
		game := newGame(t, engine.X)
		for _, a := range []engine.Action{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
			{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2},
		} {
			require.NoError(t, game.Apply(engine.Player(game.Board), a))
		}

		// Then: the game is a tie
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerTie, game.Winner)
	})
}
