package agent

import (
	"reversi/game"
	"reversi/strategy"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, options ...game.Option) *game.Board {
	t.Helper()
	topology, err := game.Square(8)
	require.NoError(t, err)
	b, err := game.NewBoard(topology, options...)
	require.NoError(t, err)
	return b
}

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays the first preferred move", func(t *testing.T) {
		a := NewEvaluationAgent(strategy.MaxCapture{})

		move, ok := a.FindMove(newBoard(t), game.Black)
		require.True(t, ok)
		require.Equal(t, game.Coordinate{X: 4, Y: 2}, move)
	})

	t.Run("passes without legal moves", func(t *testing.T) {
		a := NewEvaluationAgent(strategy.MaxCapture{})

		_, ok := a.FindMove(newBoard(t, game.WithEmptyBoard()), game.Black)
		require.False(t, ok)
	})
}

func TestTrainingAgent(t *testing.T) {
	t.Run("samples among the preferred moves", func(t *testing.T) {
		b := newBoard(t)
		legal := b.LegalMoves(game.Black)
		a := NewTrainingAgent(strategy.AnyMove{}, 7)

		seen := map[game.Coordinate]bool{}
		for i := 0; i < 200; i++ {
			move, ok := a.FindMove(b, game.Black)
			require.True(t, ok)
			require.Contains(t, legal, move)
			seen[move] = true
		}
		require.Greater(t, len(seen), 1, "Sampling should not always return the same move")
	})

	t.Run("same seed same choices", func(t *testing.T) {
		b := newBoard(t)
		a1 := NewTrainingAgent(strategy.AnyMove{}, 42)
		a2 := NewTrainingAgent(strategy.AnyMove{}, 42)

		for i := 0; i < 20; i++ {
			m1, _ := a1.FindMove(b, game.Black)
			m2, _ := a2.FindMove(b, game.Black)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("passes without legal moves", func(t *testing.T) {
		a := NewTrainingAgent(strategy.AnyMove{}, 1)

		_, ok := a.FindMove(newBoard(t, game.WithEmptyBoard()), game.White)
		require.False(t, ok)
	})
}
