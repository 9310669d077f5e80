package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newSquareBoard(t *testing.T, size int, options ...Option) *Board {
	t.Helper()
	topology, err := Square(size)
	require.NoError(t, err)
	b, err := NewBoard(topology, options...)
	require.NoError(t, err)
	return b
}

func newHexBoard(t *testing.T, layers int, options ...Option) *Board {
	t.Helper()
	topology, err := Hex(layers)
	require.NoError(t, err)
	b, err := NewBoard(topology, options...)
	require.NoError(t, err)
	return b
}

func totalDiscs(b *Board) int {
	return b.Score(Black) + b.Score(White)
}

func TestNewBoard(t *testing.T) {
	t.Run("standard square start", func(t *testing.T) {
		b := newSquareBoard(t, 8)

		require.Equal(t, Black, b.Turn(), "Black should move first")
		require.False(t, b.GameOver())
		require.Equal(t, 2, b.Score(Black))
		require.Equal(t, 2, b.Score(White))

		tile, err := b.TileAt(Coordinate{3, 3})
		require.NoError(t, err)
		color, ok := tile.Disc()
		require.True(t, ok)
		require.Equal(t, Black, color)

		tile, err = b.TileAt(Coordinate{0, 0})
		require.NoError(t, err)
		require.True(t, tile.IsEmpty())
		require.Equal(t, Coordinate{0, 0}, tile.Coordinate())
	})

	t.Run("extra discs overlay the start", func(t *testing.T) {
		b := newSquareBoard(t, 8, WithDiscs(map[Coordinate]PlayerColor{
			{3, 3}: White,
			{0, 0}: Black,
		}), WithTurn(White))

		require.Equal(t, White, b.Turn())
		require.Equal(t, 2, b.Score(Black), "(3, 3) should be replaced and (0, 0) added")
		require.Equal(t, 3, b.Score(White))
	})

	t.Run("empty board has no discs and is over", func(t *testing.T) {
		b := newSquareBoard(t, 8, WithEmptyBoard())

		require.Zero(t, totalDiscs(b))
		require.True(t, b.GameOver(), "Nobody can move on an empty board")
	})

	t.Run("rejects discs off the grid", func(t *testing.T) {
		topology, err := Square(8)
		require.NoError(t, err)

		_, err = NewBoard(topology, WithDiscs(map[Coordinate]PlayerColor{{8, 0}: Black}))
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestTileAt(t *testing.T) {
	b := newSquareBoard(t, 8)

	for _, c := range []Coordinate{{-1, 0}, {0, 8}, {100, 100}} {
		_, err := b.TileAt(c)
		require.ErrorIs(t, err, ErrOutOfBounds, "Coordinate %s is off the board", c)
	}
}

func TestLegalMoves(t *testing.T) {
	t.Run("square opening moves in canonical order", func(t *testing.T) {
		b := newSquareBoard(t, 8)

		moves := b.LegalMoves(Black)
		require.Equal(t, []Coordinate{{4, 2}, {5, 3}, {2, 4}, {3, 5}}, moves)
		for _, c := range moves {
			require.Equal(t, 1, b.CaptureCount(c, Black), "Opening move %s should flip one disc", c)
		}
	})

	t.Run("hex opening moves in canonical order", func(t *testing.T) {
		b := newHexBoard(t, 3)

		want := []Coordinate{{1, -2}, {-1, -1}, {2, -1}, {-2, 1}, {1, 1}, {-1, 2}}
		require.Equal(t, want, b.LegalMoves(Black))
		require.Equal(t, want, b.LegalMoves(White), "The alternating ring is symmetric for both colors")
		require.False(t, b.IsLegalMove(Coordinate{0, 0}, Black), "Centre brackets nothing at the start")
	})

	t.Run("occupied and off-grid tiles are never legal", func(t *testing.T) {
		b := newSquareBoard(t, 8)

		require.False(t, b.IsLegalMove(Coordinate{3, 3}, Black))
		require.False(t, b.IsLegalMove(Coordinate{3, 3}, White))
		require.False(t, b.IsLegalMove(Coordinate{-1, 2}, Black))
		require.Zero(t, b.CaptureCount(Coordinate{-1, 2}, Black))
	})
}

func TestPreview(t *testing.T) {
	b := newSquareBoard(t, 8)

	m, err := b.Preview(Coordinate{4, 2}, Black)
	require.NoError(t, err)
	require.Equal(t, []Coordinate{{4, 3}}, m.Flips)
	require.Equal(t, 1, m.Captures())
	require.Equal(t, 2, b.Score(Black), "Preview should not change the board")

	_, err = b.Preview(Coordinate{0, 0}, Black)
	require.ErrorIs(t, err, ErrIllegalMove)

	_, err = b.Preview(Coordinate{9, 0}, Black)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestMove(t *testing.T) {
	t.Run("flips the bracketed disc and passes the turn", func(t *testing.T) {
		b := newSquareBoard(t, 8)

		require.NoError(t, b.Move(Coordinate{4, 2}, Black))

		tile, err := b.TileAt(Coordinate{4, 3})
		require.NoError(t, err)
		color, _ := tile.Disc()
		require.Equal(t, Black, color, "Bracketed disc should flip")
		require.Equal(t, 4, b.Score(Black))
		require.Equal(t, 1, b.Score(White))
		require.Equal(t, White, b.Turn())
	})

	t.Run("flips in two directions at once", func(t *testing.T) {
		b := newSquareBoard(t, 8, WithEmptyBoard(), WithDiscs(map[Coordinate]PlayerColor{
			{0, 2}: Black,
			{1, 2}: White,
			{2, 0}: Black,
			{2, 1}: White,
		}))

		require.Equal(t, 2, b.CaptureCount(Coordinate{2, 2}, Black))
		require.NoError(t, b.Move(Coordinate{2, 2}, Black))

		require.Equal(t, 5, b.Score(Black), "Both brackets should flip in the same move")
		require.Zero(t, b.Score(White))
		require.True(t, b.GameOver(), "No white discs are left to bracket")
		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Black, winner)
	})

	t.Run("rejects illegal moves without changing the board", func(t *testing.T) {
		b := newSquareBoard(t, 8)
		before := b.String()

		err := b.Move(Coordinate{0, 0}, Black)
		require.ErrorIs(t, err, ErrIllegalMove)

		err = b.Move(Coordinate{3, 3}, Black)
		require.ErrorIs(t, err, ErrIllegalMove, "Occupied tile")

		err = b.Move(Coordinate{8, 8}, Black)
		require.ErrorIs(t, err, ErrOutOfBounds)

		require.Equal(t, before, b.String())
		require.Equal(t, Black, b.Turn())
	})

	t.Run("rejects moving out of turn", func(t *testing.T) {
		b := newSquareBoard(t, 8)

		err := b.Move(Coordinate{4, 2}, White)
		require.ErrorIs(t, err, ErrNotYourTurn)
		require.ErrorIs(t, err, ErrIllegalMove, "Out of turn moves are illegal moves too")
		require.Equal(t, 2, b.Score(White))
	})

	t.Run("hex capture", func(t *testing.T) {
		b := newHexBoard(t, 3)

		require.NoError(t, b.Move(Coordinate{1, -2}, Black))

		tile, err := b.TileAt(Coordinate{1, -1})
		require.NoError(t, err)
		color, _ := tile.Disc()
		require.Equal(t, Black, color)
		require.Equal(t, 5, b.Score(Black))
		require.Equal(t, 2, b.Score(White))
	})
}

func TestPass(t *testing.T) {
	t.Run("cannot pass with a legal move", func(t *testing.T) {
		b := newSquareBoard(t, 8)

		err := b.Pass(Black)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, Black, b.Turn())
		require.Zero(t, b.Passes())
	})

	t.Run("cannot pass out of turn", func(t *testing.T) {
		b := newSquareBoard(t, 8)

		require.ErrorIs(t, b.Pass(White), ErrNotYourTurn)
	})

	t.Run("pass then the other color finishes the game", func(t *testing.T) {
		b := newSquareBoard(t, 4, WithEmptyBoard(), WithDiscs(map[Coordinate]PlayerColor{
			{0, 0}: White,
			{1, 0}: Black,
		}))
		require.False(t, b.GameOver())
		require.Empty(t, b.LegalMoves(Black))

		require.NoError(t, b.Pass(Black))
		require.Equal(t, White, b.Turn())
		require.Equal(t, 1, b.Passes())
		require.False(t, b.GameOver(), "White can still move")

		require.NoError(t, b.Move(Coordinate{2, 0}, White))
		require.Zero(t, b.Passes(), "A move resets the pass counter")
		require.True(t, b.GameOver())
	})

	t.Run("two passes without moves end the game", func(t *testing.T) {
		b := newSquareBoard(t, 4, WithEmptyBoard(), WithDiscs(map[Coordinate]PlayerColor{
			{0, 0}: Black,
		}))

		require.Empty(t, b.LegalMoves(Black))
		require.NoError(t, b.Pass(Black))
		require.Empty(t, b.LegalMoves(White))
		require.NoError(t, b.Pass(White))
		require.Equal(t, 2, b.Passes())
		require.True(t, b.GameOver())

		require.ErrorIs(t, b.Move(Coordinate{1, 1}, Black), ErrIllegalMove)
	})
}

func TestCopy(t *testing.T) {
	t.Run("mutating the copy leaves the original", func(t *testing.T) {
		b := newSquareBoard(t, 8)
		c := b.Copy()

		require.NoError(t, c.Move(Coordinate{4, 2}, Black))
		require.Equal(t, 2, b.Score(Black))
		require.Equal(t, Black, b.Turn())
		require.Equal(t, 4, c.Score(Black))
	})

	t.Run("fork overrides the turn", func(t *testing.T) {
		b := newSquareBoard(t, 8)
		f := b.Fork(White)

		require.Equal(t, White, f.Turn())
		require.NoError(t, f.Move(Coordinate{3, 2}, White))
		require.Equal(t, Black, b.Turn())
		require.Equal(t, 2, b.Score(White))
	})
}

// playOut plays the first legal move until the game ends, checking the board
// invariants after every step.
func playOut(t *testing.T, b *Board) {
	t.Helper()
	for turns := 0; !b.GameOver(); turns++ {
		require.Less(t, turns, 2*len(b.Topology().Coordinates()), "Game should terminate")

		color := b.Turn()
		moves := b.LegalMoves(color)
		for _, c := range b.Topology().Coordinates() {
			require.Equal(t, b.IsLegalMove(c, color), containsCoordinate(moves, c),
				"LegalMoves and IsLegalMove disagree at %s", c)
		}

		if len(moves) == 0 {
			require.NoError(t, b.Pass(color))
			continue
		}

		mover, total := b.Score(color), totalDiscs(b)
		require.NoError(t, b.Move(moves[0], color))
		require.Greater(t, b.Score(color), mover, "Mover should gain discs")
		require.Equal(t, total+1, totalDiscs(b), "Flips are zero-sum")
	}
}

func containsCoordinate(coords []Coordinate, c Coordinate) bool {
	for _, other := range coords {
		if other == c {
			return true
		}
	}
	return false
}

func TestPlayOut(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		playOut(t, newSquareBoard(t, 8))
	})

	t.Run("hex", func(t *testing.T) {
		playOut(t, newHexBoard(t, 4))
	})
}

func TestString(t *testing.T) {
	b := newSquareBoard(t, 4)

	want := ". . . .\n" +
		". X O .\n" +
		". O X .\n" +
		". . . ."
	require.Equal(t, want, b.String())
}
