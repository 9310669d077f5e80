package game

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds occurs when a coordinate is not part of the board's grid
	ErrOutOfBounds = errors.New("coordinate is out of bounds")
	// ErrIllegalMove occurs when a move or pass violates the rules of the game
	ErrIllegalMove = errors.New("illegal move")
	// ErrNotYourTurn occurs when a color acts out of turn. It is also an ErrIllegalMove.
	ErrNotYourTurn = fmt.Errorf("%w: not your turn", ErrIllegalMove)
	// ErrBoardSize occurs when a topology is requested with an unsupported size
	ErrBoardSize = errors.New("unsupported board size")
)

// PlayerColor is the color of a disc and of the player placing it.
type PlayerColor int

const (
	Black PlayerColor = iota
	White
)

// Colors lists both colors in turn order.
var Colors = []PlayerColor{Black, White}

// Opposite returns the other color.
func (c PlayerColor) Opposite() PlayerColor {
	if c == Black {
		return White
	}
	return Black
}

func (c PlayerColor) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("PlayerColor(%d)", int(c))
	}
}

// symbol is the single character used by Board.String
func (c PlayerColor) symbol() byte {
	if c == Black {
		return 'X'
	}
	return 'O'
}
