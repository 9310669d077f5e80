package game

import (
	"fmt"
	"strings"
)

// Board is the state of a single game: one tile per coordinate of its
// topology, whose turn it is, and how the game is progressing. A Board is not
// safe for concurrent mutation; simulations work on a Copy.
type Board struct {
	topology Topology
	tiles    []Tile // Indexed by canonical order
	turn     PlayerColor
	passes   int // Consecutive passes
	gameOver bool
}

// Option customizes the initial position of a board.
type Option func(s *setup)

type setup struct {
	discs map[Coordinate]PlayerColor
	turn  PlayerColor
	empty bool
}

// WithDiscs places extra discs on top of the starting position, replacing
// any disc already on those tiles.
func WithDiscs(discs map[Coordinate]PlayerColor) Option {
	return func(s *setup) {
		for c, color := range discs {
			s.discs[c] = color
		}
	}
}

// WithTurn sets the color that moves first. Black moves first by default.
func WithTurn(color PlayerColor) Option {
	return func(s *setup) {
		s.turn = color
	}
}

// WithEmptyBoard leaves out the topology's starting discs.
func WithEmptyBoard() Option {
	return func(s *setup) {
		s.empty = true
	}
}

// NewBoard creates a board for the given topology in its starting position.
func NewBoard(topology Topology, options ...Option) (*Board, error) {
	s := &setup{
		discs: make(map[Coordinate]PlayerColor),
		turn:  Black,
	}
	for _, option := range options {
		option(s)
	}

	coords := topology.Coordinates()
	b := &Board{
		topology: topology,
		tiles:    make([]Tile, len(coords)),
		turn:     s.turn,
	}
	for i, c := range coords {
		b.tiles[i].coordinate = c
	}

	if !s.empty {
		for c, color := range topology.StartingDiscs() {
			b.tiles[b.mustIndex(c)].place(color)
		}
	}
	for c, color := range s.discs {
		i, ok := topology.Index(c)
		if !ok {
			return nil, fmt.Errorf("%w: cannot place %s disc at %s on %v", ErrOutOfBounds, color, c, topology)
		}
		b.tiles[i].place(color)
	}

	b.updateGameOver()
	return b, nil
}

func (b *Board) mustIndex(c Coordinate) int {
	i, ok := b.topology.Index(c)
	if !ok {
		panic(fmt.Sprintf("coordinate %s is not part of the topology", c))
	}
	return i
}

func (b *Board) Topology() Topology {
	return b.topology
}

// Turn returns the color that acts next.
func (b *Board) Turn() PlayerColor {
	return b.turn
}

// Passes returns the number of consecutive passes made so far.
func (b *Board) Passes() int {
	return b.passes
}

// GameOver reports whether neither player can move any more.
func (b *Board) GameOver() bool {
	return b.gameOver
}

// TileAt returns a snapshot of the tile at c.
func (b *Board) TileAt(c Coordinate) (Tile, error) {
	i, ok := b.topology.Index(c)
	if !ok {
		return Tile{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return b.tiles[i], nil
}

// captures returns the tile indices flipped by color placing at c. It is
// empty when the placement is off the board, on an occupied tile, or brackets
// nothing.
func (b *Board) captures(c Coordinate, color PlayerColor) []int {
	i, ok := b.topology.Index(c)
	if !ok || b.tiles[i].occupied {
		return nil
	}

	var flips []int
	opponent := color.Opposite()
	for _, d := range b.topology.Directions() {
		var bracket []int
		next := c.Add(d)
		for {
			j, ok := b.topology.Index(next)
			if !ok || !b.tiles[j].occupied {
				// Ran off the board or into an empty tile
				bracket = nil
				break
			}
			if b.tiles[j].disc != opponent {
				break
			}
			bracket = append(bracket, j)
			next = next.Add(d)
		}
		flips = append(flips, bracket...)
	}
	return flips
}

// IsLegalMove reports whether color may place a disc at c, ignoring whose turn
// it is.
func (b *Board) IsLegalMove(c Coordinate, color PlayerColor) bool {
	return len(b.captures(c, color)) > 0
}

// LegalMoves lists every legal placement for color in canonical order.
func (b *Board) LegalMoves(color PlayerColor) []Coordinate {
	var moves []Coordinate
	for _, c := range b.topology.Coordinates() {
		if b.IsLegalMove(c, color) {
			moves = append(moves, c)
		}
	}
	return moves
}

func (b *Board) hasLegalMove(color PlayerColor) bool {
	for _, c := range b.topology.Coordinates() {
		if b.IsLegalMove(c, color) {
			return true
		}
	}
	return false
}

// CaptureCount is the number of discs color would flip by placing at c, or 0
// if the placement is not legal.
func (b *Board) CaptureCount(c Coordinate, color PlayerColor) int {
	return len(b.captures(c, color))
}

// Preview computes the move color would make at c without applying it.
func (b *Board) Preview(c Coordinate, color PlayerColor) (Move, error) {
	if !b.topology.Contains(c) {
		return Move{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	flips := b.captures(c, color)
	if len(flips) == 0 {
		return Move{}, fmt.Errorf("%w: %s cannot place at %s", ErrIllegalMove, color, c)
	}

	m := Move{Coordinate: c, Color: color, Flips: make([]Coordinate, len(flips))}
	for k, i := range flips {
		m.Flips[k] = b.tiles[i].coordinate
	}
	return m, nil
}

// Move places a disc for color at c and flips every bracketed opponent disc.
// On error the board is unchanged.
func (b *Board) Move(c Coordinate, color PlayerColor) error {
	if b.gameOver {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if color != b.turn {
		return fmt.Errorf("%w: %s tried to move on %s's turn", ErrNotYourTurn, color, b.turn)
	}
	i, ok := b.topology.Index(c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	flips := b.captures(c, color)
	if len(flips) == 0 {
		return fmt.Errorf("%w: %s cannot place at %s", ErrIllegalMove, color, c)
	}

	b.tiles[i].place(color)
	for _, j := range flips {
		b.tiles[j].disc = color
	}
	b.turn = color.Opposite()
	b.passes = 0
	b.updateGameOver()
	return nil
}

// Pass gives up color's turn. Passing is only allowed without a legal move,
// which also holds for both colors once the game is over.
func (b *Board) Pass(color PlayerColor) error {
	if color != b.turn {
		return fmt.Errorf("%w: %s tried to pass on %s's turn", ErrNotYourTurn, color, b.turn)
	}
	if b.hasLegalMove(color) {
		return fmt.Errorf("%w: %s has a legal move and cannot pass", ErrIllegalMove, color)
	}

	b.turn = color.Opposite()
	b.passes++
	b.updateGameOver()
	return nil
}

func (b *Board) updateGameOver() {
	b.gameOver = b.passes >= 2 || (!b.hasLegalMove(Black) && !b.hasLegalMove(White))
}

// Copy returns an independent snapshot of the board.
func (b *Board) Copy() *Board {
	return b.Fork(b.turn)
}

// Fork returns an independent snapshot of the board with turn as the color to
// act, for simulations evaluating a color that is not on move.
func (b *Board) Fork(turn PlayerColor) *Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)

	return &Board{
		topology: b.topology, // Immutable
		tiles:    tiles,
		turn:     turn,
		passes:   b.passes,
		gameOver: b.gameOver,
	}
}

// Score returns the number of discs of the given color.
func (b *Board) Score(color PlayerColor) int {
	score := 0
	for _, t := range b.tiles {
		if t.occupied && t.disc == color {
			score++
		}
	}
	return score
}

// Winner returns the color with more discs once the game is over. It returns
// false while the game is running or when it ended in a draw.
func (b *Board) Winner() (PlayerColor, bool) {
	if !b.gameOver {
		return Black, false
	}
	black, white := b.Score(Black), b.Score(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Black, false
	}
}

// String draws the board one row per line, X for black, O for white and . for
// empty tiles. Hexagonal rows are indented to line up their diagonals.
func (b *Board) String() string {
	var sb strings.Builder
	row, first := 0, true
	for _, t := range b.tiles {
		c := t.coordinate
		if first || c.Y != row {
			if !first {
				sb.WriteByte('\n')
			}
			if b.topology.Kind() == HexKind {
				sb.WriteString(strings.Repeat(" ", abs(c.Y)))
			}
			row, first = c.Y, false
		} else {
			sb.WriteByte(' ')
		}
		if t.occupied {
			sb.WriteByte(t.disc.symbol())
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
