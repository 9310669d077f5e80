package game

import "fmt"

// Kind names the adjacency model of a board.
type Kind int

const (
	SquareKind Kind = iota
	HexKind
)

func (k Kind) String() string {
	switch k {
	case SquareKind:
		return "square"
	case HexKind:
		return "hex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	minSquareSize = 4
	maxSquareSize = 26
	minHexLayers  = 3
	maxHexLayers  = 13
)

// Topology describes the fixed shape of a board: which coordinates exist,
// their canonical order, and the unit steps between neighbors. Slices returned
// by a Topology are shared and must not be modified.
type Topology interface {
	Kind() Kind
	// Size is the side length for square boards and the number of layers,
	// centre included, for hexagonal boards.
	Size() int
	Directions() []Coordinate
	// Coordinates lists every coordinate of the grid in canonical order.
	Coordinates() []Coordinate
	Contains(c Coordinate) bool
	// Index is the position of c in canonical order.
	Index(c Coordinate) (int, bool)
	CoordinateAt(index int) (Coordinate, error)
	Corners() []Coordinate
	Neighbors(c Coordinate) []Coordinate
	StartingDiscs() map[Coordinate]PlayerColor
}

// grid is the shared implementation behind both topologies. Everything is
// computed once at construction.
type grid struct {
	kind       Kind
	size       int
	directions []Coordinate
	coords     []Coordinate
	index      map[Coordinate]int
	corners    []Coordinate
	start      map[Coordinate]PlayerColor
}

var squareDirections = []Coordinate{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// hexDirections are the six axial neighbor offsets, in rotational order.
var hexDirections = []Coordinate{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// Square returns the topology of a size x size board with king-move adjacency.
func Square(size int) (Topology, error) {
	if size < minSquareSize || size > maxSquareSize || size%2 != 0 {
		return nil, fmt.Errorf("%w: square boards must be even and between %d and %d, got %d",
			ErrBoardSize, minSquareSize, maxSquareSize, size)
	}

	g := &grid{
		kind:       SquareKind,
		size:       size,
		directions: squareDirections,
	}
	// Row-major: top row first, left to right
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.coords = append(g.coords, Coordinate{X: x, Y: y})
		}
	}
	last := size - 1
	g.corners = []Coordinate{{0, 0}, {last, 0}, {0, last}, {last, last}}

	mid := size / 2
	g.start = map[Coordinate]PlayerColor{
		{mid - 1, mid - 1}: Black,
		{mid, mid}:         Black,
		{mid, mid - 1}:     White,
		{mid - 1, mid}:     White,
	}
	g.buildIndex()
	return g, nil
}

// Hex returns the topology of a hexagonal board with the given number of
// layers around and including the centre tile.
func Hex(layers int) (Topology, error) {
	if layers < minHexLayers || layers > maxHexLayers {
		return nil, fmt.Errorf("%w: hex boards must have between %d and %d layers, got %d",
			ErrBoardSize, minHexLayers, maxHexLayers, layers)
	}

	radius := layers - 1
	g := &grid{
		kind:       HexKind,
		size:       layers,
		directions: hexDirections,
	}
	// Row-major over axial rows: r from top to bottom, then q left to right
	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			c := Coordinate{X: q, Y: r}
			if ToCube(c).Distance() <= radius {
				g.coords = append(g.coords, c)
			}
		}
	}
	for _, d := range hexDirections {
		g.corners = append(g.corners, d.Scale(radius))
	}

	// The centre stays empty; its ring alternates colors
	g.start = make(map[Coordinate]PlayerColor, len(hexDirections))
	for i, d := range hexDirections {
		g.start[d] = Colors[i%2]
	}
	g.buildIndex()
	return g, nil
}

func (g *grid) buildIndex() {
	g.index = make(map[Coordinate]int, len(g.coords))
	for i, c := range g.coords {
		g.index[c] = i
	}
}

func (g *grid) Kind() Kind                { return g.kind }
func (g *grid) Size() int                 { return g.size }
func (g *grid) Directions() []Coordinate  { return g.directions }
func (g *grid) Coordinates() []Coordinate { return g.coords }
func (g *grid) Corners() []Coordinate     { return g.corners }

func (g *grid) Contains(c Coordinate) bool {
	_, ok := g.index[c]
	return ok
}

func (g *grid) Index(c Coordinate) (int, bool) {
	i, ok := g.index[c]
	return i, ok
}

func (g *grid) CoordinateAt(index int) (Coordinate, error) {
	if index < 0 || index >= len(g.coords) {
		return Coordinate{}, fmt.Errorf("%w: index %d of %d tiles", ErrOutOfBounds, index, len(g.coords))
	}
	return g.coords[index], nil
}

// Neighbors returns the in-bounds coordinates one step away from c.
func (g *grid) Neighbors(c Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, len(g.directions))
	for _, d := range g.directions {
		if n := c.Add(d); g.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (g *grid) StartingDiscs() map[Coordinate]PlayerColor {
	start := make(map[Coordinate]PlayerColor, len(g.start))
	for c, color := range g.start {
		start[c] = color
	}
	return start
}

func (g *grid) String() string {
	return fmt.Sprintf("%s(%d)", g.kind, g.size)
}
