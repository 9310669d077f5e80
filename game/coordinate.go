package game

import "fmt"

// Coordinate identifies a tile. Square boards use X as the column and Y as the
// row; hexagonal boards use axial coordinates with X as q and Y as r.
type Coordinate struct {
	X int
	Y int
}

// Add steps the coordinate by a direction vector.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Scale multiplies both axes by n.
func (c Coordinate) Scale(n int) Coordinate {
	return Coordinate{X: c.X * n, Y: c.Y * n}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Cube is the cube encoding of a hexagonal position, where Q+R+S == 0.
type Cube struct {
	Q int
	R int
	S int
}

// ToCube converts an axial coordinate to cube form.
func ToCube(c Coordinate) Cube {
	return Cube{Q: c.X, R: c.Y, S: -c.X - c.Y}
}

// Coordinate converts the cube position back to axial form. It fails for cubes
// that do not satisfy Q+R+S == 0, since those have no axial equivalent.
func (c Cube) Coordinate() (Coordinate, error) {
	if c.Q+c.R+c.S != 0 {
		return Coordinate{}, fmt.Errorf("%w: cube %+v does not sum to zero", ErrOutOfBounds, c)
	}
	return Coordinate{X: c.Q, Y: c.R}, nil
}

// Distance is the number of hex steps between the cube and the origin.
func (c Cube) Distance() int {
	return max(abs(c.Q), abs(c.R), abs(c.S))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
