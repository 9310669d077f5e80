package game

// Move is a placement together with the discs it would flip. It is computed
// by Board.Preview and never applied by itself.
type Move struct {
	Coordinate Coordinate
	Color      PlayerColor
	Flips      []Coordinate
}

// Captures is the number of opponent discs the move flips.
func (m Move) Captures() int {
	return len(m.Flips)
}

// Tile is a snapshot of one board position.
type Tile struct {
	coordinate Coordinate
	disc       PlayerColor
	occupied   bool
}

func (t Tile) Coordinate() Coordinate {
	return t.coordinate
}

// Disc returns the color of the disc on the tile, if there is one.
func (t Tile) Disc() (PlayerColor, bool) {
	return t.disc, t.occupied
}

func (t Tile) IsEmpty() bool {
	return !t.occupied
}

func (t *Tile) place(color PlayerColor) {
	t.disc = color
	t.occupied = true
}
