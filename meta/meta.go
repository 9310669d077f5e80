// meta/meta.go
package meta

// SQUARE_SIZE is the default side length of a square board.
const SQUARE_SIZE = 8

// HEX_LAYERS is the default number of layers of a hexagonal board, centre included.
const HEX_LAYERS = 6

// GO_ROUTINES defines the number of goroutines a parallel minimax uses.
const GO_ROUTINES = 8

// MINIMAX_DEPTH defines how many own moves minimax looks ahead.
const MINIMAX_DEPTH = 2

// GAMES defines the number of games per matchup.
const GAMES = 10

// MAX_TURNS caps the length of a game, passes included.
const MAX_TURNS = 300
