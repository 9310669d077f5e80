package strategy

import (
	"math"
	"reversi/game"

	"golang.org/x/exp/slices"
)

// Model is the view of a board a strategy plays against. Strategies rely on
// the model for every legality question and never inspect raw tiles to decide
// whether a move is legal.
type Model interface {
	Topology() game.Topology
	Turn() game.PlayerColor
	TileAt(c game.Coordinate) (game.Tile, error)
	IsLegalMove(c game.Coordinate, color game.PlayerColor) bool
	LegalMoves(color game.PlayerColor) []game.Coordinate
	CaptureCount(c game.Coordinate, color game.PlayerColor) int
	// Fork returns an independent board for simulation.
	Fork(turn game.PlayerColor) *game.Board
}

// Strategy picks the moves it considers equally best for color, in the
// board's canonical order. An empty candidates slice means every legal move
// is considered; otherwise only the given survivors are re-ranked. An empty
// result means color has no legal move and must pass.
type Strategy interface {
	ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate

func (f StrategyFunc) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	return f(model, color, candidates)
}

// legalCandidates narrows candidates to the legal ones, deduplicated and in
// canonical order.
func legalCandidates(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	if len(candidates) == 0 {
		return model.LegalMoves(color)
	}

	legal := make([]game.Coordinate, 0, len(candidates))
	for _, c := range candidates {
		if model.IsLegalMove(c, color) && !slices.Contains(legal, c) {
			legal = append(legal, c)
		}
	}

	topology := model.Topology()
	slices.SortStableFunc(legal, func(a, b game.Coordinate) int {
		return canonicalIndex(topology, a) - canonicalIndex(topology, b)
	})
	return legal
}

// canonicalIndex orders coordinates the topology does not know after all
// the ones it does.
func canonicalIndex(topology game.Topology, c game.Coordinate) int {
	if i, ok := topology.Index(c); ok {
		return i
	}
	return math.MaxInt32
}
