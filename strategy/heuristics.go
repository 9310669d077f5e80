package strategy

import (
	"reversi/game"
	"reversi/utils"

	"golang.org/x/exp/slices"
)

// MaxCapture prefers the moves that flip the most discs.
type MaxCapture struct{}

func (MaxCapture) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	moves := legalCandidates(model, color, candidates)

	var best []game.Coordinate
	bestScore := -1
	for _, c := range moves {
		score := model.CaptureCount(c, color)
		switch {
		case score > bestScore:
			bestScore = score
			best = []game.Coordinate{c}
		case score == bestScore:
			best = append(best, c)
		}
	}
	return best
}

// Corner prefers corner moves and keeps every candidate when none is a corner.
type Corner struct{}

func (Corner) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	moves := legalCandidates(model, color, candidates)
	corners := model.Topology().Corners()

	best := utils.Filter(moves, func(c game.Coordinate) bool {
		return slices.Contains(corners, c)
	})
	if len(best) == 0 {
		return moves
	}
	return best
}

// AvoidCornerAdjacent drops moves next to an empty corner, which would let the
// opponent take that corner. When every move is next to one, all are kept.
type AvoidCornerAdjacent struct{}

func (AvoidCornerAdjacent) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	moves := legalCandidates(model, color, candidates)
	risky := openCornerNeighbors(model)

	safe := utils.Filter(moves, func(c game.Coordinate) bool {
		return !risky[c]
	})
	if len(safe) == 0 {
		return moves
	}
	return safe
}

func openCornerNeighbors(model Model) map[game.Coordinate]bool {
	topology := model.Topology()
	risky := make(map[game.Coordinate]bool)
	for _, corner := range topology.Corners() {
		tile, err := model.TileAt(corner)
		if err != nil || !tile.IsEmpty() {
			continue
		}
		for _, n := range topology.Neighbors(corner) {
			risky[n] = true
		}
	}
	return risky
}

// UpperLeft keeps only the first candidate in canonical order. It always
// narrows to a single move and ends a chain.
type UpperLeft struct{}

func (UpperLeft) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	moves := legalCandidates(model, color, candidates)
	if len(moves) == 0 {
		return nil
	}
	return moves[:1]
}

// AnyMove ranks nothing and returns every legal candidate.
type AnyMove struct{}

func (AnyMove) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	return legalCandidates(model, color, candidates)
}
