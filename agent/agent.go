package agent

import (
	"reversi/game"
	"reversi/strategy"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the move to play for color, or false when color has
	// no legal move and must pass
	FindMove(board *game.Board, color game.PlayerColor) (game.Coordinate, bool)
}

type evaluationAgent struct {
	strategy strategy.Strategy
}

// NewEvaluationAgent returns an agent that always plays the first of the
// strategy's equally preferred moves.
func NewEvaluationAgent(s strategy.Strategy) Agent {
	return evaluationAgent{strategy: s}
}

func (a evaluationAgent) FindMove(board *game.Board, color game.PlayerColor) (game.Coordinate, bool) {
	moves := a.strategy.ChooseMove(board, color, nil)
	if len(moves) == 0 {
		return game.Coordinate{}, false
	}
	return moves[0], true
}

type trainingAgent struct {
	strategy strategy.Strategy
	rng      *rand.Rand
}

// NewTrainingAgent returns an agent that samples uniformly among the
// strategy's equally preferred moves, for varied self-play. It is not safe
// for concurrent use.
func NewTrainingAgent(s strategy.Strategy, seed uint64) Agent {
	return &trainingAgent{
		strategy: s,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(board *game.Board, color game.PlayerColor) (game.Coordinate, bool) {
	moves := a.strategy.ChooseMove(board, color, nil)
	if len(moves) == 0 {
		return game.Coordinate{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
