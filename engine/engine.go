package engine

import "reversi/experiments/metrics"

// Outcomes reported as the winner of a game besides the colors themselves.
const (
	Draw       = "draw"
	Unfinished = "unfinished"
)

type Engine interface {
	// Run plays the game until it is over or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
