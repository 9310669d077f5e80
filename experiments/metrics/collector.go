package metrics

import (
	"reversi/game"
	"time"
)

type MoveMetric struct {
	Step       int
	Player     game.PlayerColor
	Duration   time.Duration // Time the agent spent choosing
	Candidates int           // Legal moves available to the player
	Passed     bool
}

type GameMetric struct {
	StartingPlayer game.PlayerColor
	Winner         string // black, white, draw or unfinished
	BlackScore     int
	WhiteScore     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// Collector times a single decision of an agent.
type Collector interface {
	Start(step int, player game.PlayerColor, candidates int)
	Complete(passed bool) MoveMetric
}

type collector struct {
	step       int
	player     game.PlayerColor
	candidates int
	startTime  time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(step int, player game.PlayerColor, candidates int) {
	m.startTime = time.Now()
	m.step = step
	m.player = player
	m.candidates = candidates
}

func (m *collector) Complete(passed bool) MoveMetric {
	return MoveMetric{
		Step:       m.step,
		Player:     m.player,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		Passed:     passed,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(step int, player game.PlayerColor, candidates int) {}
func (m *dummyCollector) Complete(passed bool) MoveMetric                         { return MoveMetric{} }
