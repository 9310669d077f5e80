package engine

import (
	"fmt"
	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithMaxTurns stops the game after the given number of turns. Passes count
// as turns.
func WithMaxTurns(maxTurns int) Option {
	return func(e *localEngine) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

// WithMetrics times every decision of the agents.
func WithMetrics() Option {
	return func(e *localEngine) {
		e.collector = metrics.NewCollector()
	}
}

type localEngine struct {
	board     *game.Board
	agents    map[game.PlayerColor]agent.Agent
	maxTurns  int
	collector metrics.Collector
}

// LocalEngine plays black against white on board in this process. The board
// is played on directly, so callers can inspect it after Run.
func LocalEngine(board *game.Board, black, white agent.Agent, options ...Option) Engine {
	if board == nil {
		panic("engine needs a board")
	}
	if black == nil || white == nil {
		panic("engine needs an agent for each color")
	}

	e := &localEngine{
		board:     board,
		agents:    map[game.PlayerColor]agent.Agent{game.Black: black, game.White: white},
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.board.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting on %s", e.board.Turn(), e.board.Topology())

	turn := 1
	for !e.board.GameOver() && turn <= e.maxTurns {
		color := e.board.Turn()
		legal := e.board.LegalMoves(color)

		e.collector.Start(turn, color, len(legal))
		c, ok := e.agents[color].FindMove(e.board, color)
		passed := e.play(color, c, ok, legal)
		moveMetrics = append(moveMetrics, e.collector.Complete(passed))

		if passed {
			gameMetric.Passes++
		} else {
			gameMetric.TotalMoves++
		}
		turn++
	}

	winner := outcome(e.board)
	gameMetric.Winner = winner
	gameMetric.BlackScore = e.board.Score(game.Black)
	gameMetric.WhiteScore = e.board.Score(game.White)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if e.board.GameOver() {
		log.Info().Msgf("game over after %d turns: %s (black %d, white %d)",
			turn-1, winner, gameMetric.BlackScore, gameMetric.WhiteScore)
	} else {
		log.Info().Msgf("stopped after %d turns without a result", e.maxTurns)
	}

	return winner, gameMetric, moveMetrics
}

// play applies the agent's choice. An agent that picks an illegal move, or
// passes while it could move, gets the first legal move instead. It reports
// whether color passed.
func (e *localEngine) play(color game.PlayerColor, c game.Coordinate, ok bool, legal []game.Coordinate) bool {
	if ok {
		err := e.board.Move(c, color)
		if err == nil {
			log.Debug().Msgf("%s plays %s", color, c)
			return false
		}
		log.Warn().Err(err).Msgf("%s agent chose %s, falling back to the first legal move", color, c)
	}

	if len(legal) > 0 {
		if !ok {
			log.Warn().Msgf("%s agent passed with %d legal moves, falling back to the first", color, len(legal))
		}
		if err := e.board.Move(legal[0], color); err != nil {
			panic(fmt.Sprintf("first legal move %s was rejected: %v", legal[0], err))
		}
		log.Debug().Msgf("%s plays %s", color, legal[0])
		return false
	}

	if err := e.board.Pass(color); err != nil {
		panic(fmt.Sprintf("%s could not pass: %v", color, err))
	}
	log.Info().Msgf("%s has no legal move and passes", color)
	return true
}

func outcome(board *game.Board) string {
	if !board.GameOver() {
		return Unfinished
	}
	winner, ok := board.Winner()
	if !ok {
		return Draw
	}
	return winner.String()
}
