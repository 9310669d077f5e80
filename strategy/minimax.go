package strategy

import (
	"math"
	"reversi/game"
	"sync"

	"github.com/rs/zerolog/log"
)

// Evaluation scores a simulated board from the opponent's point of view after
// its reply. Lower values are better for the player searching.
type Evaluation func(board *game.Board, opponent game.PlayerColor) int

// DiscDifferential is the opponent's disc lead.
func DiscDifferential(board *game.Board, opponent game.PlayerColor) int {
	return board.Score(opponent) - board.Score(opponent.Opposite())
}

// Mobility is the number of moves the opponent could make next.
func Mobility(board *game.Board, opponent game.PlayerColor) int {
	return len(board.LegalMoves(opponent))
}

// OpponentDiscs is the opponent's disc count.
func OpponentDiscs(board *game.Board, opponent game.PlayerColor) int {
	return board.Score(opponent)
}

type Option func(m *Minimax)

// WithDepth sets how many own moves are looked ahead. Each level plays one
// own move and the opponent's reply.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithFallback sets the strategy breaking ties between equally valued moves.
// A nil fallback returns every tied move.
func WithFallback(fallback Strategy) Option {
	return func(m *Minimax) {
		m.fallback = fallback
	}
}

func WithEvaluation(evaluate Evaluation) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithGoroutines evaluates top-level candidates in parallel, each on its own
// board copy.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// Minimax picks the moves that leave the opponent worst off, assuming the
// opponent answers the way its model strategy would.
type Minimax struct {
	opponent   Strategy
	fallback   Strategy
	evaluate   Evaluation
	depth      int
	goroutines int
}

func NewMinimax(opponent Strategy, options ...Option) *Minimax {
	if opponent == nil {
		panic("minimax needs an opponent model")
	}
	m := &Minimax{ // Default values
		opponent:   opponent,
		fallback:   UpperLeft{},
		evaluate:   DiscDifferential,
		depth:      1,
		goroutines: 1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	return m.choose(model, color, candidates, m.depth)
}

type outcome struct {
	value int
	ok    bool
}

func (m *Minimax) choose(model Model, color game.PlayerColor, candidates []game.Coordinate, depth int) []game.Coordinate {
	moves := legalCandidates(model, color, candidates)
	if len(moves) <= 1 {
		return moves
	}

	var outcomes []outcome
	if m.goroutines > 1 && depth == m.depth {
		outcomes = m.evaluateParallel(model, color, moves, depth)
	} else {
		outcomes = make([]outcome, len(moves))
		for i, c := range moves {
			outcomes[i] = m.evaluateMove(model, color, c, depth)
		}
	}

	best := math.MaxInt
	var tied []game.Coordinate
	for i, o := range outcomes {
		switch {
		case !o.ok:
			continue
		case o.value < best:
			best = o.value
			tied = []game.Coordinate{moves[i]}
		case o.value == best:
			tied = append(tied, moves[i])
		}
	}
	if len(tied) == 0 {
		log.Warn().Msgf("every simulated branch for %s failed, keeping all %d candidates", color, len(moves))
		tied = moves
	}

	if len(tied) > 1 && m.fallback != nil {
		return m.fallback.ChooseMove(model, color, tied)
	}
	return tied
}

func (m *Minimax) evaluateParallel(model Model, color game.PlayerColor, moves []game.Coordinate, depth int) []outcome {
	outcomes := make([]outcome, len(moves))
	tasks := make(chan int, len(moves))
	for i := range moves {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for task := range tasks {
				// Each task writes only its own slot
				outcomes[task] = m.evaluateMove(model, color, moves[task], depth)
			}
		}()
	}

	wg.Wait()
	return outcomes
}

// evaluateMove values color playing at c on a private fork of the model.
func (m *Minimax) evaluateMove(model Model, color game.PlayerColor, c game.Coordinate, depth int) outcome {
	sim := model.Fork(color)
	value, err := m.playLine(sim, color, c, depth)
	if err != nil {
		log.Warn().Err(err).Msgf("discarding simulated branch %s for %s", c, color)
		return outcome{}
	}
	log.Debug().Msgf("minimax: %s at %s is valued %d (depth %d)", color, c, value, depth)
	return outcome{value: value, ok: true}
}

// playLine plays color at c, then the opponent's reply, and continues with
// the next best own move until depth runs out.
func (m *Minimax) playLine(sim *game.Board, color game.PlayerColor, c game.Coordinate, depth int) (int, error) {
	if err := sim.Move(c, color); err != nil {
		return 0, err
	}

	opponent := color.Opposite()
	if replies := m.opponent.ChooseMove(sim, opponent, nil); len(replies) > 0 {
		if err := sim.Move(replies[0], opponent); err != nil {
			return 0, err
		}
	} else if err := sim.Pass(opponent); err != nil {
		return 0, err
	}

	if depth <= 1 || sim.GameOver() {
		return m.evaluate(sim, opponent), nil
	}
	next := m.choose(sim, color, nil, depth-1)
	if len(next) == 0 {
		return m.evaluate(sim, opponent), nil
	}
	return m.playLine(sim, color, next[0], depth-1)
}
