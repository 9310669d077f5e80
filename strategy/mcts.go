package strategy

import (
	"math"
	"reversi/game"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type MCTSOption func(m *MCTS)

// WithEpisodes runs a fixed number of episodes per decision.
func WithEpisodes(episodes int) MCTSOption {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
			m.duration = 0
		}
	}
}

// WithDuration searches for a fixed time per decision instead.
func WithDuration(duration time.Duration) MCTSOption {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
			m.episodes = 0
		}
	}
}

// WithCutoff stops rollouts after depth plies and scores them by disc lead.
func WithCutoff(depth int) MCTSOption {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// MCTS prefers the moves most visited by a tree-parallel Monte Carlo tree
// search with random rollouts.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	seed       uint64
}

func NewMCTS(goroutines int, options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		episodes:   200,
		cutoff:     math.MaxInt,
		seed:       1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MCTS) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	moves := legalCandidates(model, color, candidates)
	if len(moves) <= 1 {
		return moves
	}

	board := model.Fork(color)
	root := &decision{mover: color.Opposite(), player: color, moves: moves}

	if m.episodes > 0 {
		m.iterate(root, board)
	} else {
		m.countdown(root, board)
	}

	return mostVisited(root)
}

func (m *MCTS) iterate(root *decision, board *game.Board) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.episode(root, board, rng)
			}
		}(rand.New(rand.NewSource(m.seed + uint64(i))))
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *decision, board *game.Board) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.episode(root, board, rng)
				}
			}
		}(rand.New(rand.NewSource(m.seed + uint64(i))))
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

// episode runs one select, expand, rollout and backup pass on a private copy
// of board.
func (m *MCTS) episode(root *decision, board *game.Board, rng *rand.Rand) {
	sim := board.Copy()

	node, err := selectThenExpand(root, sim)
	if err == nil {
		var winner game.PlayerColor
		var decided bool
		winner, decided, err = rollout(sim, m.cutoff, rng)
		if err == nil {
			backup(node, winner, decided)
			return
		}
	}
	// Paths of a failed episode keep their virtual loss
	log.Warn().Err(err).Msg("mcts: discarding episode")
}

func selectThenExpand(root *decision, board *game.Board) (*decision, error) {
	node := root
	for {
		child, expanded, err := node.selectOrExpand(board)
		if err != nil {
			return nil, err
		}
		if expanded || child == node {
			return child, nil
		}
		node = child
	}
}

// rollout plays random moves until the game ends or cutoff plies were made.
// It reports false when neither color leads.
func rollout(board *game.Board, cutoff int, rng *rand.Rand) (game.PlayerColor, bool, error) {
	for depth := 0; !board.GameOver() && depth < cutoff; depth++ {
		color := board.Turn()
		moves := board.LegalMoves(color)
		var err error
		if len(moves) == 0 {
			err = board.Pass(color)
		} else {
			err = board.Move(moves[rng.Intn(len(moves))], color) // Random rollout policy
		}
		if err != nil {
			return game.Black, false, err
		}
	}

	black, white := board.Score(game.Black), board.Score(game.White)
	switch {
	case black > white:
		return game.Black, true, nil
	case white > black:
		return game.White, true, nil
	default:
		return game.Black, false, nil
	}
}

func backup(node *decision, winner game.PlayerColor, decided bool) {
	for node != nil {
		node = node.backup(winner, decided)
	}
}

// mostVisited returns the root moves with the highest visit count, in
// canonical order.
func mostVisited(root *decision) []game.Coordinate {
	best := -1
	var moves []game.Coordinate
	for i, child := range root.children {
		switch v := child.Visits(); {
		case v > best:
			best = v
			moves = []game.Coordinate{root.moves[i]}
		case v == best:
			moves = append(moves, root.moves[i])
		}
	}
	if len(moves) == 0 {
		return root.moves
	}
	return moves
}
