package strategy

import (
	"math"
	"reversi/game"
	"sync"
)

// Hyperparameters for MCTS

const cSquared = 2.0 // Exploration constant

const (
	win  = 1.0
	draw = 0.5
	loss = 0.0
)

// decision is a node of the search tree: the position after mover played
// into it, with player to act next.
type decision struct {
	sync.RWMutex
	parent   *decision
	mover    game.PlayerColor
	player   game.PlayerColor
	moves    []game.Coordinate
	pass     bool // player has no move and must pass
	children []*decision
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, mover game.PlayerColor, board *game.Board) *decision {
	d := &decision{
		parent: parent,
		mover:  mover,
		player: board.Turn(),
	}
	if !board.GameOver() {
		d.moves = board.LegalMoves(d.player)
		d.pass = len(d.moves) == 0
	}
	return d
}

// actions is the number of children the node can have.
func (d *decision) actions() int {
	if d.pass {
		return 1
	}
	return len(d.moves)
}

func (d *decision) play(board *game.Board, ith int) error {
	if d.pass {
		return board.Pass(d.player)
	}
	return board.Move(d.moves[ith], d.player)
}

// selectOrExpand descends one level, playing the chosen action on board. It
// reports whether the child was just added. A terminal node returns itself.
func (d *decision) selectOrExpand(board *game.Board) (*decision, bool, error) {
	d.Lock()
	defer d.Unlock()

	if d.actions() == 0 { // Terminal node
		return d, false, nil
	}

	if d.actions() > len(d.children) { // Expandable node
		if err := d.play(board, len(d.children)); err != nil {
			return nil, false, err
		}
		child := newDecision(d, d.player, board)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, true, nil
	}

	// Fully expanded node
	ith := d.pickChild()
	if err := d.play(board, ith); err != nil {
		return nil, false, err
	}
	child := d.children[ith]
	child.applyLoss()
	return child, false, nil
}

func (d *decision) pickChild() int {
	// Concurrent episodes may fully expand a node before any of them backs up
	normalizer := cSquared * math.Log(max(d.visits, 1))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := child.score(normalizer); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss counts an episode in flight as a loss so concurrent episodes
// spread over other children.
func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= loss
	d.visits--
}

func (d *decision) score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return d.rewards/d.visits + math.Sqrt(normalizer/d.visits)
}

// backup records the episode's outcome from the mover's point of view and
// returns the parent.
func (d *decision) backup(winner game.PlayerColor, decided bool) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	switch {
	case !decided:
		d.rewards += draw
	case winner == d.mover:
		d.rewards += win
	default:
		d.rewards += loss
	}
	d.visits++

	return d.parent
}

func (d *decision) Visits() int {
	d.RLock()
	defer d.RUnlock()

	return int(d.visits)
}
