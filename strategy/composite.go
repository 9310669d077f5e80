package strategy

import "reversi/game"

// Composite asks the primary strategy first and lets the fallback break the
// ties it leaves.
type Composite struct {
	Primary  Strategy
	Fallback Strategy
}

func NewComposite(primary, fallback Strategy) Composite {
	if primary == nil || fallback == nil {
		panic("composite strategy needs a primary and a fallback")
	}
	return Composite{Primary: primary, Fallback: fallback}
}

func (s Composite) ChooseMove(model Model, color game.PlayerColor, candidates []game.Coordinate) []game.Coordinate {
	best := s.Primary.ChooseMove(model, color, candidates)
	if len(best) <= 1 {
		return best
	}
	return s.Fallback.ChooseMove(model, color, best)
}

// Chain composes strategies so that each one only re-ranks the ties left by
// the one before it.
func Chain(strategies ...Strategy) Strategy {
	if len(strategies) == 0 {
		panic("chain needs at least one strategy")
	}
	s := strategies[len(strategies)-1]
	for i := len(strategies) - 2; i >= 0; i-- {
		s = NewComposite(strategies[i], s)
	}
	return s
}
