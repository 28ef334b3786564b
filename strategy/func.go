package strategy

import (
	"errors"
	"fmt"

	"rps/game"
)

// ErrNoDecideFunc reports a Func strategy constructed without a decision
// procedure.
var ErrNoDecideFunc = errors.New("decision procedure missing")

// DecideFunc is a caller-supplied decision procedure. It receives the same
// arguments under the same contract as Strategy.NextMove.
type DecideFunc func(history game.History, seat game.Seat) (game.Move, error)

// Func adapts a caller-supplied decision procedure into a Strategy, for
// strategies defined outside this package without a dedicated type.
type Func struct {
	base
	decide DecideFunc
}

func NewFunc(name string, decide DecideFunc) *Func {
	return &Func{base: base{name: name}, decide: decide}
}

// NextMove delegates to the supplied decision procedure. A Func without one
// has no meaningful default move, so invoking it fails explicitly.
func (s *Func) NextMove(history game.History, seat game.Seat) (game.Move, error) {
	if s.decide == nil {
		return 0, fmt.Errorf("strategy %q: %w", s.name, ErrNoDecideFunc)
	}
	return s.decide(history, seat)
}
