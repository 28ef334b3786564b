package strategy

import "rps/game"

// Random plays a uniformly random move every round, ignoring history and
// seat. It is the statistical baseline for the other strategies.
type Random struct {
	base
	src moveSource
}

func NewRandom(name string, options ...Option) *Random {
	s := &Random{base: base{name: name}, src: newMoveSource()}
	for _, option := range options {
		option(&s.src)
	}
	return s
}

func (s *Random) NextMove(_ game.History, _ game.Seat) (game.Move, error) {
	return s.src.draw(), nil
}
