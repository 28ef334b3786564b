package strategy

import (
	"fmt"

	"rps/game"
)

// TitForTat repeats the opponent's move from the previous round. On the
// first round, with no history to mirror, it plays randomly. It never looks
// further back than one round.
type TitForTat struct {
	base
	src moveSource
}

func NewTitForTat(name string, options ...Option) *TitForTat {
	s := &TitForTat{base: base{name: name}, src: newMoveSource()}
	for _, option := range options {
		option(&s.src)
	}
	return s
}

func (s *TitForTat) NextMove(history game.History, seat game.Seat) (game.Move, error) {
	if seat != game.Seat0 && seat != game.Seat1 {
		panic(fmt.Sprintf("invalid seat %d", seat))
	}

	if history.Empty() {
		return s.src.draw(), nil
	}
	return history.Last().MoveFor(seat.Opponent()), nil
}
