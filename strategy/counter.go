package strategy

import "rps/game"

// Counter tracks the opponent's move frequencies across the whole history
// and plays the move that beats the opponent's most common move. On the
// first round it plays randomly. Against a biased opponent it converges on
// the best response; against Random it is no better than random.
type Counter struct {
	base
	src moveSource
}

func NewCounter(name string, options ...Option) *Counter {
	s := &Counter{base: base{name: name}, src: newMoveSource()}
	for _, option := range options {
		option(&s.src)
	}
	return s
}

func (s *Counter) NextMove(history game.History, seat game.Seat) (game.Move, error) {
	if history.Empty() {
		return s.src.draw(), nil
	}

	opponent := seat.Opponent()
	var counts [len(game.Moves)]int
	for _, r := range history {
		counts[r.MoveFor(opponent)]++
	}

	most := game.Rock
	for _, m := range game.Moves[1:] {
		if counts[m] > counts[most] {
			most = m
		}
	}
	return most.Counter(), nil
}
