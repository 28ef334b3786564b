package strategy

import "rps/game"

// Strategy decides the next move for one seat of a match.
//
// NextMove is called exactly once per round per seat with the history as
// accumulated immediately before that round; the current round's moves are
// never visible to it. Implementations may keep private state (a random
// generator, counters) but must not mutate the history.
type Strategy interface {
	Name() string
	NextMove(history game.History, seat game.Seat) (game.Move, error)
}

// base carries the display name shared by the built-in strategies. The name
// is reporting metadata only; the engine never branches on it.
type base struct {
	name string
}

func (b *base) Name() string {
	return b.name
}

func (b *base) SetName(name string) {
	b.name = name
}
