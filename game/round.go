package game

import "fmt"

// Seat is a player's position in a two-player match. Seat 0 is the first
// mover for bookkeeping only: both seats choose simultaneously.
type Seat int

const (
	Seat0 Seat = 0
	Seat1 Seat = 1
)

// Opponent returns the other seat. Any seat outside {0,1} is a programming
// error.
func (s Seat) Opponent() Seat {
	switch s {
	case Seat0:
		return Seat1
	case Seat1:
		return Seat0
	default:
		panic(fmt.Sprintf("invalid seat %d", s))
	}
}

// Round holds the two moves of one completed round, indexed by seat. Rounds
// are immutable once constructed.
type Round struct {
	moves [2]Move
}

// NewRound builds a round from the seat-0 and seat-1 moves.
func NewRound(m0, m1 Move) Round {
	return Round{moves: [2]Move{m0, m1}}
}

// MoveFor returns the move the given seat made in this round.
func (r Round) MoveFor(s Seat) Move {
	if s != Seat0 && s != Seat1 {
		panic(fmt.Sprintf("invalid seat %d", s))
	}
	return r.moves[s]
}

// History is the chronological sequence of completed rounds in a match. The
// engine owns it and appends one round at a time; strategies only read it.
type History []Round

func (h History) Empty() bool {
	return len(h) == 0
}

// Last returns the most recent round. Calling Last on an empty history is a
// programming error.
func (h History) Last() Round {
	if len(h) == 0 {
		panic("no rounds played yet")
	}
	return h[len(h)-1]
}
