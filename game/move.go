package game

import "fmt"

// Move is one of the three plays available in a round.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every legal move in a fixed order.
var Moves = [...]Move{Rock, Paper, Scissors}

// counters maps each move to the move that beats it.
var counters = [...]Move{
	Rock:     Paper,
	Paper:    Scissors,
	Scissors: Rock,
}

// Counter returns the move that beats m.
func (m Move) Counter() Move {
	return counters[m]
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}
