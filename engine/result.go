package engine

import (
	"fmt"

	"rps/game"
)

// Result summarizes a finished match for reporting. It only needs the
// outcome sequence and the strategies' display names.
type Result struct {
	Seat0    string
	Seat1    string
	Outcomes game.Outcomes
}

func NewResult(seat0, seat1 string, outcomes game.Outcomes) Result {
	return Result{Seat0: seat0, Seat1: seat1, Outcomes: outcomes}
}

// Winner returns the name of the strategy with more round wins, or "" when
// the match is tied.
func (r Result) Winner() string {
	wins0 := r.Outcomes.Wins(game.Seat0)
	wins1 := r.Outcomes.Wins(game.Seat1)
	switch {
	case wins0 > wins1:
		return r.Seat0
	case wins1 > wins0:
		return r.Seat1
	default:
		return ""
	}
}

// Summary renders the match verdict as a one-line message.
func (r Result) Summary() string {
	if winner := r.Winner(); winner != "" {
		return fmt.Sprintf("Player %s wins!", winner)
	}
	return "It was a tie!"
}
