package game

import "fmt"

// Outcome is the result of a single round from seat 0's perspective:
// -1 seat 0 wins, 0 tie, 1 seat 1 wins.
type Outcome int

const (
	Seat0Wins Outcome = -1
	Tie       Outcome = 0
	Seat1Wins Outcome = 1
)

// scoreTable is total over all nine move pairs, skew-symmetric and zero on
// the diagonal. Fixed at initialization.
var scoreTable = [3][3]Outcome{
	Rock:     {Rock: Tie, Paper: Seat1Wins, Scissors: Seat0Wins},
	Paper:    {Rock: Seat0Wins, Paper: Tie, Scissors: Seat1Wins},
	Scissors: {Rock: Seat1Wins, Paper: Seat0Wins, Scissors: Tie},
}

// Score compares the seat-0 move m0 against the seat-1 move m1.
func Score(m0, m1 Move) Outcome {
	return scoreTable[m0][m1]
}

// ScoreHistory maps each round of a history to its outcome, preserving play
// order. An empty history yields an empty sequence.
func ScoreHistory(h History) Outcomes {
	outcomes := make(Outcomes, len(h))
	for i, r := range h {
		outcomes[i] = Score(r.MoveFor(Seat0), r.MoveFor(Seat1))
	}
	return outcomes
}

// Outcomes is a per-round outcome sequence in play order.
type Outcomes []Outcome

// Wins counts the rounds the given seat won.
func (os Outcomes) Wins(s Seat) int {
	var won Outcome
	switch s {
	case Seat0:
		won = Seat0Wins
	case Seat1:
		won = Seat1Wins
	default:
		panic(fmt.Sprintf("invalid seat %d", s))
	}
	count := 0
	for _, o := range os {
		if o == won {
			count++
		}
	}
	return count
}

// Ties counts the tied rounds.
func (os Outcomes) Ties() int {
	count := 0
	for _, o := range os {
		if o == Tie {
			count++
		}
	}
	return count
}
