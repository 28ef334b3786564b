package metrics

import (
	"gonum.org/v1/gonum/stat"

	"rps/game"
)

// MatchupSummary aggregates every round of every match between one pair of
// strategies. Rates are per round; MeanOutcome is the average outcome value
// (negative favors seat 0, positive seat 1).
type MatchupSummary struct {
	Seat0         string
	Seat1         string
	Matches       int
	Rounds        int
	Seat0WinRate  float64
	Seat1WinRate  float64
	TieRate       float64
	MeanOutcome   float64
	StdDevOutcome float64
}

// Summarize folds the per-match outcome sequences of one matchup into a
// single summary. Matches with zero rounds contribute nothing.
func Summarize(seat0, seat1 string, matches []game.Outcomes) MatchupSummary {
	s := MatchupSummary{Seat0: seat0, Seat1: seat1, Matches: len(matches)}

	var wins0, wins1, ties int
	var values []float64
	for _, outcomes := range matches {
		wins0 += outcomes.Wins(game.Seat0)
		wins1 += outcomes.Wins(game.Seat1)
		ties += outcomes.Ties()
		for _, o := range outcomes {
			values = append(values, float64(o))
		}
	}

	s.Rounds = len(values)
	if s.Rounds == 0 {
		return s
	}

	rounds := float64(s.Rounds)
	s.Seat0WinRate = float64(wins0) / rounds
	s.Seat1WinRate = float64(wins1) / rounds
	s.TieRate = float64(ties) / rounds
	s.MeanOutcome = stat.Mean(values, nil)
	s.StdDevOutcome = stat.StdDev(values, nil)
	return s
}
