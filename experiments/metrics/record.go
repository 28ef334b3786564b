package metrics

import "time"

// MatchRecord captures one finished match for later analysis.
type MatchRecord struct {
	ID        int
	Run       string // Experiment run ID
	Seat0     string
	Seat1     string
	Rounds    int
	Seat0Wins int
	Seat1Wins int
	Ties      int
	Winner    string // "" when the match is tied
	Duration  time.Duration
}
