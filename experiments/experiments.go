package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rps/engine"
	"rps/experiments/metrics"
	"rps/game"
	"rps/strategy"
)

const (
	NumMatches = 30 // Per matchup
	NumRounds  = 1000
	ResultsDir = "results"
)

// RunStrategyComparison pits every built-in strategy against the others and
// records per-match results plus per-matchup aggregates.
func RunStrategyComparison() {
	matchups := [][2]strategy.Strategy{
		{strategy.NewTitForTat("t4t"), strategy.NewRandom("random")},
		{strategy.NewCounter("counter"), strategy.NewRandom("random")},
		{strategy.NewCounter("counter"), strategy.NewTitForTat("t4t")},
		{strategy.NewTitForTat("t4t-a"), strategy.NewTitForTat("t4t-b")},
	}

	runExperiment("strategy_comparison", matchups)
}

func runExperiment(name string, matchups [][2]strategy.Strategy) {
	run := uuid.NewString()

	log.Info().Msgf("starting %s experiment (run %s)...", name, run)

	count := 0
	matchRecords := []metrics.MatchRecord{}
	summaries := []metrics.MatchupSummary{}

	for mi, matchup := range matchups {
		seat0, seat1 := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between %s and %s...",
			mi+1, len(matchups), seat0.Name(), seat1.Name())

		matchOutcomes := make([]game.Outcomes, 0, NumMatches)
		for i := 0; i < NumMatches; i++ {
			start := time.Now()
			outcomes, err := engine.Play(seat0, seat1, NumRounds)
			if err != nil {
				panic(fmt.Sprintf("failed to run match: %v", err))
			}

			count++
			result := engine.NewResult(seat0.Name(), seat1.Name(), outcomes)
			matchRecords = append(matchRecords, metrics.MatchRecord{
				ID:        count,
				Run:       run,
				Seat0:     seat0.Name(),
				Seat1:     seat1.Name(),
				Rounds:    len(outcomes),
				Seat0Wins: outcomes.Wins(game.Seat0),
				Seat1Wins: outcomes.Wins(game.Seat1),
				Ties:      outcomes.Ties(),
				Winner:    result.Winner(),
				Duration:  time.Since(start),
			})
			matchOutcomes = append(matchOutcomes, outcomes)
		}

		summaries = append(summaries, metrics.Summarize(seat0.Name(), seat1.Name(), matchOutcomes))

		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchups))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment results
	writer, err := metrics.NewWriter(ResultsDir, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteMatchRecords(matchRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write match records: %v", err))
	}
	log.Info().Msg("stored match records")

	err = writer.WriteSummaries(summaries)
	if err != nil {
		panic(fmt.Sprintf("failed to write matchup summaries: %v", err))
	}
	log.Info().Msg("stored matchup summaries")
}
