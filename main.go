package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rps/engine"
	"rps/experiments"
	"rps/strategy"
)

func main() {
	rounds := flag.Int("rounds", 100, "Number of rounds per match")
	experiment := flag.Bool("experiment", false, "Run the strategy comparison experiment instead of a single match")
	verbose := flag.Bool("verbose", false, "Log match progress")
	flag.Parse()

	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if *experiment {
		experiments.RunStrategyComparison()
		return
	}

	runDemoMatch(*rounds)
}

// runDemoMatch plays TitForTat against Random, prints each round's outcome
// and declares the winner by round wins.
func runDemoMatch(rounds int) {
	seat0 := strategy.NewTitForTat("t4t")
	seat1 := strategy.NewRandom("random")

	outcomes, err := engine.Play(seat0, seat1, rounds)
	if err != nil {
		log.Error().Err(err).Msg("match failed")
		os.Exit(1)
	}

	for _, outcome := range outcomes {
		fmt.Println(int(outcome))
	}

	result := engine.NewResult(seat0.Name(), seat1.Name(), outcomes)
	fmt.Println(result.Summary())
}
