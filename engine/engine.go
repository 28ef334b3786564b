package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"rps/game"
	"rps/strategy"
)

// Engine runs a single match between two strategies and scores it. The
// engine owns the history for the duration of the match; strategies see it
// read-only and never see the current round's moves.
type Engine struct {
	strategies [2]strategy.Strategy
	history    game.History
}

// New builds an engine for one match. Both strategies must be non-nil.
func New(seat0, seat1 strategy.Strategy) (*Engine, error) {
	if seat0 == nil || seat1 == nil {
		return nil, fmt.Errorf("engine: need two strategies")
	}
	return &Engine{strategies: [2]strategy.Strategy{seat0, seat1}}, nil
}

// Play runs the given number of rounds and returns one outcome per round in
// play order. Each round queries seat 0 then seat 1 with the identical
// pre-round history snapshot (the round is simultaneous, not sequential
// reveal), then appends the completed round. A strategy error aborts the
// match; no call is ever retried.
func (e *Engine) Play(rounds int) (game.Outcomes, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("engine: negative round count %d", rounds)
	}

	log.Info().Msgf("starting match: %s vs %s over %d rounds",
		e.strategies[0].Name(), e.strategies[1].Name(), rounds)

	e.history = make(game.History, 0, rounds)
	for i := 0; i < rounds; i++ {
		snapshot := e.history

		m0, err := e.strategies[0].NextMove(snapshot, game.Seat0)
		if err != nil {
			return nil, fmt.Errorf("engine: seat 0 (%s) on round %d: %w",
				e.strategies[0].Name(), i, err)
		}
		m1, err := e.strategies[1].NextMove(snapshot, game.Seat1)
		if err != nil {
			return nil, fmt.Errorf("engine: seat 1 (%s) on round %d: %w",
				e.strategies[1].Name(), i, err)
		}

		e.history = append(e.history, game.NewRound(m0, m1))
	}

	outcomes := game.ScoreHistory(e.history)

	log.Info().Msgf("completed match: %s %d wins, %s %d wins, %d ties",
		e.strategies[0].Name(), outcomes.Wins(game.Seat0),
		e.strategies[1].Name(), outcomes.Wins(game.Seat1), outcomes.Ties())

	return outcomes, nil
}

// Play is a convenience wrapper running a single match end to end.
func Play(seat0, seat1 strategy.Strategy, rounds int) (game.Outcomes, error) {
	e, err := New(seat0, seat1)
	if err != nil {
		return nil, err
	}
	return e.Play(rounds)
}
