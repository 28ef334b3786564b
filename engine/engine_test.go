package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rps/game"
	"rps/strategy"
)

func constant(name string, m game.Move) *strategy.Func {
	return strategy.NewFunc(name, func(game.History, game.Seat) (game.Move, error) {
		return m, nil
	})
}

// mirror plays first on an empty history, then the opponent's last move.
func mirror(name string, first game.Move) *strategy.Func {
	return strategy.NewFunc(name, func(history game.History, seat game.Seat) (game.Move, error) {
		if history.Empty() {
			return first, nil
		}
		return history.Last().MoveFor(seat.Opponent()), nil
	})
}

func TestNew(t *testing.T) {
	t.Run("rejects nil strategies", func(t *testing.T) {
		s := constant("rock", game.Rock)

		_, err := New(nil, s)
		require.Error(t, err, "seat 0 must be non-nil")

		_, err = New(s, nil)
		require.Error(t, err, "seat 1 must be non-nil")
	})
}

func TestPlay(t *testing.T) {
	t.Run("zero rounds yields empty outcomes without querying strategies", func(t *testing.T) {
		queried := false
		spy := strategy.NewFunc("spy", func(game.History, game.Seat) (game.Move, error) {
			queried = true
			return game.Rock, nil
		})

		outcomes, err := Play(spy, spy, 0)

		require.NoError(t, err)
		require.Empty(t, outcomes, "no rounds should produce no outcomes")
		require.False(t, queried, "no strategy should be queried for zero rounds")
	})

	t.Run("rejects a negative round count", func(t *testing.T) {
		_, err := Play(constant("a", game.Rock), constant("b", game.Rock), -1)

		require.Error(t, err, "negative round counts are rejected at the boundary")
	})

	t.Run("returns one outcome per round", func(t *testing.T) {
		outcomes, err := Play(constant("rock", game.Rock), constant("paper", game.Paper), 7)

		require.NoError(t, err)
		require.Len(t, outcomes, 7, "outcome sequence length should equal the round count")
		for _, o := range outcomes {
			require.Equal(t, game.Seat1Wins, o, "Paper beats Rock every round")
		}
	})

	t.Run("both seats see the identical pre-round history", func(t *testing.T) {
		var seen0, seen1 []int
		seat0 := strategy.NewFunc("s0", func(history game.History, seat game.Seat) (game.Move, error) {
			seen0 = append(seen0, len(history))
			return game.Rock, nil
		})
		seat1 := strategy.NewFunc("s1", func(history game.History, seat game.Seat) (game.Move, error) {
			seen1 = append(seen1, len(history))
			return game.Scissors, nil
		})

		_, err := Play(seat0, seat1, 3)

		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2}, seen0, "history should grow by one round per round")
		require.Equal(t, seen0, seen1, "seat 1 should see the same snapshot as seat 0")
	})

	t.Run("propagates a strategy error without retrying", func(t *testing.T) {
		calls := 0
		failing := strategy.NewFunc("broken", func(game.History, game.Seat) (game.Move, error) {
			calls++
			return 0, strategy.ErrNoDecideFunc
		})

		_, err := Play(failing, constant("rock", game.Rock), 5)

		require.Error(t, err, "the first strategy failure should abort the match")
		require.ErrorIs(t, err, strategy.ErrNoDecideFunc, "the cause should stay visible")
		require.Equal(t, 1, calls, "a failed strategy call is never retried")
	})

	t.Run("mirroring strategies alternate outcomes after distinct openers", func(t *testing.T) {
		outcomes, err := Play(mirror("m0", game.Rock), mirror("m1", game.Scissors), 6)

		require.NoError(t, err)
		want := game.Outcomes{
			game.Seat0Wins, game.Seat1Wins,
			game.Seat0Wins, game.Seat1Wins,
			game.Seat0Wins, game.Seat1Wins,
		}
		require.Equal(t, want, outcomes,
			"each round replays the previous round with seats swapped")
	})

	t.Run("mirroring strategies tie forever after identical openers", func(t *testing.T) {
		outcomes, err := Play(mirror("m0", game.Paper), mirror("m1", game.Paper), 4)

		require.NoError(t, err)
		for i, o := range outcomes {
			require.Equal(t, game.Tie, o, "round %d should tie in the degenerate cycle", i)
		}
	})

	t.Run("seeded tit-for-tat pair settles into a two-cycle", func(t *testing.T) {
		seat0 := strategy.NewTitForTat("a", strategy.WithRand(strategy.NewRand(42)))
		seat1 := strategy.NewTitForTat("b", strategy.WithRand(strategy.NewRand(7)))

		outcomes, err := Play(seat0, seat1, 10)

		require.NoError(t, err)
		require.Len(t, outcomes, 10)
		require.Equal(t, -outcomes[0], outcomes[1],
			"round 1 replays round 0 with the moves swapped")
		for i := 2; i < len(outcomes); i++ {
			require.Equal(t, outcomes[i-2], outcomes[i],
				"outcomes should repeat with period two")
		}
	})
}
