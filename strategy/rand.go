package strategy

import (
	"math/rand"
	"time"

	"github.com/seehuhn/mt19937"

	"rps/game"
)

// NewRand returns a Mersenne Twister backed generator with the given seed.
func NewRand(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}

// moveSource draws uniformly distributed moves. Each strategy instance owns
// its own source, so a match never shares generator state across strategies.
type moveSource struct {
	rng *rand.Rand
}

func newMoveSource() moveSource {
	return moveSource{rng: NewRand(time.Now().UnixNano())}
}

func (ms *moveSource) draw() game.Move {
	return game.Moves[ms.rng.Intn(len(game.Moves))]
}

// Option configures a built-in strategy at construction.
type Option func(*moveSource)

// WithRand replaces the time-seeded generator, making the strategy
// deterministic for a fixed seed.
func WithRand(rng *rand.Rand) Option {
	return func(ms *moveSource) {
		ms.rng = rng
	}
}
