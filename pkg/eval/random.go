package eval

import (
	"math/rand"

	"github.com/corrigan/deepline/pkg/position"
)

// Noisy wraps an Evaluator and adds a small amount of deterministic pseudo-random noise to
// its static score, in the range [-limit/2, limit/2) thousandths. Useful for breaking ties between
// otherwise-identical lines in self-play testing. A zero limit disables the wrapper.
type Noisy struct {
	Evaluator
	rng   *rand.Rand
	limit int
}

// NewNoisy wraps e with noise bounded by limit, seeded deterministically by seed.
func NewNoisy(e Evaluator, limit int, seed int64) Noisy {
	return Noisy{
		Evaluator: e,
		rng:       rand.New(rand.NewSource(seed)),
		limit:     limit,
	}
}

func (n Noisy) EvaluateEngineState(e position.Engine, depth int) float32 {
	base := n.Evaluator.EvaluateEngineState(e, depth)
	if n.limit <= 0 {
		return base
	}
	return base + float32(n.rng.Intn(n.limit)-n.limit/2)/1000
}
