package trivia

import "math/rand/v2"

// Selector picks one question uniformly at random from a candidate pool.
// The random source is injectable so tests can seed it while production
// uses the default source.
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a production selector drawing from the shared
// math/rand/v2 source.
func NewSelector() *Selector {
	return &Selector{intn: rand.IntN}
}

// NewSeededSelector returns a selector backed by a deterministic PCG source.
func NewSeededSelector(seed uint64) *Selector {
	r := rand.New(rand.NewPCG(seed, seed))
	return &Selector{intn: r.IntN}
}

// Pick selects one candidate with equal probability. The second return is
// false when the pool is exhausted.
func (s *Selector) Pick(candidates []Question) (Question, bool) {
	if len(candidates) == 0 {
		return Question{}, false
	}
	return candidates[s.intn(len(candidates))], true
}
