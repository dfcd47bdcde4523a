package pathogen

import (
	"math"
	"math/rand/v2"
)

// geometric draws the number of whole-day failures before the first
// success of a Bernoulli(p) trial, the discrete stand-in for an
// exponentially distributed duration. Inversion keeps each draw to a
// single uniform variate, so the randomness consumed per call is fixed.
type geometric struct {
	p   float64
	rnd *rand.Rand
}

func (g geometric) Rand() int16 {
	if g.p >= 1 {
		return 0
	}
	u := g.rnd.Float64()
	return int16(math.Log1p(-u) / math.Log1p(-g.p))
}
