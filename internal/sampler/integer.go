// Package sampler draws random inputs satisfying the constraints package's
// analysis, and combines that with the interpreter to generate valid
// (input, output) examples for a program.
package sampler

import (
	"math/rand"

	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/constraints"
)

// GenerateInteger draws an integer satisfying c from the default
// [InputMin, InputMax] window, tightened by c.Min/c.Max/c.Sign/c.IsEven.
// It fails if the resulting window is empty.
func GenerateInteger(rng *rand.Rand, c *constraints.IntegerConstraint) (int, bool) {
	lo, hi := config.InputMin, config.InputMax
	if c != nil {
		if c.Min != nil && *c.Min > lo {
			lo = *c.Min
		}
		if c.Max != nil && *c.Max < hi {
			hi = *c.Max
		}
		if c.Sign != nil {
			switch *c.Sign {
			case constraints.Positive:
				if lo < 1 {
					lo = 1
				}
			case constraints.Negative:
				if hi > -1 {
					hi = -1
				}
			case constraints.Zero:
				return 0, true
			}
		}
	}
	if hi < lo {
		return 0, false
	}
	if c != nil && c.IsEven != nil {
		if *c.IsEven {
			low, high := (lo+1)/2, hi/2
			if high < low {
				return 0, false
			}
			return randRange(rng, low, high) * 2, true
		}
		low, high := lo/2, (hi-1)/2
		if high < low {
			return 0, false
		}
		return randRange(rng, low, high)*2 + 1, true
	}
	return randRange(rng, lo, hi), true
}

// randRange draws a uniform integer from the closed interval [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
