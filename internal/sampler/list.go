package sampler

import (
	"math/rand"

	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/constraints"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

// combo is one concrete (sign, parity) bucket drawn from a ListConstraint's
// sets, used to build a per-element IntegerConstraint attempt.
type combo struct {
	sign   constraints.Sign
	parity constraints.Parity
}

// signOrder/parityOrder fix a deterministic iteration order over the
// bucket sets; the spec leaves "all_constraints" iteration order an open
// question resolved however an implementer likes, as long as it's
// deterministic — this is that choice.
var signOrder = []constraints.Sign{constraints.SignUnknown, constraints.Positive, constraints.Negative, constraints.Zero}
var parityOrder = []constraints.Parity{constraints.ParityUnknown, constraints.EvenParity, constraints.OddParity}

func allCombos(c *constraints.ListConstraint) []combo {
	signs := signOrder
	if len(c.Signs) > 0 {
		signs = nil
		for _, s := range signOrder {
			if c.Signs[s] {
				signs = append(signs, s)
			}
		}
	} else {
		signs = []constraints.Sign{constraints.SignUnknown}
	}
	parities := parityOrder
	if len(c.Parities) > 0 {
		parities = nil
		for _, p := range parityOrder {
			if c.Parities[p] {
				parities = append(parities, p)
			}
		}
	} else {
		parities = []constraints.Parity{constraints.ParityUnknown}
	}
	out := make([]combo, 0, len(signs)*len(parities))
	for _, s := range signs {
		for _, p := range parities {
			out = append(out, combo{sign: s, parity: p})
		}
	}
	return out
}

func (cb combo) integerConstraint(base *constraints.ListConstraint) *constraints.IntegerConstraint {
	ic := &constraints.IntegerConstraint{Min: base.Min, Max: base.Max}
	if cb.sign != constraints.SignUnknown {
		s := cb.sign
		ic.Sign = &s
	}
	if cb.parity != constraints.ParityUnknown {
		even := cb.parity == constraints.EvenParity
		ic.IsEven = &even
	}
	return ic
}

// GenerateList draws a length uniformly from
// [max(min_length,0), max(max_length,LIST_LENGTH)] (note: this keeps the
// source's quirk of NOT capping at max_length when max_length is smaller
// than LIST_LENGTH — max_length only ever widens the default window here),
// then draws each element from a random combo of c's sign/parity buckets,
// falling back to every combo in turn before giving up on the whole list.
func GenerateList(rng *rand.Rand, c *constraints.ListConstraint) ([]interp.Value, bool) {
	lo := 0
	if c.MinLength != nil && *c.MinLength > lo {
		lo = *c.MinLength
	}
	hi := config.ListLength
	if c.MaxLength != nil && *c.MaxLength > hi {
		hi = *c.MaxLength
	}
	if hi < lo {
		return nil, false
	}
	length := lo + rng.Intn(hi-lo+1)

	combos := allCombos(c)
	out := make([]interp.Value, length)
	for i := 0; i < length; i++ {
		v, ok := sampleElement(rng, c, combos)
		if !ok {
			return nil, false
		}
		out[i] = interp.Int(v)
	}
	return out, true
}

func sampleElement(rng *rand.Rand, c *constraints.ListConstraint, combos []combo) (int, bool) {
	if len(combos) == 0 {
		return GenerateInteger(rng, &constraints.IntegerConstraint{Min: c.Min, Max: c.Max})
	}
	first := combos[rng.Intn(len(combos))]
	if v, ok := GenerateInteger(rng, first.integerConstraint(c)); ok {
		return v, true
	}
	for _, cb := range combos {
		if v, ok := GenerateInteger(rng, cb.integerConstraint(c)); ok {
			return v, true
		}
	}
	return 0, false
}
