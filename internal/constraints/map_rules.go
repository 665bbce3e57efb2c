package constraints

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// inverseMapBounds propagates the bounds, parity and sign of a Map's
// output list constraint v backward onto its input list constraint l, by
// inverting lam's arithmetic effect. Pow2 is left unconstrained since it
// isn't invertible into a single interval. Per the source's quirk (spec
// design notes), Minus1 clears l's parity set before re-inserting the
// inverted buckets; Plus1 does not clear — both are preserved verbatim
// here rather than "fixed", since tests pin both behaviors.
//
// Multiply2/3/4 and Divide2/3/4 both divide the output bound by k to
// recover the input bound, matching example-generator.cc's
// list_constraint(Map) case verbatim — the original applies the same
// division regardless of whether the lambda multiplies or divides, which
// reads like a latent quirk in the source rather than a deliberate
// design, but it is ground truth and is mirrored here rather than
// "fixed" into a multiply/divide split.
func inverseMapBounds(lam dsl.OneArgumentLambda, v, l *ListConstraint) {
	switch lam {
	case dsl.Plus1:
		if v.Min != nil {
			tightenListMin(l, *v.Min-1)
		}
		if v.Max != nil {
			tightenListMax(l, *v.Max-1)
		}
		invertParityInto(l, v, false)
	case dsl.Minus1:
		if v.Min != nil {
			tightenListMin(l, *v.Min+1)
		}
		if v.Max != nil {
			tightenListMax(l, *v.Max+1)
		}
		invertParityInto(l, v, true)
	case dsl.MultiplyMinus1:
		if v.Max != nil {
			tightenListMin(l, -*v.Max)
		}
		if v.Min != nil {
			tightenListMax(l, -*v.Min)
		}
		copyParityInto(l, v)
		invertSignInto(l, v)
	case dsl.Multiply2:
		scaleBoundsInto(l, v, 2)
		copySignInto(l, v)
	case dsl.Multiply3:
		scaleBoundsInto(l, v, 3)
		copySignInto(l, v)
		copyParityInto(l, v)
	case dsl.Multiply4:
		scaleBoundsInto(l, v, 4)
		copySignInto(l, v)
	case dsl.Divide2:
		scaleBoundsInto(l, v, 2)
		copySignInto(l, v)
	case dsl.Divide3:
		scaleBoundsInto(l, v, 3)
		copySignInto(l, v)
		copyParityInto(l, v)
	case dsl.Divide4:
		scaleBoundsInto(l, v, 4)
		copySignInto(l, v)
	case dsl.Pow2:
		// unconstrained: squaring isn't invertible into one interval.
	}
}

func scaleBoundsInto(l, v *ListConstraint, k int) {
	if v.Min != nil {
		tightenListMin(l, *v.Min/k)
	}
	if v.Max != nil {
		tightenListMax(l, *v.Max/k)
	}
}

func invertParityInto(l, v *ListConstraint, clear bool) {
	if clear {
		l.Parities = map[Parity]bool{}
	}
	for p := range v.Parities {
		switch p {
		case EvenParity:
			l.Parities[OddParity] = true
		case OddParity:
			l.Parities[EvenParity] = true
		default:
			l.Parities[ParityUnknown] = true
		}
	}
}

func copyParityInto(l, v *ListConstraint) {
	for p := range v.Parities {
		l.Parities[p] = true
	}
}

// invertSignInto flips Positive/Negative buckets from v into l, used by
// MultiplyMinus1 where negating a value inverts its sign.
func invertSignInto(l, v *ListConstraint) {
	for s := range v.Signs {
		switch s {
		case Positive:
			l.Signs[Negative] = true
		case Negative:
			l.Signs[Positive] = true
		default:
			l.Signs[s] = true
		}
	}
}

// copySignInto carries v's sign buckets into l unchanged, used by the
// Multiply*/Divide* lambdas, none of which flip a value's sign.
func copySignInto(l, v *ListConstraint) {
	for s := range v.Signs {
		l.Signs[s] = true
	}
}

// addPredicateBucket adds the sign/parity bucket that p selects to lc,
// used by Filter/Count to record that the list gains at least one
// element from that bucket.
func addPredicateBucket(lc *ListConstraint, p dsl.PredicateLambda) {
	switch p {
	case dsl.IsPositive:
		lc.Signs[Positive] = true
	case dsl.IsNegative:
		lc.Signs[Negative] = true
	case dsl.IsEven:
		lc.Parities[EvenParity] = true
	case dsl.IsOdd:
		lc.Parities[OddParity] = true
	}
}
