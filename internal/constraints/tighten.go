package constraints

func tightenIntMin(c *IntegerConstraint, v int) {
	if c.Min == nil || *c.Min < v {
		m := v
		c.Min = &m
	}
}

func tightenIntMax(c *IntegerConstraint, v int) {
	if c.Max == nil || *c.Max > v {
		m := v
		c.Max = &m
	}
}

func tightenMinLength(c *ListConstraint, v int) {
	if c.MinLength == nil || *c.MinLength < v {
		m := v
		c.MinLength = &m
	}
}

func tightenListMin(c *ListConstraint, v int) {
	if c.Min == nil || *c.Min < v {
		m := v
		c.Min = &m
	}
}

func tightenListMax(c *ListConstraint, v int) {
	if c.Max == nil || *c.Max > v {
		m := v
		c.Max = &m
	}
}

// zeroExcluded reports whether 0 is known to be outside v's possible
// range, used by the Sum rule (l.min_length >= 1 iff 0 is excluded from
// v's range).
func zeroExcluded(v *IntegerConstraint) bool {
	if v.Min != nil && *v.Min > 0 {
		return true
	}
	if v.Max != nil && *v.Max < 0 {
		return true
	}
	if v.Sign != nil && (*v.Sign == Positive || *v.Sign == Negative) {
		return true
	}
	return false
}

// inheritSignParityIntoList adds ic's known sign/parity into lc's bucket
// sets, falling back to the unspecified bucket when ic carries no
// information — used by Head/Last/Access, which tie exactly one list
// element to an already-constrained integer variable.
func inheritSignParityIntoList(lc *ListConstraint, ic *IntegerConstraint) {
	if ic.Sign != nil {
		lc.Signs[*ic.Sign] = true
	} else {
		lc.Signs[SignUnknown] = true
	}
	if ic.IsEven != nil {
		if *ic.IsEven {
			lc.Parities[EvenParity] = true
		} else {
			lc.Parities[OddParity] = true
		}
	} else {
		lc.Parities[ParityUnknown] = true
	}
}

// propagateListSignParity copies v's whole bucket sets into l, used by
// Take/Drop whose output is a sub-list of the input and so draws its
// elements from the same buckets. (Reverse/Sort use copyListConstraint.)
func propagateListSignParity(l *ListConstraint, v *ListConstraint) {
	for s := range v.Signs {
		l.Signs[s] = true
	}
	for p := range v.Parities {
		l.Parities[p] = true
	}
}

func copyListConstraint(dst, src *ListConstraint) {
	dst.MinLength = src.MinLength
	dst.MaxLength = src.MaxLength
	dst.Min = src.Min
	dst.Max = src.Max
	for s := range src.Signs {
		dst.Signs[s] = true
	}
	for p := range src.Parities {
		dst.Parities[p] = true
	}
}
