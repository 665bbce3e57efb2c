package constraints

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// Analyze walks program backward (from its last statement to its first),
// inferring per-variable constraints. It fails if program is not
// well-typed. The returned Constraint.Inputs lists the ReadInt/ReadList
// variables in the order they are read.
func Analyze(program dsl.Program) (*Constraint, bool) {
	// A program only makes sense to analyze if it type-checks; this also
	// guarantees every argument slot we index into below exists.
	if !typeChecks(program) {
		return nil, false
	}
	c := &Constraint{
		IntegerVariables: map[uint16]*IntegerConstraint{},
		ListVariables:    map[uint16]*ListConstraint{},
	}
	var reverseInputs []uint16
	for i := len(program.Statements) - 1; i >= 0; i-- {
		stmt := program.Statements[i]
		if stmt.Function == dsl.ReadInt || stmt.Function == dsl.ReadList {
			reverseInputs = append(reverseInputs, stmt.Variable)
			continue
		}
		applyRule(c, stmt)
	}
	inputs := make([]uint16, len(reverseInputs))
	for i, v := range reverseInputs {
		inputs[len(reverseInputs)-1-i] = v
	}
	c.Inputs = inputs
	return c, true
}

func applyRule(c *Constraint, stmt dsl.Statement) {
	switch stmt.Function {
	case dsl.Head, dsl.Last:
		v := c.integerConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[0]))
		tightenMinLength(lc, 1)
		inheritSignParityIntoList(lc, v)

	case dsl.Minimum:
		v := c.integerConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[0]))
		tightenMinLength(lc, 1)
		if v.Min != nil {
			tightenListMin(lc, *v.Min)
		}

	case dsl.Maximum:
		v := c.integerConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[0]))
		tightenMinLength(lc, 1)
		if v.Max != nil {
			tightenListMax(lc, *v.Max)
		}

	case dsl.Sum:
		v := c.integerConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[0]))
		if zeroExcluded(v) {
			tightenMinLength(lc, 1)
		}

	case dsl.Access:
		v := c.integerConstraint(stmt.Variable)
		nc := c.integerConstraint(variableOf(stmt.Arguments[0]))
		lc := c.listConstraint(variableOf(stmt.Arguments[1]))
		tightenIntMin(nc, 0)
		minLen := 1
		if nc.Min != nil && *nc.Min > minLen {
			minLen = *nc.Min
		}
		tightenMinLength(lc, minLen)
		inheritSignParityIntoList(lc, v)

	case dsl.Take, dsl.Drop:
		nc := c.integerConstraint(variableOf(stmt.Arguments[0]))
		lc := c.listConstraint(variableOf(stmt.Arguments[1]))
		tightenIntMin(nc, 0)
		v := c.listConstraint(stmt.Variable)
		propagateListSignParity(lc, v)
		if v.MinLength != nil {
			tightenMinLength(lc, *v.MinLength)
		}

	case dsl.Reverse, dsl.Sort:
		v := c.listConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[0]))
		copyListConstraint(lc, v)

	case dsl.Map:
		lam, _ := stmt.Arguments[0].OneArg()
		v := c.listConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[1]))
		if v.MinLength != nil {
			tightenMinLength(lc, *v.MinLength)
		}
		inverseMapBounds(lam, v, lc)

	case dsl.Filter:
		pred, _ := stmt.Arguments[0].Predicate()
		v := c.listConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[1]))
		if v.MinLength != nil && *v.MinLength >= 1 {
			addPredicateBucket(lc, pred)
		}

	case dsl.Count:
		pred, _ := stmt.Arguments[0].Predicate()
		v := c.integerConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[1]))
		if v.Min != nil && *v.Min >= 1 {
			tightenMinLength(lc, *v.Min)
			addPredicateBucket(lc, pred)
		}

	case dsl.ZipWith:
		v := c.listConstraint(stmt.Variable)
		lc1 := c.listConstraint(variableOf(stmt.Arguments[1]))
		lc2 := c.listConstraint(variableOf(stmt.Arguments[2]))
		if v.MinLength != nil {
			tightenMinLength(lc1, *v.MinLength)
			tightenMinLength(lc2, *v.MinLength)
		}

	case dsl.Scanl1:
		v := c.listConstraint(stmt.Variable)
		lc := c.listConstraint(variableOf(stmt.Arguments[1]))
		if v.MinLength != nil {
			tightenMinLength(lc, *v.MinLength)
		}
	}
}
