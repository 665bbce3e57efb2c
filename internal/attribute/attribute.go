// Package attribute implements the fixed-length numeric summary of
// primitive usage that drives the synthesiser's search order.
package attribute

import (
	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
)

// Attribute is a four-way presence map over every primitive except the two
// stream readers (ReadInt/ReadList never appear in an attribute vector
// since they carry no predictive signal — every program reads its inputs).
type Attribute struct {
	Functions  map[dsl.Function]float64
	Predicates map[dsl.PredicateLambda]float64
	OneArgs    map[dsl.OneArgumentLambda]float64
	TwoArgs    map[dsl.TwoArgumentsLambda]float64
}

// Empty returns an Attribute with every entry present and zeroed.
func Empty() Attribute {
	a := Attribute{
		Functions:  make(map[dsl.Function]float64, len(dsl.NonReaderFunctions)),
		Predicates: make(map[dsl.PredicateLambda]float64, len(dsl.PredicateLambdas)),
		OneArgs:    make(map[dsl.OneArgumentLambda]float64, len(dsl.OneArgumentLambdas)),
		TwoArgs:    make(map[dsl.TwoArgumentsLambda]float64, len(dsl.TwoArgumentsLambdas)),
	}
	for _, f := range dsl.NonReaderFunctions {
		a.Functions[f] = 0
	}
	for _, p := range dsl.PredicateLambdas {
		a.Predicates[p] = 0
	}
	for _, l := range dsl.OneArgumentLambdas {
		a.OneArgs[l] = 0
	}
	for _, l := range dsl.TwoArgumentsLambdas {
		a.TwoArgs[l] = 0
	}
	return a
}

// FromProgram builds an Attribute whose entries are 1 for every primitive
// that occurs in p and 0 otherwise.
func FromProgram(p dsl.Program) Attribute {
	a := Empty()
	for _, stmt := range p.Statements {
		if stmt.Function == dsl.ReadInt || stmt.Function == dsl.ReadList {
			continue
		}
		a.Functions[stmt.Function] = 1
		for _, arg := range stmt.Arguments {
			if pred, ok := arg.Predicate(); ok {
				a.Predicates[pred] = 1
			}
			if one, ok := arg.OneArg(); ok {
				a.OneArgs[one] = 1
			}
			if two, ok := arg.TwoArg(); ok {
				a.TwoArgs[two] = 1
			}
		}
	}
	return a
}

// Vector flattens a into a fixed-length slice of config.AttributeVectorLength
// doubles, laid out as: non-reader functions, predicates, one-arg lambdas,
// two-arg lambdas, each in declaration order.
func (a Attribute) Vector() []float64 {
	out := make([]float64, 0, config.AttributeVectorLength)
	for _, f := range dsl.NonReaderFunctions {
		out = append(out, a.Functions[f])
	}
	for _, p := range dsl.PredicateLambdas {
		out = append(out, a.Predicates[p])
	}
	for _, l := range dsl.OneArgumentLambdas {
		out = append(out, a.OneArgs[l])
	}
	for _, l := range dsl.TwoArgumentsLambdas {
		out = append(out, a.TwoArgs[l])
	}
	return out
}

// FromVector is the inverse of Vector: it reads a flat vector of length
// config.AttributeVectorLength back into an Attribute. It panics if v has
// the wrong length, since a predictor returning a mis-sized vector is a
// programming error at the boundary, not a recoverable runtime condition.
func FromVector(v []float64) Attribute {
	if len(v) != config.AttributeVectorLength {
		panic("attribute: vector has wrong length")
	}
	a := Empty()
	i := 0
	for _, f := range dsl.NonReaderFunctions {
		a.Functions[f] = v[i]
		i++
	}
	for _, p := range dsl.PredicateLambdas {
		a.Predicates[p] = v[i]
		i++
	}
	for _, l := range dsl.OneArgumentLambdas {
		a.OneArgs[l] = v[i]
		i++
	}
	for _, l := range dsl.TwoArgumentsLambdas {
		a.TwoArgs[l] = v[i]
		i++
	}
	return a
}
