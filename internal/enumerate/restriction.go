// Package enumerate implements the typed enumerator: a generic,
// depth-first walk of every well-typed extension of a program within a
// length window, parameterised over a user-supplied per-step accumulator
// and a pruning/collection callback.
package enumerate

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// Restriction names the pools the enumerator draws candidate functions and
// lambdas from, and the length window it explores. The synthesiser
// populates and orders these pools by attribute score; tests typically use
// the declaration order instead.
type Restriction struct {
	Functions  []dsl.Function
	Predicates []dsl.PredicateLambda
	OneArgs    []dsl.OneArgumentLambda
	TwoArgs    []dsl.TwoArgumentsLambda
	MinLength  int
	MaxLength  int
}

// FullRestriction returns a Restriction whose pools are every primitive in
// declaration order, bounded to [minLength, maxLength]. ReadInt/ReadList
// are included in Functions so an enumeration starting from an empty
// program can synthesize its own read prefix; callers that already have a
// fixed read prefix (the synthesiser) exclude them instead.
func FullRestriction(minLength, maxLength int) Restriction {
	return Restriction{
		Functions:  append([]dsl.Function(nil), dsl.Functions...),
		Predicates: append([]dsl.PredicateLambda(nil), dsl.PredicateLambdas...),
		OneArgs:    append([]dsl.OneArgumentLambda(nil), dsl.OneArgumentLambdas...),
		TwoArgs:    append([]dsl.TwoArgumentsLambda(nil), dsl.TwoArgumentsLambdas...),
		MinLength:  minLength,
		MaxLength:  maxLength,
	}
}
