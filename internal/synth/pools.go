package synth

import (
	"sort"

	"github.com/HiroakiMikami/deep-coder/internal/attribute"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/enumerate"
)

type enumerateRestriction = enumerate.Restriction

// rankedFunctions returns dsl.NonReaderFunctions sorted descending by their
// attribute score, ties broken by declaration order (sort.SliceStable
// leaves equal-scored entries in their original relative order).
func rankedFunctions(a attribute.Attribute) []dsl.Function {
	out := append([]dsl.Function(nil), dsl.NonReaderFunctions...)
	sort.SliceStable(out, func(i, j int) bool { return a.Functions[out[i]] > a.Functions[out[j]] })
	return out
}

func rankedPredicates(a attribute.Attribute) []dsl.PredicateLambda {
	out := append([]dsl.PredicateLambda(nil), dsl.PredicateLambdas...)
	sort.SliceStable(out, func(i, j int) bool { return a.Predicates[out[i]] > a.Predicates[out[j]] })
	return out
}

func rankedOneArgs(a attribute.Attribute) []dsl.OneArgumentLambda {
	out := append([]dsl.OneArgumentLambda(nil), dsl.OneArgumentLambdas...)
	sort.SliceStable(out, func(i, j int) bool { return a.OneArgs[out[i]] > a.OneArgs[out[j]] })
	return out
}

func rankedTwoArgs(a attribute.Attribute) []dsl.TwoArgumentsLambda {
	out := append([]dsl.TwoArgumentsLambda(nil), dsl.TwoArgumentsLambdas...)
	sort.SliceStable(out, func(i, j int) bool { return a.TwoArgs[out[i]] > a.TwoArgs[out[j]] })
	return out
}

// fullRestriction is the DFS strategy's pool: every primitive, each pool
// sorted descending by attribute score, so the enumerator explores the
// search space in order of plausibility.
func fullRestriction(a attribute.Attribute, minLength, maxLength int) enumerateRestriction {
	return enumerateRestriction{
		Functions:  rankedFunctions(a),
		Predicates: rankedPredicates(a),
		OneArgs:    rankedOneArgs(a),
		TwoArgs:    rankedTwoArgs(a),
		MinLength:  minLength,
		MaxLength:  maxLength,
	}
}

// queueKind orders the four primitive kinds for sort-and-add's tie-break:
// function > predicate > one-arg > two-arg.
type queueKind int

const (
	queueFunction queueKind = iota
	queuePredicate
	queueOneArg
	queueTwoArg
)

// growingPools is the sort-and-add strategy's state: four ranked queues and
// how many entries from the front of each are currently "added" to the
// live restriction.
type growingPools struct {
	functions  []dsl.Function
	predicates []dsl.PredicateLambda
	oneArgs    []dsl.OneArgumentLambda
	twoArgs    []dsl.TwoArgumentsLambda

	fnAdded, predAdded, oneAdded, twoAdded int
}

func newGrowingPools(a attribute.Attribute) *growingPools {
	return &growingPools{
		functions:  rankedFunctions(a),
		predicates: rankedPredicates(a),
		oneArgs:    rankedOneArgs(a),
		twoArgs:    rankedTwoArgs(a),
	}
}

// restriction returns the Restriction corresponding to the pools' current
// added counts.
func (g *growingPools) restriction(minLength, maxLength int) enumerateRestriction {
	return enumerateRestriction{
		Functions:  append([]dsl.Function(nil), g.functions[:g.fnAdded]...),
		Predicates: append([]dsl.PredicateLambda(nil), g.predicates[:g.predAdded]...),
		OneArgs:    append([]dsl.OneArgumentLambda(nil), g.oneArgs[:g.oneAdded]...),
		TwoArgs:    append([]dsl.TwoArgumentsLambda(nil), g.twoArgs[:g.twoAdded]...),
		MinLength:  minLength,
		MaxLength:  maxLength,
	}
}

// exhausted reports whether every queue has been fully added.
func (g *growingPools) exhausted() bool {
	return g.fnAdded >= len(g.functions) && g.predAdded >= len(g.predicates) &&
		g.oneAdded >= len(g.oneArgs) && g.twoAdded >= len(g.twoArgs)
}

// addNext advances whichever queue head has the highest remaining score,
// ties broken function > predicate > one-arg > two-arg, per the
// specification's ordering. It does nothing if every queue is exhausted.
func (g *growingPools) addNext(a attribute.Attribute) {
	best := queueKind(-1)
	bestScore := 0.0
	consider := func(k queueKind, score float64, has bool) {
		if !has {
			return
		}
		if best == queueKind(-1) || score > bestScore {
			best, bestScore = k, score
		}
	}
	if g.fnAdded < len(g.functions) {
		consider(queueFunction, a.Functions[g.functions[g.fnAdded]], true)
	}
	if g.predAdded < len(g.predicates) {
		consider(queuePredicate, a.Predicates[g.predicates[g.predAdded]], true)
	}
	if g.oneAdded < len(g.oneArgs) {
		consider(queueOneArg, a.OneArgs[g.oneArgs[g.oneAdded]], true)
	}
	if g.twoAdded < len(g.twoArgs) {
		consider(queueTwoArg, a.TwoArgs[g.twoArgs[g.twoAdded]], true)
	}
	switch best {
	case queueFunction:
		g.fnAdded++
	case queuePredicate:
		g.predAdded++
	case queueOneArg:
		g.oneAdded++
	case queueTwoArg:
		g.twoAdded++
	}
}
