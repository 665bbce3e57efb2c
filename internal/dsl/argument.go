package dsl

// Argument is exactly one of: a variable index, a predicate lambda, a
// one-argument lambda, or a two-argument lambda. Internally it is a single
// tagged 32-bit word, the kind living in bits 28-30 and the payload in the
// low 28 — the same packing the source DeepCoder implementation
// uses, kept as the wire-level representation even though every accessor
// below treats it as a plain sum type. The tags never leak into the
// string/textual form (see package codec).
type Argument struct {
	raw uint32
}

const (
	tagPredicate uint32 = 0x40000000
	tagOneArg    uint32 = 0x20000000
	tagTwoArg    uint32 = 0x10000000
	tagMask      uint32 = tagPredicate | tagOneArg | tagTwoArg
	payloadMask  uint32 = ^tagMask
)

// NewVariableArgument builds an Argument referencing the given variable.
func NewVariableArgument(v uint16) Argument {
	return Argument{raw: uint32(v)}
}

// NewPredicateArgument builds an Argument carrying a predicate lambda.
func NewPredicateArgument(p PredicateLambda) Argument {
	return Argument{raw: tagPredicate | (uint32(p) & payloadMask)}
}

// NewOneArgArgument builds an Argument carrying a one-argument lambda.
func NewOneArgArgument(l OneArgumentLambda) Argument {
	return Argument{raw: tagOneArg | (uint32(l) & payloadMask)}
}

// NewTwoArgArgument builds an Argument carrying a two-argument lambda.
func NewTwoArgArgument(l TwoArgumentsLambda) Argument {
	return Argument{raw: tagTwoArg | (uint32(l) & payloadMask)}
}

// Variable returns the referenced variable index, and false if this
// Argument carries any lambda kind instead.
func (a Argument) Variable() (uint16, bool) {
	if a.raw&tagMask != 0 {
		return 0, false
	}
	return uint16(a.raw & payloadMask), true
}

// Predicate returns the carried predicate lambda, and false otherwise.
func (a Argument) Predicate() (PredicateLambda, bool) {
	if a.raw&tagMask != tagPredicate {
		return 0, false
	}
	return PredicateLambda(a.raw & payloadMask), true
}

// OneArg returns the carried one-argument lambda, and false otherwise.
func (a Argument) OneArg() (OneArgumentLambda, bool) {
	if a.raw&tagMask != tagOneArg {
		return 0, false
	}
	return OneArgumentLambda(a.raw & payloadMask), true
}

// TwoArg returns the carried two-argument lambda, and false otherwise.
func (a Argument) TwoArg() (TwoArgumentsLambda, bool) {
	if a.raw&tagMask != tagTwoArg {
		return 0, false
	}
	return TwoArgumentsLambda(a.raw & payloadMask), true
}

// IsLambda reports whether this Argument carries any of the three lambda
// kinds rather than a variable reference.
func (a Argument) IsLambda() bool {
	return a.raw&tagMask != 0
}
