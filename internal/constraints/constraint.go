// Package constraints implements the backward constraint analysis: given a
// well-typed program, it infers value-range / sign / parity / list-length
// constraints on every variable, walking from the output towards the
// inputs.
package constraints

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// Sign is an integer's coarse sign bucket. SignUnknown doubles as the
// "unspecified bucket" member of a ListConstraint's Signs set — see the
// doc on ListConstraint for why this isn't collapsed away.
type Sign int

const (
	SignUnknown Sign = iota
	Positive
	Negative
	Zero
)

// Parity is an integer's evenness bucket. ParityUnknown is the
// "unspecified bucket" member of a ListConstraint's Parities set.
type Parity int

const (
	ParityUnknown Parity = iota
	EvenParity
	OddParity
)

// IntegerConstraint refines the default sampling window for one
// Integer-typed variable. A nil field means "no constraint inferred".
type IntegerConstraint struct {
	Min    *int
	Max    *int
	Sign   *Sign
	IsEven *bool
}

// ListConstraint refines the default sampling window for one List-typed
// variable. Signs and Parities are sets-of-optional: each maps a bucket
// (including the "unspecified" bucket, SignUnknown/ParityUnknown) to
// whether the list may contain an element from it. This models the fact
// that a list can mix elements from several disjoint sign/parity classes;
// it must not be collapsed into a single optional value.
type ListConstraint struct {
	MinLength *int
	MaxLength *int
	Min       *int
	Max       *int
	Signs     map[Sign]bool
	Parities  map[Parity]bool
}

func newIntegerConstraint() *IntegerConstraint {
	return &IntegerConstraint{}
}

func newListConstraint() *ListConstraint {
	return &ListConstraint{Signs: map[Sign]bool{}, Parities: map[Parity]bool{}}
}

// Constraint is the result of Analyze: per-variable refinements plus the
// ordered list of variables that are actually program inputs.
type Constraint struct {
	IntegerVariables map[uint16]*IntegerConstraint
	ListVariables    map[uint16]*ListConstraint
	Inputs           []uint16
}

func (c *Constraint) integerConstraint(v uint16) *IntegerConstraint {
	ic, ok := c.IntegerVariables[v]
	if !ok {
		ic = newIntegerConstraint()
		c.IntegerVariables[v] = ic
	}
	return ic
}

func (c *Constraint) listConstraint(v uint16) *ListConstraint {
	lc, ok := c.ListVariables[v]
	if !ok {
		lc = newListConstraint()
		c.ListVariables[v] = lc
	}
	return lc
}

func variableOf(arg dsl.Argument) uint16 {
	v, _ := arg.Variable()
	return v
}
