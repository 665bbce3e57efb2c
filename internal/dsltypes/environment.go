// Package dsltypes implements the DSL's one-pass type checker: it assigns
// a ValueType to each statement's bound variable and rejects programs
// whose argument slots don't match the function's declared signature.
package dsltypes

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// Environment is an immutable-by-convention mapping from variable index to
// ValueType, preserving insertion order so callers that need a
// deterministic iteration order (the enumerator, in particular) get one
// without re-sorting at every step. See spec design note on iteration
// determinism: this package picks "ordered map keyed by insertion order".
type Environment struct {
	order []uint16
	types map[uint16]dsl.ValueType
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() Environment {
	return Environment{types: map[uint16]dsl.ValueType{}}
}

// Get returns the type bound to v, and false if v is unbound.
func (e Environment) Get(v uint16) (dsl.ValueType, bool) {
	t, ok := e.types[v]
	return t, ok
}

// Has reports whether v is already bound.
func (e Environment) Has(v uint16) bool {
	_, ok := e.types[v]
	return ok
}

// Extended returns a new Environment with v bound to t, leaving e
// untouched. Extending an already-bound variable is a programmer error in
// this package's caller (Check rejects it before ever calling Extended).
func (e Environment) Extended(v uint16, t dsl.ValueType) Environment {
	order := make([]uint16, len(e.order), len(e.order)+1)
	copy(order, e.order)
	order = append(order, v)
	types := make(map[uint16]dsl.ValueType, len(e.types)+1)
	for k, v2 := range e.types {
		types[k] = v2
	}
	types[v] = t
	return Environment{order: order, types: types}
}

// Variables returns every bound variable of the given type, in the order
// they were bound.
func (e Environment) Variables(t dsl.ValueType) []uint16 {
	out := make([]uint16, 0, len(e.order))
	for _, v := range e.order {
		if e.types[v] == t {
			out = append(out, v)
		}
	}
	return out
}

// Order returns every bound variable in insertion order, regardless of
// type.
func (e Environment) Order() []uint16 {
	out := make([]uint16, len(e.order))
	copy(out, e.order)
	return out
}

// Len is the number of bound variables.
func (e Environment) Len() int { return len(e.order) }
