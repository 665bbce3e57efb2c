// Package interp is the DSL's big-step interpreter: it evaluates a
// well-typed Program against one input tuple, producing a Value.
package interp

import (
	"fmt"
	"strings"
)

// Kind tags a Value's payload.
type Kind int

const (
	KindInteger Kind = iota
	KindList
	KindNull
)

// Value is the tagged union Integer(i) | List(xs) | Null. The zero Value is
// Integer(0); Null is NullValue.
type Value struct {
	kind Kind
	i    int
	list []Value
}

// Int builds an Integer value.
func Int(i int) Value { return Value{kind: KindInteger, i: i} }

// List builds a List value. A nil xs is treated as an empty list.
func List(xs []Value) Value {
	if xs == nil {
		xs = []Value{}
	}
	return Value{kind: KindList, list: xs}
}

// NullValue is the Null value, returned whenever an operation is undefined.
var NullValue = Value{kind: KindNull}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// IntValue returns the integer payload, and false if v is not an Integer.
func (v Value) IntValue() (int, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// ListValue returns the list payload, and false if v is not a List.
func (v Value) ListValue() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Equal is the structural equality relation: equal tag and equal payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == other.i
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	default: // KindNull
		return true
	}
}

// String renders v in the textual form of spec section 6: integers as
// decimal, lists as "[x,y,z]", null as "NULL".
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.i)
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return "NULL"
	}
}

// AllIntegersInRange reports whether every Integer reachable from v (v
// itself, or every element if v is a List) lies within [min, max]. Used by
// the example generator to reject out-of-range outputs.
func (v Value) AllIntegersInRange(min, max int) bool {
	switch v.kind {
	case KindInteger:
		return v.i >= min && v.i <= max
	case KindList:
		for _, e := range v.list {
			if !e.AllIntegersInRange(min, max) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
