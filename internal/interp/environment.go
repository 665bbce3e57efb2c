package interp

// Environment holds the state of one in-progress evaluation: the bindings
// produced so far, the input tuple, and how many ReadInt/ReadList calls
// have consumed it. It is immutable by convention — Extended returns a new
// Environment rather than mutating the receiver, so the typed enumerator
// can advance one branch's environment without disturbing its siblings'.
type Environment struct {
	input  []Value
	Offset int
	Vars   map[uint16]Value
}

// NewEnvironment starts an evaluation over the given input tuple with an
// empty variable map and offset 0.
func NewEnvironment(input []Value) Environment {
	return Environment{input: input, Offset: 0, Vars: map[uint16]Value{}}
}

// InputAt returns the input value at the given offset, and false if it is
// out of range.
func (e Environment) InputAt(offset int) (Value, bool) {
	if offset < 0 || offset >= len(e.input) {
		return Value{}, false
	}
	return e.input[offset], true
}

// Get resolves a bound variable, returning Null if it is unbound (a
// malformed statement referencing a missing binding propagates Null rather
// than panicking, per spec section 4.C).
func (e Environment) Get(v uint16) Value {
	val, ok := e.Vars[v]
	if !ok {
		return NullValue
	}
	return val
}

// Extended returns a new Environment with variable v bound to val and the
// read offset advanced by offsetDelta.
func (e Environment) Extended(v uint16, val Value, offsetDelta int) Environment {
	vars := make(map[uint16]Value, len(e.Vars)+1)
	for k, vv := range e.Vars {
		vars[k] = vv
	}
	vars[v] = val
	return Environment{input: e.input, Offset: e.Offset + offsetDelta, Vars: vars}
}
