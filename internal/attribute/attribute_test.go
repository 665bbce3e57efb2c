package attribute

import (
	"testing"

	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
)

func v(variable uint16) dsl.Argument { return dsl.NewVariableArgument(variable) }

// TestVectorRoundTrip pins invariant 4: Attribute(Vec(a)) == a.
func TestVectorRoundTrip(t *testing.T) {
	program := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Filter, Arguments: []dsl.Argument{dsl.NewPredicateArgument(dsl.IsEven), v(0)}},
		{Variable: 2, Function: dsl.Map, Arguments: []dsl.Argument{dsl.NewOneArgArgument(dsl.Plus1), v(1)}},
		{Variable: 3, Function: dsl.Sum, Arguments: []dsl.Argument{v(2)}},
	}}
	a := FromProgram(program)
	vec := a.Vector()
	if len(vec) != config.AttributeVectorLength {
		t.Fatalf("Vector length = %d, want %d", len(vec), config.AttributeVectorLength)
	}
	back := FromVector(vec)

	for f, want := range a.Functions {
		if back.Functions[f] != want {
			t.Errorf("function %v: got %v, want %v", f, back.Functions[f], want)
		}
	}
	for p, want := range a.Predicates {
		if back.Predicates[p] != want {
			t.Errorf("predicate %v: got %v, want %v", p, back.Predicates[p], want)
		}
	}
	for l, want := range a.OneArgs {
		if back.OneArgs[l] != want {
			t.Errorf("one-arg %v: got %v, want %v", l, back.OneArgs[l], want)
		}
	}
	for l, want := range a.TwoArgs {
		if back.TwoArgs[l] != want {
			t.Errorf("two-arg %v: got %v, want %v", l, back.TwoArgs[l], want)
		}
	}
}

func TestFromProgramExcludesReaders(t *testing.T) {
	program := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.ReadInt},
	}}
	a := FromProgram(program)
	for f, val := range a.Functions {
		if val != 0 {
			t.Errorf("expected every function entry to be 0 for a read-only program, got %v=%v", f, val)
		}
	}
	if _, hasReadList := a.Functions[dsl.ReadList]; hasReadList {
		t.Error("ReadList should not appear in the attribute's function map at all")
	}
}

func TestFromVectorPanicsOnWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected FromVector to panic on a mis-sized vector")
		}
	}()
	FromVector([]float64{1, 2, 3})
}
