package dsltypes

import (
	"testing"

	"github.com/HiroakiMikami/deep-coder/internal/dsl"
)

func v(variable uint16) dsl.Argument { return dsl.NewVariableArgument(variable) }

func TestCheckTypeMismatch(t *testing.T) {
	env := NewEnvironment()
	stmt := dsl.Statement{Variable: 0, Function: dsl.ReadInt}
	env, ok := Check(stmt, env)
	if !ok {
		t.Fatal("ReadInt should type-check against an empty environment")
	}
	// Sum expects a list; variable 0 is bound as an integer.
	bad := dsl.Statement{Variable: 1, Function: dsl.Sum, Arguments: []dsl.Argument{v(0)}}
	if _, ok := Check(bad, env); ok {
		t.Fatal("Sum(integer) should fail to type-check")
	}
}

func TestCheckRebindRejected(t *testing.T) {
	env := NewEnvironment()
	stmt := dsl.Statement{Variable: 0, Function: dsl.ReadList}
	env, ok := Check(stmt, env)
	if !ok {
		t.Fatal("first ReadList should type-check")
	}
	if _, ok := Check(stmt, env); ok {
		t.Fatal("rebinding an already-bound variable should fail")
	}
}

// TestIsValidMatchesGenerateTypeEnvironment pins invariant 2.
func TestIsValidMatchesGenerateTypeEnvironment(t *testing.T) {
	good := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Minimum, Arguments: []dsl.Argument{v(0)}},
	}}
	if !IsValid(good) {
		t.Error("expected good program to be valid")
	}
	if _, ok := GenerateTypeEnvironment(good); !ok {
		t.Error("GenerateTypeEnvironment disagrees with IsValid on a valid program")
	}

	bad := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadInt},
		{Variable: 1, Function: dsl.Minimum, Arguments: []dsl.Argument{v(0)}},
	}}
	if IsValid(bad) {
		t.Error("expected bad program to be invalid")
	}
	if _, ok := GenerateTypeEnvironment(bad); ok {
		t.Error("GenerateTypeEnvironment disagrees with IsValid on an invalid program")
	}
}

func TestCheckArityMismatch(t *testing.T) {
	env := NewEnvironment()
	env, _ = Check(dsl.Statement{Variable: 0, Function: dsl.ReadList}, env)
	stmt := dsl.Statement{Variable: 1, Function: dsl.Minimum, Arguments: []dsl.Argument{v(0), v(0)}}
	if _, ok := Check(stmt, env); ok {
		t.Fatal("Minimum with two arguments should fail arity check")
	}
}
