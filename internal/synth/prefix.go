// Package synth implements the synthesiser: given a handful of
// input/output examples and an attribute vector, it searches for a short
// DSL program that reproduces every example, using the typed enumerator
// from package enumerate to walk candidate extensions of a fixed
// read-prefix.
package synth

import (
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

// synthesizePrefix builds the ReadInt/ReadList statements that consume the
// first example's input shape, one statement per input slot in order,
// variables numbered 0..len(shape)-1. Every example is assumed to share
// this shape; the caller is responsible for only handing the synthesiser
// examples of one input type.
func synthesizePrefix(shape []interp.Value) dsl.Program {
	stmts := make([]dsl.Statement, len(shape))
	for i, v := range shape {
		fn := dsl.ReadInt
		if v.Kind() == interp.KindList {
			fn = dsl.ReadList
		}
		stmts[i] = dsl.Statement{Variable: uint16(i), Function: fn}
	}
	return dsl.Program{Statements: stmts}
}

// buildEnvironments evaluates prefix against every example's input,
// producing the initial per-example Environment the search advances one
// statement at a time via calcInfo.
func buildEnvironments(prefix dsl.Program, examples []interp.Example) []interp.Environment {
	envs := make([]interp.Environment, len(examples))
	for i, ex := range examples {
		env := interp.NewEnvironment(ex.Input)
		for _, stmt := range prefix.Statements {
			_, env = interp.EvalStatement(stmt, env)
		}
		envs[i] = env
	}
	return envs
}
