package enumerate

import (
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/dsltypes"
)

// CalcInfo threads an arbitrary accumulator from a parent program to one
// of its children along the search tree. The synthesiser uses it to
// extend per-example evaluation Environments incrementally; tests that
// don't need an accumulator can use struct{} and an identity function.
type CalcInfo[Info any] func(program dsl.Program, info Info) Info

// Process is invoked once per well-typed candidate whose length falls
// within the restriction's window. Returning false aborts the entire
// enumeration (Enumerate itself then returns false); returning true lets
// the walk continue.
type Process[Info any] func(program dsl.Program, info Info) bool

// Enumerate performs a depth-first, left-to-right walk of every well-typed
// program extending initialProgram whose length lies in
// [restriction.MinLength, restriction.MaxLength]. It returns false iff
// process returned false at some point, propagated all the way back to
// the caller; a true return means the whole window was explored.
func Enumerate[Info any](restriction Restriction, calcInfo CalcInfo[Info], process Process[Info], initialProgram dsl.Program, initialInfo Info) bool {
	env, ok := dsltypes.GenerateTypeEnvironment(initialProgram)
	if !ok {
		return true
	}
	return enumerateRec(restriction, calcInfo, process, initialProgram, env, initialInfo)
}

func enumerateRec[Info any](restriction Restriction, calcInfo CalcInfo[Info], process Process[Info], program dsl.Program, env dsltypes.Environment, info Info) bool {
	if program.Len() >= restriction.MaxLength {
		return true
	}
	nextVar := uint16(program.Len())
	for _, fn := range restriction.Functions {
		sig, ok := dsl.Signatures[fn]
		if !ok {
			continue
		}
		choices := make([][]dsl.Argument, len(sig.Args))
		empty := false
		for i, slot := range sig.Args {
			choices[i] = candidatesForSlot(slot, restriction, env)
			if len(choices[i]) == 0 {
				empty = true
			}
		}
		if empty {
			continue
		}
		args := make([]dsl.Argument, len(choices))
		if !cartesianProduct(choices, args, 0, func(args []dsl.Argument) bool {
			stmt := dsl.Statement{Variable: nextVar, Function: fn, Arguments: append([]dsl.Argument(nil), args...)}
			newEnv, valid := dsltypes.Check(stmt, env)
			if !valid {
				return true
			}
			newProgram := program.Extended(stmt)
			// newInfo always corresponds to newProgram: it is computed once
			// here so both process (which needs to inspect the just-added
			// statement's binding) and the recursive call (which treats
			// newProgram as its own "program" parameter) see an info that
			// matches the program it's handed.
			newInfo := calcInfo(newProgram, info)
			length := newProgram.Len()
			if length >= restriction.MinLength && length <= restriction.MaxLength {
				if !process(newProgram.Clone(), newInfo) {
					return false
				}
			}
			if length < restriction.MaxLength {
				if !enumerateRec(restriction, calcInfo, process, newProgram, newEnv, newInfo) {
					return false
				}
			}
			return true
		}) {
			return false
		}
	}
	return true
}

// candidatesForSlot lists every legal argument for a single slot: the
// restriction's matching lambda pool, or every variable of the slot's
// ValueType currently bound in env, in the environment's iteration order.
func candidatesForSlot(slot dsl.ArgKind, restriction Restriction, env dsltypes.Environment) []dsl.Argument {
	switch slot {
	case dsl.SlotInteger:
		return variableArgs(env.Variables(dsl.TInteger))
	case dsl.SlotList:
		return variableArgs(env.Variables(dsl.TList))
	case dsl.SlotPredicateLambda:
		out := make([]dsl.Argument, len(restriction.Predicates))
		for i, p := range restriction.Predicates {
			out[i] = dsl.NewPredicateArgument(p)
		}
		return out
	case dsl.SlotOneArgLambda:
		out := make([]dsl.Argument, len(restriction.OneArgs))
		for i, l := range restriction.OneArgs {
			out[i] = dsl.NewOneArgArgument(l)
		}
		return out
	case dsl.SlotTwoArgLambda:
		out := make([]dsl.Argument, len(restriction.TwoArgs))
		for i, l := range restriction.TwoArgs {
			out[i] = dsl.NewTwoArgArgument(l)
		}
		return out
	default:
		return nil
	}
}

func variableArgs(vars []uint16) []dsl.Argument {
	out := make([]dsl.Argument, len(vars))
	for i, v := range vars {
		out[i] = dsl.NewVariableArgument(v)
	}
	return out
}

// cartesianProduct enumerates every combination of choices[0] x choices[1]
// x ... in left-to-right order, the last slot varying fastest — the same
// order the source produces by pushing partial argument lists onto an
// explicit stack in reverse. f is called with a full combination each
// time; returning false aborts the whole walk.
func cartesianProduct(choices [][]dsl.Argument, scratch []dsl.Argument, i int, f func([]dsl.Argument) bool) bool {
	if i == len(choices) {
		return f(scratch)
	}
	for _, c := range choices[i] {
		scratch[i] = c
		if !cartesianProduct(choices, scratch, i+1, f) {
			return false
		}
	}
	return true
}
