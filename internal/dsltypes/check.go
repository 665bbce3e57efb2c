package dsltypes

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// Check validates a single statement against env and, on success, returns
// the environment extended with stmt.Variable bound to the function's
// return type. It fails if: the argument count doesn't match the
// function's signature; any argument's kind doesn't match its slot
// (variable arguments must further resolve to the slot's ValueType in
// env); or stmt.Variable is already bound in env.
func Check(stmt dsl.Statement, env Environment) (Environment, bool) {
	if env.Has(stmt.Variable) {
		return Environment{}, false
	}
	sig, ok := dsl.Signatures[stmt.Function]
	if !ok {
		return Environment{}, false
	}
	if len(stmt.Arguments) != len(sig.Args) {
		return Environment{}, false
	}
	for i, slot := range sig.Args {
		if !argMatchesSlot(stmt.Arguments[i], slot, env) {
			return Environment{}, false
		}
	}
	return env.Extended(stmt.Variable, sig.Return), true
}

func argMatchesSlot(arg dsl.Argument, slot dsl.ArgKind, env Environment) bool {
	switch slot {
	case dsl.SlotInteger:
		v, ok := arg.Variable()
		if !ok {
			return false
		}
		t, bound := env.Get(v)
		return bound && t == dsl.TInteger
	case dsl.SlotList:
		v, ok := arg.Variable()
		if !ok {
			return false
		}
		t, bound := env.Get(v)
		return bound && t == dsl.TList
	case dsl.SlotPredicateLambda:
		_, ok := arg.Predicate()
		return ok
	case dsl.SlotOneArgLambda:
		_, ok := arg.OneArg()
		return ok
	case dsl.SlotTwoArgLambda:
		_, ok := arg.TwoArg()
		return ok
	default:
		return false
	}
}

// IsValid folds Check across every statement of p starting from an empty
// environment, returning whether the whole program is well-typed.
func IsValid(p dsl.Program) bool {
	_, ok := GenerateTypeEnvironment(p)
	return ok
}

// GenerateTypeEnvironment is the single point other components call when
// they need the final type environment of a program: it folds Check
// across every statement, failing as soon as any one does.
func GenerateTypeEnvironment(p dsl.Program) (Environment, bool) {
	env := NewEnvironment()
	for _, stmt := range p.Statements {
		next, ok := Check(stmt, env)
		if !ok {
			return Environment{}, false
		}
		env = next
	}
	return env, true
}
