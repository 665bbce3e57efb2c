package interp

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// Eval evaluates program on input, returning the final statement's value
// and true, or false if the program is empty. It always succeeds
// structurally (it never "fails" beyond the empty-program case): undefined
// sub-operations simply produce Null, which typically propagates into a
// Null final value.
func Eval(program dsl.Program, input []Value) (Value, bool) {
	if program.Len() == 0 {
		return Value{}, false
	}
	env := NewEnvironment(input)
	for _, stmt := range program.Statements {
		val, next := EvalStatement(stmt, env)
		env = next
		_ = val
	}
	last := program.LastVariable()
	return env.Get(last), true
}

// EvalStatement evaluates one statement against env, returning its value
// together with the environment extended by that binding. This is the
// incremental entry point the typed enumerator's calc_info uses to advance
// a branch by exactly one statement without re-running the whole program.
func EvalStatement(stmt dsl.Statement, env Environment) (Value, Environment) {
	val, offsetDelta := dispatch(stmt, env)
	return val, env.Extended(stmt.Variable, val, offsetDelta)
}

func dispatch(stmt dsl.Statement, env Environment) (Value, int) {
	switch stmt.Function {
	case dsl.ReadInt:
		v, ok := env.InputAt(env.Offset)
		if !ok || v.Kind() != KindInteger {
			return NullValue, 1
		}
		return v, 1
	case dsl.ReadList:
		v, ok := env.InputAt(env.Offset)
		if !ok || v.Kind() != KindList {
			return NullValue, 1
		}
		return v, 1
	case dsl.Head:
		l := resolveList(stmt.Arguments[0], env)
		if len(l) == 0 {
			return NullValue, 0
		}
		return l[0], 0
	case dsl.Last:
		l := resolveList(stmt.Arguments[0], env)
		if len(l) == 0 {
			return NullValue, 0
		}
		return l[len(l)-1], 0
	case dsl.Minimum:
		return reduceExtreme(resolveList(stmt.Arguments[0], env), false), 0
	case dsl.Maximum:
		return reduceExtreme(resolveList(stmt.Arguments[0], env), true), 0
	case dsl.Sum:
		l := resolveList(stmt.Arguments[0], env)
		sum := 0
		for _, e := range l {
			i, ok := e.IntValue()
			if !ok {
				return NullValue, 0
			}
			sum += i
		}
		return Int(sum), 0
	case dsl.Reverse:
		l := resolveList(stmt.Arguments[0], env)
		out := make([]Value, len(l))
		for i, e := range l {
			out[len(l)-1-i] = e
		}
		return List(out), 0
	case dsl.Sort:
		l := resolveList(stmt.Arguments[0], env)
		out := make([]Value, len(l))
		copy(out, l)
		sortInts(out)
		return List(out), 0
	case dsl.Access:
		n, nok := resolveInt(stmt.Arguments[0], env)
		l := resolveList(stmt.Arguments[1], env)
		if !nok || n < 0 || n >= len(l) {
			return NullValue, 0
		}
		return l[n], 0
	case dsl.Take:
		n, nok := resolveInt(stmt.Arguments[0], env)
		l := resolveList(stmt.Arguments[1], env)
		if !nok || n < 0 {
			return List(nil), 0
		}
		if n > len(l) {
			n = len(l)
		}
		out := make([]Value, n)
		copy(out, l[:n])
		return List(out), 0
	case dsl.Drop:
		n, nok := resolveInt(stmt.Arguments[0], env)
		l := resolveList(stmt.Arguments[1], env)
		if !nok || n < 0 || n > len(l) {
			return List(nil), 0
		}
		out := make([]Value, len(l)-n)
		copy(out, l[n:])
		return List(out), 0
	case dsl.Map:
		lam, lok := stmt.Arguments[0].OneArg()
		l := resolveList(stmt.Arguments[1], env)
		if !lok {
			return NullValue, 0
		}
		out := make([]Value, len(l))
		for i, e := range l {
			out[i] = applyOneArg(lam, e)
		}
		return List(out), 0
	case dsl.Filter:
		pred, pok := stmt.Arguments[0].Predicate()
		l := resolveList(stmt.Arguments[1], env)
		if !pok {
			return NullValue, 0
		}
		out := make([]Value, 0, len(l))
		for _, e := range l {
			if applyPredicate(pred, e) {
				out = append(out, e)
			}
		}
		return List(out), 0
	case dsl.Count:
		pred, pok := stmt.Arguments[0].Predicate()
		l := resolveList(stmt.Arguments[1], env)
		if !pok {
			return NullValue, 0
		}
		count := 0
		for _, e := range l {
			if applyPredicate(pred, e) {
				count++
			}
		}
		return Int(count), 0
	case dsl.ZipWith:
		lam, lok := stmt.Arguments[0].TwoArg()
		l1 := resolveList(stmt.Arguments[1], env)
		l2 := resolveList(stmt.Arguments[2], env)
		if !lok {
			return NullValue, 0
		}
		n := len(l1)
		if len(l2) < n {
			n = len(l2)
		}
		out := make([]Value, n)
		for i := 0; i < n; i++ {
			out[i] = applyTwoArg(lam, l1[i], l2[i])
		}
		return List(out), 0
	case dsl.Scanl1:
		lam, lok := stmt.Arguments[0].TwoArg()
		l := resolveList(stmt.Arguments[1], env)
		if !lok || len(l) == 0 {
			return List(nil), 0
		}
		out := make([]Value, len(l))
		out[0] = l[0]
		for i := 1; i < len(l); i++ {
			out[i] = applyTwoArg(lam, out[i-1], l[i])
		}
		return List(out), 0
	default:
		return NullValue, 0
	}
}

func resolveList(arg dsl.Argument, env Environment) []Value {
	v, ok := arg.Variable()
	if !ok {
		return nil
	}
	l, ok := env.Get(v).ListValue()
	if !ok {
		return nil
	}
	return l
}

func resolveInt(arg dsl.Argument, env Environment) (int, bool) {
	v, ok := arg.Variable()
	if !ok {
		return 0, false
	}
	return env.Get(v).IntValue()
}

func reduceExtreme(l []Value, wantMax bool) Value {
	if len(l) == 0 {
		return NullValue
	}
	best, ok := l[0].IntValue()
	if !ok {
		return NullValue
	}
	for _, e := range l[1:] {
		i, ok := e.IntValue()
		if !ok {
			return NullValue
		}
		if (wantMax && i > best) || (!wantMax && i < best) {
			best = i
		}
	}
	return Int(best)
}

func sortInts(xs []Value) {
	// Small-n insertion sort; list length is bounded by LIST_LENGTH in
	// practice so the quadratic cost never matters.
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0; j-- {
			a, aok := xs[j-1].IntValue()
			b, bok := xs[j].IntValue()
			if aok && bok && a > b {
				xs[j-1], xs[j] = xs[j], xs[j-1]
			} else {
				break
			}
		}
	}
}
