package interp

import "github.com/HiroakiMikami/deep-coder/internal/dsl"

// applyPredicate realises the 4 unary predicates. A non-integer element
// (which cannot arise from a well-typed program, since list elements are
// always integers) is treated as not satisfying the predicate rather than
// panicking.
func applyPredicate(p dsl.PredicateLambda, v Value) bool {
	i, ok := v.IntValue()
	if !ok {
		return false
	}
	switch p {
	case dsl.IsPositive:
		return i > 0
	case dsl.IsNegative:
		return i < 0
	case dsl.IsEven:
		return i%2 == 0
	case dsl.IsOdd:
		m := i % 2
		if m < 0 {
			m = -m
		}
		return m == 1
	default:
		return false
	}
}

// applyOneArg realises the 10 unary arithmetic transforms. Integer
// division rounds toward zero, matching Go's native / operator.
func applyOneArg(l dsl.OneArgumentLambda, v Value) Value {
	i, ok := v.IntValue()
	if !ok {
		return NullValue
	}
	switch l {
	case dsl.Plus1:
		return Int(i + 1)
	case dsl.Minus1:
		return Int(i - 1)
	case dsl.MultiplyMinus1:
		return Int(-i)
	case dsl.Multiply2:
		return Int(i * 2)
	case dsl.Multiply3:
		return Int(i * 3)
	case dsl.Multiply4:
		return Int(i * 4)
	case dsl.Divide2:
		return Int(i / 2)
	case dsl.Divide3:
		return Int(i / 3)
	case dsl.Divide4:
		return Int(i / 4)
	case dsl.Pow2:
		return Int(i * i)
	default:
		return NullValue
	}
}

// applyTwoArg realises the 5 binary arithmetic/comparison transforms used
// by ZipWith and Scanl1.
func applyTwoArg(l dsl.TwoArgumentsLambda, a, b Value) Value {
	x, xok := a.IntValue()
	y, yok := b.IntValue()
	if !xok || !yok {
		return NullValue
	}
	switch l {
	case dsl.Plus:
		return Int(x + y)
	case dsl.Minus:
		return Int(x - y)
	case dsl.Multiply:
		return Int(x * y)
	case dsl.Min:
		if x < y {
			return Int(x)
		}
		return Int(y)
	case dsl.Max:
		if x > y {
			return Int(x)
		}
		return Int(y)
	default:
		return NullValue
	}
}
