// Package dsl defines the list-processing domain-specific language: its
// four primitive enumerations, the bit-tagged Argument encoding, and the
// Statement/Program representation built from them.
package dsl

// Function is one of the 17 DSL primitives. ReadInt and ReadList are the
// only two that consume the input stream rather than operating on already
// bound variables.
type Function int

const (
	Head Function = iota
	Last
	Take
	Drop
	Access
	Minimum
	Maximum
	Reverse
	Sort
	Sum
	Map
	Filter
	Count
	ZipWith
	Scanl1
	ReadInt
	ReadList
)

// Functions lists every Function in declaration order. The order matters:
// it is both the enumerator's default iteration order and the layout order
// of the attribute vector (functions minus the two readers come first).
var Functions = []Function{
	Head, Last, Take, Drop, Access, Minimum, Maximum, Reverse, Sort, Sum,
	Map, Filter, Count, ZipWith, Scanl1, ReadInt, ReadList,
}

// NonReaderFunctions is Functions with ReadInt/ReadList excluded; this is
// the slice the attribute vector and the restriction pools iterate over.
var NonReaderFunctions = Functions[:len(Functions)-2]

func (f Function) String() string {
	switch f {
	case Head:
		return "head"
	case Last:
		return "last"
	case Take:
		return "take"
	case Drop:
		return "drop"
	case Access:
		return "access"
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case Reverse:
		return "reverse"
	case Sort:
		return "sort"
	case Sum:
		return "sum"
	case Map:
		return "map"
	case Filter:
		return "filter"
	case Count:
		return "count"
	case ZipWith:
		return "zip_with"
	case Scanl1:
		return "scanl1"
	case ReadInt:
		return "read_int"
	case ReadList:
		return "read_list"
	default:
		return "?function"
	}
}

// FunctionByName is the inverse of Function.String, used by the textual
// codec's decoder.
func FunctionByName(name string) (Function, bool) {
	for _, f := range Functions {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// PredicateLambda is one of the 4 unary boolean predicates used by Filter
// and Count.
type PredicateLambda int

const (
	IsPositive PredicateLambda = iota
	IsNegative
	IsEven
	IsOdd
)

var PredicateLambdas = []PredicateLambda{IsPositive, IsNegative, IsEven, IsOdd}

func (p PredicateLambda) String() string {
	switch p {
	case IsPositive:
		return ">0"
	case IsNegative:
		return "<0"
	case IsEven:
		return "%2 == 0"
	case IsOdd:
		return "%2 == 1"
	default:
		return "?predicate"
	}
}

func PredicateLambdaByName(name string) (PredicateLambda, bool) {
	for _, p := range PredicateLambdas {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// OneArgumentLambda is one of the 10 unary arithmetic transforms used by Map.
type OneArgumentLambda int

const (
	Plus1 OneArgumentLambda = iota
	Minus1
	MultiplyMinus1
	Multiply2
	Multiply3
	Multiply4
	Divide2
	Divide3
	Divide4
	Pow2
)

var OneArgumentLambdas = []OneArgumentLambda{
	Plus1, Minus1, MultiplyMinus1, Multiply2, Multiply3, Multiply4,
	Divide2, Divide3, Divide4, Pow2,
}

func (l OneArgumentLambda) String() string {
	switch l {
	case Plus1:
		return "+1"
	case Minus1:
		return "-1"
	case MultiplyMinus1:
		return "*(-1)"
	case Multiply2:
		return "*2"
	case Multiply3:
		return "*3"
	case Multiply4:
		return "*4"
	case Divide2:
		return "/2"
	case Divide3:
		return "/3"
	case Divide4:
		return "/4"
	case Pow2:
		return "**2"
	default:
		return "?one_arg"
	}
}

func OneArgumentLambdaByName(name string) (OneArgumentLambda, bool) {
	for _, l := range OneArgumentLambdas {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}

// TwoArgumentsLambda is one of the 5 binary arithmetic/comparison
// transforms used by ZipWith and Scanl1.
type TwoArgumentsLambda int

const (
	Plus TwoArgumentsLambda = iota
	Minus
	Multiply
	Min
	Max
)

var TwoArgumentsLambdas = []TwoArgumentsLambda{Plus, Minus, Multiply, Min, Max}

func (l TwoArgumentsLambda) String() string {
	switch l {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	default:
		return "?two_arg"
	}
}

func TwoArgumentsLambdaByName(name string) (TwoArgumentsLambda, bool) {
	for _, l := range TwoArgumentsLambdas {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}
