package dsl

// Statement binds Variable to the result of applying Function to
// Arguments. Variable is the 16-bit index the source numbers
// 0..n-1 matching statement position, though nothing in this package
// requires that convention.
type Statement struct {
	Variable  uint16
	Function  Function
	Arguments []Argument
}

// Program is an ordered sequence of statements. Well-formedness is decided
// by package dsltypes, not by this package.
type Program struct {
	Statements []Statement
}

// Len is the number of statements in the program.
func (p Program) Len() int { return len(p.Statements) }

// LastVariable returns the variable bound by the final statement. Calling
// it on an empty program panics; callers are expected to have checked
// p.Len() > 0 first, mirroring eval's own precondition.
func (p Program) LastVariable() uint16 {
	return p.Statements[len(p.Statements)-1].Variable
}

// Clone returns a deep copy of the program: a new statement slice and a
// new Arguments slice for every statement, so mutating the clone never
// affects the original. The enumerator clones the program every time it hands one to a
// caller so the caller may retain it past the call that produced it.
func (p Program) Clone() Program {
	out := make([]Statement, len(p.Statements))
	for i, s := range p.Statements {
		args := make([]Argument, len(s.Arguments))
		copy(args, s.Arguments)
		out[i] = Statement{Variable: s.Variable, Function: s.Function, Arguments: args}
	}
	return Program{Statements: out}
}

// Extended returns a new Program equal to p with stmt appended. p itself is
// left untouched.
func (p Program) Extended(stmt Statement) Program {
	out := make([]Statement, len(p.Statements)+1)
	copy(out, p.Statements)
	out[len(p.Statements)] = stmt
	return Program{Statements: out}
}

// ArgKind names the kind of value a single argument slot accepts.
type ArgKind int

const (
	SlotInteger ArgKind = iota
	SlotList
	SlotPredicateLambda
	SlotOneArgLambda
	SlotTwoArgLambda
)

// ValueType is the type assigned to a bound variable: every DSL value is
// either an Integer or a List.
type ValueType int

const (
	TInteger ValueType = iota
	TList
)

// Signature describes one Function's argument slots and return type.
type Signature struct {
	Args   []ArgKind
	Return ValueType
}

// Signatures is the signature table from spec section 3's table, keyed by
// Function.
var Signatures = map[Function]Signature{
	Head:     {Args: []ArgKind{SlotList}, Return: TInteger},
	Last:     {Args: []ArgKind{SlotList}, Return: TInteger},
	Minimum:  {Args: []ArgKind{SlotList}, Return: TInteger},
	Maximum:  {Args: []ArgKind{SlotList}, Return: TInteger},
	Sum:      {Args: []ArgKind{SlotList}, Return: TInteger},
	Access:   {Args: []ArgKind{SlotInteger, SlotList}, Return: TInteger},
	Take:     {Args: []ArgKind{SlotInteger, SlotList}, Return: TList},
	Drop:     {Args: []ArgKind{SlotInteger, SlotList}, Return: TList},
	Reverse:  {Args: []ArgKind{SlotList}, Return: TList},
	Sort:     {Args: []ArgKind{SlotList}, Return: TList},
	Map:      {Args: []ArgKind{SlotOneArgLambda, SlotList}, Return: TList},
	Filter:   {Args: []ArgKind{SlotPredicateLambda, SlotList}, Return: TList},
	Count:    {Args: []ArgKind{SlotPredicateLambda, SlotList}, Return: TInteger},
	ZipWith:  {Args: []ArgKind{SlotTwoArgLambda, SlotList, SlotList}, Return: TList},
	Scanl1:   {Args: []ArgKind{SlotTwoArgLambda, SlotList}, Return: TList},
	ReadInt:  {Args: nil, Return: TInteger},
	ReadList: {Args: nil, Return: TList},
}
