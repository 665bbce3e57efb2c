package codec

import (
	"strings"

	"github.com/HiroakiMikami/deep-coder/internal/dsl"
)

// EncodeStatement renders one statement as "<var> <- <func> <args...>",
// e.g. "a <- head ab".
func EncodeStatement(stmt dsl.Statement) string {
	parts := make([]string, 0, 2+len(stmt.Arguments))
	parts = append(parts, VarName(stmt.Variable), "<-", stmt.Function.String())
	for _, arg := range stmt.Arguments {
		parts = append(parts, encodeArgument(arg))
	}
	return strings.Join(parts, " ")
}

func encodeArgument(arg dsl.Argument) string {
	if v, ok := arg.Variable(); ok {
		return VarName(v)
	}
	if p, ok := arg.Predicate(); ok {
		return p.String()
	}
	if l, ok := arg.OneArg(); ok {
		return l.String()
	}
	if l, ok := arg.TwoArg(); ok {
		return l.String()
	}
	return "?arg"
}

// EncodeProgram renders every statement on its own line, in program order.
func EncodeProgram(p dsl.Program) string {
	lines := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		lines[i] = EncodeStatement(stmt)
	}
	return strings.Join(lines, "\n")
}

// multiWordPredicates lists the predicate textual forms that contain
// embedded spaces, longest-token-count first, so DecodeStatement can match
// them before falling back to a single token.
var multiWordPredicates = []struct {
	tokens int
	text   string
	value  dsl.PredicateLambda
}{
	{3, "%2 == 0", dsl.IsEven},
	{3, "%2 == 1", dsl.IsOdd},
}

// DecodeStatement parses one line produced by EncodeStatement.
func DecodeStatement(line string) (dsl.Statement, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 || tokens[1] != "<-" {
		return dsl.Statement{}, false
	}
	v, ok := VarIndex(tokens[0])
	if !ok {
		return dsl.Statement{}, false
	}
	fn, ok := dsl.FunctionByName(tokens[2])
	if !ok {
		return dsl.Statement{}, false
	}
	sig, ok := dsl.Signatures[fn]
	if !ok {
		return dsl.Statement{}, false
	}
	rest := tokens[3:]
	args := make([]dsl.Argument, 0, len(sig.Args))
	cursor := 0
	for _, slot := range sig.Args {
		arg, consumed, ok := decodeArgument(slot, rest, cursor)
		if !ok {
			return dsl.Statement{}, false
		}
		args = append(args, arg)
		cursor += consumed
	}
	if cursor != len(rest) {
		return dsl.Statement{}, false
	}
	return dsl.Statement{Variable: v, Function: fn, Arguments: args}, true
}

func decodeArgument(slot dsl.ArgKind, tokens []string, cursor int) (dsl.Argument, int, bool) {
	switch slot {
	case dsl.SlotInteger, dsl.SlotList:
		if cursor >= len(tokens) {
			return dsl.Argument{}, 0, false
		}
		v, ok := VarIndex(tokens[cursor])
		if !ok {
			return dsl.Argument{}, 0, false
		}
		return dsl.NewVariableArgument(v), 1, true
	case dsl.SlotOneArgLambda:
		if cursor >= len(tokens) {
			return dsl.Argument{}, 0, false
		}
		l, ok := dsl.OneArgumentLambdaByName(tokens[cursor])
		if !ok {
			return dsl.Argument{}, 0, false
		}
		return dsl.NewOneArgArgument(l), 1, true
	case dsl.SlotTwoArgLambda:
		if cursor >= len(tokens) {
			return dsl.Argument{}, 0, false
		}
		l, ok := dsl.TwoArgumentsLambdaByName(tokens[cursor])
		if !ok {
			return dsl.Argument{}, 0, false
		}
		return dsl.NewTwoArgArgument(l), 1, true
	case dsl.SlotPredicateLambda:
		for _, mw := range multiWordPredicates {
			if cursor+mw.tokens <= len(tokens) && strings.Join(tokens[cursor:cursor+mw.tokens], " ") == mw.text {
				return dsl.NewPredicateArgument(mw.value), mw.tokens, true
			}
		}
		if cursor >= len(tokens) {
			return dsl.Argument{}, 0, false
		}
		p, ok := dsl.PredicateLambdaByName(tokens[cursor])
		if !ok {
			return dsl.Argument{}, 0, false
		}
		return dsl.NewPredicateArgument(p), 1, true
	default:
		return dsl.Argument{}, 0, false
	}
}

// DecodeProgram parses a blank-line-free sequence of statement lines, one
// per program statement, in program order.
func DecodeProgram(text string) (dsl.Program, bool) {
	var stmts []dsl.Statement
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stmt, ok := DecodeStatement(line)
		if !ok {
			return dsl.Program{}, false
		}
		stmts = append(stmts, stmt)
	}
	return dsl.Program{Statements: stmts}, true
}

