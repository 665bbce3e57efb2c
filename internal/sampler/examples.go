package sampler

import (
	"math/rand"

	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/constraints"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

// inputKind pairs an input variable with whether it is read by ReadInt or
// ReadList, in the order the program reads it.
type inputKind struct {
	variable uint16
	isList   bool
}

func readOrder(program dsl.Program) []inputKind {
	var out []inputKind
	for _, stmt := range program.Statements {
		switch stmt.Function {
		case dsl.ReadInt:
			out = append(out, inputKind{variable: stmt.Variable, isList: false})
		case dsl.ReadList:
			out = append(out, inputKind{variable: stmt.Variable, isList: true})
		}
	}
	return out
}

// GenerateExamples runs the constraint analyser, then attempts up to 100*n
// random draws, building one input tuple per attempt, evaluating program
// on it, and keeping the draw iff the output is non-Null and every
// integer it contains lies in [IntegerMin, IntegerMax]. It returns
// whatever examples were collected, which may be fewer than n (including
// zero) if the budget is exhausted first.
func GenerateExamples(rng *rand.Rand, program dsl.Program, n int) []interp.Example {
	c, ok := constraints.Analyze(program)
	if !ok {
		return nil
	}
	order := readOrder(program)
	results := make([]interp.Example, 0, n)
	attempts := 100 * n
	for i := 0; i < attempts && len(results) < n; i++ {
		input, ok := buildInput(rng, c, order)
		if !ok {
			continue
		}
		output, ok := interp.Eval(program, input)
		if !ok || output.IsNull() {
			continue
		}
		if !output.AllIntegersInRange(config.IntegerMin, config.IntegerMax) {
			continue
		}
		results = append(results, interp.Example{Input: input, Output: output})
	}
	return results
}

func buildInput(rng *rand.Rand, c *constraints.Constraint, order []inputKind) ([]interp.Value, bool) {
	input := make([]interp.Value, len(order))
	for i, slot := range order {
		if slot.isList {
			lc := c.ListVariables[slot.variable]
			if lc == nil {
				lc = &constraints.ListConstraint{Signs: map[constraints.Sign]bool{}, Parities: map[constraints.Parity]bool{}}
			}
			xs, ok := GenerateList(rng, lc)
			if !ok {
				return nil, false
			}
			input[i] = interp.List(xs)
		} else {
			ic := c.IntegerVariables[slot.variable]
			v, ok := GenerateInteger(rng, ic)
			if !ok {
				return nil, false
			}
			input[i] = interp.Int(v)
		}
	}
	return input, true
}
