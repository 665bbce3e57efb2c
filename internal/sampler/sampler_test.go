package sampler

import (
	"math/rand"
	"testing"

	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/constraints"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

func intPtr(i int) *int { return &i }

func TestGenerateIntegerRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := &constraints.IntegerConstraint{Min: intPtr(3), Max: intPtr(5)}
	for i := 0; i < 200; i++ {
		got, ok := GenerateInteger(rng, c)
		if !ok {
			t.Fatal("GenerateInteger failed")
		}
		if got < 3 || got > 5 {
			t.Fatalf("GenerateInteger = %d, outside [3,5]", got)
		}
	}
}

func TestGenerateIntegerEvenParity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	even := true
	c := &constraints.IntegerConstraint{Min: intPtr(-10), Max: intPtr(10), IsEven: &even}
	for i := 0; i < 200; i++ {
		got, ok := GenerateInteger(rng, c)
		if !ok {
			t.Fatal("GenerateInteger failed")
		}
		if got%2 != 0 {
			t.Fatalf("GenerateInteger = %d, want even", got)
		}
	}
}

func TestGenerateIntegerEmptyWindowFails(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := &constraints.IntegerConstraint{Min: intPtr(10), Max: intPtr(5)}
	if _, ok := GenerateInteger(rng, c); ok {
		t.Fatal("expected GenerateInteger to fail on an empty window")
	}
}

func TestGenerateListLengthWidensOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	small := 2
	c := &constraints.ListConstraint{MaxLength: &small, Signs: map[constraints.Sign]bool{}, Parities: map[constraints.Parity]bool{}}
	sawLonger := false
	for i := 0; i < 500; i++ {
		xs, ok := GenerateList(rng, c)
		if !ok {
			t.Fatal("GenerateList failed")
		}
		if len(xs) > small {
			sawLonger = true
		}
	}
	if !sawLonger {
		t.Fatalf("expected GenerateList to sometimes exceed max_length=%d up to config.ListLength=%d (widening, not capping)", small, config.ListLength)
	}
}

// TestGenerateExamplesInvariants pins invariant 3: every generated example
// evaluates to its recorded output, which is never Null and stays within
// [INTEGER_MIN, INTEGER_MAX].
func TestGenerateExamplesInvariants(t *testing.T) {
	program := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Sum, Arguments: []dsl.Argument{dsl.NewVariableArgument(0)}},
	}}
	rng := rand.New(rand.NewSource(7))
	examples := GenerateExamples(rng, program, 5)
	if len(examples) == 0 {
		t.Fatal("expected at least one example")
	}
	for _, e := range examples {
		if e.Output.IsNull() {
			t.Error("generated example output should never be Null")
		}
		if !e.Output.AllIntegersInRange(config.IntegerMin, config.IntegerMax) {
			t.Errorf("generated output %v out of range", e.Output)
		}
		got, ok := interp.Eval(program, e.Input)
		if !ok || !got.Equal(e.Output) {
			t.Errorf("eval(program, %v) = %v, want recorded output %v", e.Input, got, e.Output)
		}
	}
}
