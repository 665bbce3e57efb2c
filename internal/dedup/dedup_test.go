package dedup

import (
	"testing"

	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

func v(variable uint16) dsl.Argument { return dsl.NewVariableArgument(variable) }

func ints(xs ...int) interp.Value {
	vs := make([]interp.Value, len(xs))
	for i, x := range xs {
		vs[i] = interp.Int(x)
	}
	return interp.List(vs)
}

// TestS5 pins scenario S5: offering p1 = [ReadList; Minimum 0] then
// p2 = [ReadList; Sort 0; Head 1] on equivalent examples keeps only p1,
// the shorter program.
func TestS5(t *testing.T) {
	p1 := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Minimum, Arguments: []dsl.Argument{v(0)}},
	}}
	p2 := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Sort, Arguments: []dsl.Argument{v(0)}},
		{Variable: 2, Function: dsl.Head, Arguments: []dsl.Argument{v(1)}},
	}}
	examples := []interp.Example{
		{Input: []interp.Value{ints(3, 1, 2)}, Output: interp.Int(1)},
	}

	b := NewBucket()
	if !b.Offer(p1, examples) {
		t.Fatal("expected p1 to be accepted")
	}
	if b.Offer(p2, examples) {
		t.Fatal("expected p2 to be rejected since p1 is already shorter")
	}
	entries := b.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one stored entry, got %d", len(entries))
	}
	if entries[0].Program.Len() != p1.Len() {
		t.Fatalf("expected the stored program to be p1 (length %d), got length %d", p1.Len(), entries[0].Program.Len())
	}
}

// TestOfferReplacesLongerExisting confirms the symmetric case: offering a
// shorter equivalent program after a longer one replaces the longer one.
func TestOfferReplacesLongerExisting(t *testing.T) {
	p1 := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Sort, Arguments: []dsl.Argument{v(0)}},
		{Variable: 2, Function: dsl.Head, Arguments: []dsl.Argument{v(1)}},
	}}
	p2 := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Minimum, Arguments: []dsl.Argument{v(0)}},
	}}
	examples := []interp.Example{
		{Input: []interp.Value{ints(3, 1, 2)}, Output: interp.Int(1)},
	}
	b := NewBucket()
	if !b.Offer(p1, examples) {
		t.Fatal("expected p1 to be accepted")
	}
	if !b.Offer(p2, examples) {
		t.Fatal("expected shorter p2 to replace longer p1")
	}
	entries := b.Entries()
	if len(entries) != 1 || entries[0].Program.Len() != p2.Len() {
		t.Fatalf("expected only the shorter p2 to remain, got %+v", entries)
	}
}

// TestInequivalentProgramsBothKept pins invariant 6: non I/O-equivalent
// programs both persist.
func TestInequivalentProgramsBothKept(t *testing.T) {
	p1 := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Minimum, Arguments: []dsl.Argument{v(0)}},
	}}
	p2 := dsl.Program{Statements: []dsl.Statement{
		{Variable: 0, Function: dsl.ReadList},
		{Variable: 1, Function: dsl.Maximum, Arguments: []dsl.Argument{v(0)}},
	}}
	ex1 := []interp.Example{{Input: []interp.Value{ints(3, 1, 2)}, Output: interp.Int(1)}}
	ex2 := []interp.Example{{Input: []interp.Value{ints(3, 1, 2)}, Output: interp.Int(3)}}

	b := NewBucket()
	b.Offer(p1, ex1)
	b.Offer(p2, ex2)
	if len(b.Entries()) != 2 {
		t.Fatalf("expected both inequivalent programs to be kept, got %d entries", len(b.Entries()))
	}
}
