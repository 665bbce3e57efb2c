// Package dedup implements the dataset deduplicator: a bucket of
// (program, examples) pairs that keeps at most one canonical,
// shortest-known program per I/O equivalence class.
package dedup

import (
	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

// Entry is one stored (program, examples) pair.
type Entry struct {
	Program  dsl.Program
	Examples []interp.Example
}

// Bucket holds entries that share an output shape; the driver is
// responsible for routing programs to the right bucket by input shape.
type Bucket struct {
	entries []Entry
}

// NewBucket returns an empty Bucket.
func NewBucket() *Bucket { return &Bucket{} }

// Entries returns the bucket's current contents. The slice is owned by the
// caller; mutating it does not affect the Bucket.
func (b *Bucket) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Size is the bucket's size in example-bundles: raw example count across
// every stored entry, divided by config.ExampleNum.
func (b *Bucket) Size() int {
	total := 0
	for _, e := range b.entries {
		total += len(e.Examples)
	}
	return total / config.ExampleNum
}

// Offer proposes inserting (program, examples). If an existing entry is
// input/output-equivalent to it, the shorter program wins: the longer one
// (new or existing) is discarded and Offer reports whether the candidate
// itself ended up stored. Otherwise the candidate is inserted outright.
func (b *Bucket) Offer(program dsl.Program, examples []interp.Example) bool {
	for i, e := range b.entries {
		if !equivalent(program, examples, e.Program, e.Examples) {
			continue
		}
		if len(e.Program.Statements) > len(program.Statements) {
			b.entries = append(b.entries[:i:i], b.entries[i+1:]...)
			b.entries = append(b.entries, Entry{Program: program, Examples: examples})
			return true
		}
		return false
	}
	b.entries = append(b.entries, Entry{Program: program, Examples: examples})
	return true
}

// equivalent reports whether p1 and p2 agree on the union of both
// programs' own example inputs.
func equivalent(p1 dsl.Program, ex1 []interp.Example, p2 dsl.Program, ex2 []interp.Example) bool {
	for _, e := range ex2 {
		out, ok := interp.Eval(p1, e.Input)
		if !ok || !out.Equal(e.Output) {
			return false
		}
	}
	for _, e := range ex1 {
		out, ok := interp.Eval(p2, e.Input)
		if !ok || !out.Equal(e.Output) {
			return false
		}
	}
	return true
}
