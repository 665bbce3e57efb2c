package synth

import (
	"github.com/HiroakiMikami/deep-coder/internal/attribute"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/enumerate"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

// stepInfo is the per-branch accumulator threaded through the enumerator:
// one Environment per example, each advanced by exactly the statements the
// branch has appended so far.
type stepInfo struct {
	envs []interp.Environment
}

// calcInfo advances every example Environment by newProgram's final
// statement. interp.EvalStatement never fails structurally (undefined
// operations simply yield Null), so every branch the enumerator hands us
// has already been pruned for well-typedness by dsltypes.Check; there is
// nothing left here that can reject a statement.
func calcInfo(newProgram dsl.Program, info stepInfo) stepInfo {
	stmt := newProgram.Statements[len(newProgram.Statements)-1]
	envs := make([]interp.Environment, len(info.envs))
	for i, e := range info.envs {
		_, next := interp.EvalStatement(stmt, e)
		envs[i] = next
	}
	return stepInfo{envs: envs}
}

// matches reports whether, for every example, the program's last variable
// is bound (in info's environments) to that example's expected output.
func matches(program dsl.Program, info stepInfo, examples []interp.Example) bool {
	last := program.LastVariable()
	for i, ex := range examples {
		if !info.envs[i].Get(last).Equal(ex.Output) {
			return false
		}
	}
	return true
}

// search runs the shared skeleton against one restriction: synthesise the
// read prefix, build initial per-example environments, and enumerate until
// a program matches every example or the restriction's window is
// exhausted.
func search(examples []interp.Example, restriction enumerate.Restriction) (dsl.Program, bool) {
	if len(examples) == 0 {
		return dsl.Program{}, false
	}
	prefix := synthesizePrefix(examples[0].Input)
	initial := stepInfo{envs: buildEnvironments(prefix, examples)}

	var found dsl.Program
	ok := false
	enumerate.Enumerate(restriction, calcInfo, func(program dsl.Program, info stepInfo) bool {
		if matches(program, info, examples) {
			found, ok = program, true
			return false
		}
		return true
	}, prefix, initial)
	return found, ok
}

// DFS is the attribute-ordered strategy: every primitive pool starts fully
// populated, sorted descending by its attribute score, so the search
// explores programs in order of plausibility. The length window is
// [len(prefix)+1, len(prefix)+maxLength].
func DFS(examples []interp.Example, attr attribute.Attribute, maxLength int) (dsl.Program, bool) {
	if len(examples) == 0 {
		return dsl.Program{}, false
	}
	prefixLen := len(examples[0].Input)
	restriction := fullRestriction(attr, prefixLen+1, prefixLen+maxLength)
	return search(examples, restriction)
}

// SortAndAdd starts every pool empty and grows it one primitive at a time,
// always the highest-scoring primitive across the four queues not yet
// added (ties: function > predicate > one-arg > two-arg), re-running the
// enumerator after each addition until a program is found or every queue
// is exhausted. This avoids wasting time on branches that need a
// low-confidence primitive until the high-confidence subset has been
// fully explored.
func SortAndAdd(examples []interp.Example, attr attribute.Attribute, maxLength int) (dsl.Program, bool) {
	if len(examples) == 0 {
		return dsl.Program{}, false
	}
	prefixLen := len(examples[0].Input)
	pools := newGrowingPools(attr)
	for {
		restriction := pools.restriction(prefixLen+1, prefixLen+maxLength)
		if program, ok := search(examples, restriction); ok {
			return program, true
		}
		if pools.exhausted() {
			return dsl.Program{}, false
		}
		pools.addNext(attr)
	}
}
