// Package regexlib compiles regular expressions over literal characters, '|',
// '*', '+' and grouping into an epsilon-free NFA and renders it as a
// transition list.
//
// The pipeline is: explicit concatenation and precedence rewrite (Rewrite),
// operator extraction (Decompose), edge-splitting construction, ε-elimination
// and a single state-merge pass.
package regexlib

import (
	"log/slog"
)

// Options tune the later stages of compilation. The zero value gives the
// default behaviour: closure-discovery edge order and one merge pass.
type Options struct {
	// MergeFixpoint repeats the merge pass until nothing changes.
	MergeFixpoint bool
	// SkipMerge leaves the epsilon-free graph unmerged.
	SkipMerge bool
	// SortTransitions stable-sorts each rewired edge list by label.
	SortTransitions bool
	Logger          *slog.Logger
}

// StageStats are the reachable state and edge counts after a stage.
type StageStats struct {
	Stage   string
	States  int
	Edges   int
	Epsilon int
}

const (
	StageBuilt       = "built"
	StageEpsilonFree = "epsilon-free"
	StageMerged      = "merged"
)

/* ----------- Компиляция ----------- */

// Compile compiles pattern with default options.
func Compile(pattern string) (*NFA, error) {
	return CompileWith(pattern, Options{})
}

// CompileWith compiles pattern. The empty pattern yields a single accepting
// start state without edges. Errors are *CompileError and wrap ErrMalformed
// or ErrUnbalanced; no partial automaton is returned.
func CompileWith(pattern string, opts Options) (*NFA, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	/* 1) переписывание ---------------------------------------------------- */
	rewritten, err := Rewrite(pattern)
	if err != nil {
		return nil, err
	}
	log.Debug("pattern rewritten", "pattern", pattern, "rewritten", rewritten)

	/* 2) построение ------------------------------------------------------- */
	n := &NFA{pattern: pattern, rewritten: rewritten}
	if err := n.build(rewritten); err != nil {
		return nil, err
	}
	n.record(log, StageBuilt)

	/* 3) удаление ε-переходов --------------------------------------------- */
	n.eliminateEpsilon(opts.SortTransitions)
	n.record(log, StageEpsilonFree)

	/* 4) склейка состояний ------------------------------------------------ */
	if !opts.SkipMerge {
		var merged int
		if opts.MergeFixpoint {
			merged = n.mergeFixpoint()
		} else {
			merged = n.MergeEquivalent()
		}
		n.record(log, StageMerged)
		log.Debug("states merged", "merged", merged, "fixpoint", opts.MergeFixpoint)
	}
	return n, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *NFA) record(log *slog.Logger, stage string) {
	st := StageStats{Stage: stage}
	for _, s := range n.reachable() {
		st.States++
		for _, e := range n.states[s].edges {
			st.Edges++
			if e.label == "" {
				st.Epsilon++
			}
		}
	}
	n.stats = append(n.stats, st)
	log.Debug("stage done", "stage", stage, "states", st.States, "edges", st.Edges, "epsilon", st.Epsilon)
}

/* ----------- Симуляция ----------------------------------------------- */

// Accepts reports whether the automaton accepts the whole word.
func (n *NFA) Accepts(word string) bool {
	cur := map[StateID]struct{}{n.start: {}}
	for _, r := range word {
		sym := string(r)
		next := map[StateID]struct{}{}
		for s := range cur {
			for _, e := range n.states[s].edges {
				if e.label == sym {
					next[e.to] = struct{}{}
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		cur = next
	}
	for s := range cur {
		if n.states[s].accept {
			return true
		}
	}
	return false
}

/* ----------- Сервисные геттеры --------------------------------------- */

func (n *NFA) Pattern() string   { return n.pattern }
func (n *NFA) Rewritten() string { return n.rewritten }

// Stats returns the counts recorded after each stage that ran.
func (n *NFA) Stats() []StageStats { return append([]StageStats(nil), n.stats...) }

// StateCount is the number of states reachable from the start state.
func (n *NFA) StateCount() int { return len(n.reachable()) }

// TransitionCount is the number of edges leaving reachable states.
func (n *NFA) TransitionCount() int {
	c := 0
	for _, s := range n.reachable() {
		c += len(n.states[s].edges)
	}
	return c
}
