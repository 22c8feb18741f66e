package profile

import "github.com/casworth/xsect/pkg/brep"

// LoopSet aggregates boundary loops, possibly from several faces, and
// partitions them into outer boundaries and holes.
type LoopSet struct {
	sess  brep.Session
	loops []brep.Loop
}

// NewLoopSet returns an empty loop set measured through sess.
func NewLoopSet(sess brep.Session) *LoopSet {
	return &LoopSet{sess: sess}
}

// Add appends loops to the set.
func (ls *LoopSet) Add(loops ...brep.Loop) {
	ls.loops = append(ls.loops, loops...)
}

// Len returns the number of loops held.
func (ls *LoopSet) Len() int {
	return len(ls.loops)
}

// Outer returns the outer-boundary loops.
func (ls *LoopSet) Outer() []brep.Loop {
	var out []brep.Loop
	for _, l := range ls.loops {
		if ls.sess.IsOuter(l) {
			out = append(out, l)
		}
	}
	return out
}

// Holes returns the inner (hole) loops.
func (ls *LoopSet) Holes() []brep.Loop {
	var out []brep.Loop
	for _, l := range ls.loops {
		if !ls.sess.IsOuter(l) {
			out = append(out, l)
		}
	}
	return out
}

// Edges flattens every contained loop's edges into one sequence. Edges
// shared across loops are not de-duplicated here; callers de-duplicate by
// edge identity where it matters.
func (ls *LoopSet) Edges() []brep.Edge {
	var out []brep.Edge
	for _, l := range ls.loops {
		out = append(out, ls.sess.Edges(l)...)
	}
	return out
}
