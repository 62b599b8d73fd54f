// Package reach implements the scheduling kernel of §4.4: a depth-first
// walk of the (typically reversed, collapsed) connection graph that emits
// maximal chains of nodes — reaches — tagged with a depth integer suitable
// for a parallel execution schedule.
package reach

import "github.com/noaa-owp/reach-decomp/internal/network"

// Path is a non-empty ordered sequence of NodeIDs with the invariant: for
// every consecutive pair (a, b), b is the parent of a in the walked graph
// (so a flows into b when the walked graph is the reversed physical
// network). The first element is the "upstream-most" endpoint of the reach
// (when the walked graph is the reversed physical network).
type Path []network.NodeID

// DepthTuple pairs a reach with its scheduling depth. Reaches sharing a
// depth have no dependency on one another and may run concurrently,
// provided every reach at a strictly lower depth has already completed.
//
// Depth may be negative as emitted (see §9's design note on the counter);
// callers that need a zero-based bucket index should use NormalizeDepths.
type DepthTuple struct {
	Depth int
	Path  Path
}

// BreakFunc decides whether candidate may be appended to the
// already-accumulated path while walking upward from a popped stack frame.
// path is nil when BreakFunc is asked the unrelated "does this node open a
// new depth level" question during the main DFS loop (the
// "shouldContinue(nil, node)" call of §4.4's depth-bump rule); it is
// non-nil and holds the reach accumulated so far when BreakFunc is asked
// whether to fuse one more ancestor into the current reach.
type BreakFunc func(path Path, candidate network.NodeID) bool

// SplitAtJunction is true iff candidate has exactly one child in g —
// extending into candidate would not introduce a junction into the reach.
func SplitAtJunction(g *network.Graph) BreakFunc {
	return func(_ Path, candidate network.NodeID) bool {
		return len(g.Children(candidate)) == 1
	}
}

// SplitAtWaterbodiesAndJunctions behaves like SplitAtJunction, except that
// once the most recently added node of a reach is a waterbody member, the
// reach may only continue into another node that is in w (of any
// waterbody). Entering a waterbody from a non-member follows the ordinary
// junction rule, so a channel segment that flows into a waterbody can be
// fused with it; the reach never continues out of the waterbody into a
// non-member.
func SplitAtWaterbodiesAndJunctions(w map[network.NodeID]network.NodeID, g *network.Graph) BreakFunc {
	junction := SplitAtJunction(g)
	return func(path Path, candidate network.NodeID) bool {
		if len(path) == 0 {
			return junction(path, candidate)
		}
		last := path[len(path)-1]
		if _, lastInWaterbody := w[last]; lastInWaterbody {
			_, candidateInWaterbody := w[candidate]
			return candidateInWaterbody
		}
		return junction(path, candidate)
	}
}
