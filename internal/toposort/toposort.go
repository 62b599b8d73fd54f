// Package toposort implements Kahn's algorithm (§4.5): a linear extension
// of a DAG used both as an alternate node ordering and, via the residual
// in-degree check, as the engine's cycle detector.
package toposort

import (
	"github.com/noaa-owp/reach-decomp/internal/network"
)

// ErrCycleDetected is returned when Sort exhausts the zero-in-degree
// frontier while nodes still carry positive residual in-degree — a
// CycleDetected error per §7. Witness holds one offending node (any node
// with residual in-degree > 0), for diagnosability.
type ErrCycleDetected struct {
	Witness network.NodeID
}

func (e *ErrCycleDetected) Error() string {
	return "toposort: cycle detected"
}

// Is allows errors.Is(err, toposort.ErrCycleSentinel) checks without
// callers needing to know the offending witness.
func (e *ErrCycleDetected) Is(target error) bool {
	_, ok := target.(*ErrCycleDetected)
	return ok
}

// ErrCycleSentinel is a zero-witness instance usable with errors.Is.
var ErrCycleSentinel = &ErrCycleDetected{}

var _ error = (*ErrCycleDetected)(nil)

// Sort computes a Kahn topological ordering of g's nodes: starting from
// the zero-in-degree frontier, it repeatedly removes one node, decrements
// the in-degree of its downstream neighbors, and admits any that reach
// zero. Order among equally-ready nodes follows g's own node order
// (Nodes(g)), which keeps output deterministic and reproducible rather
// than depending on Go's randomized map iteration.
//
// If, after exhausting the frontier, any node retains positive residual
// in-degree, Sort returns ErrCycleDetected naming one such node.
//
// Complexity: O(V + E).
func Sort(g *network.Graph) ([]network.NodeID, error) {
	degrees := network.InDegrees(g)
	allNodes := network.Nodes(g)

	// frontier is a FIFO of zero-in-degree nodes; using allNodes order to
	// seed it keeps ties deterministic.
	var frontier []network.NodeID
	inFrontier := make(map[network.NodeID]struct{}, len(allNodes))
	for _, n := range allNodes {
		if degrees[n] == 0 {
			frontier = append(frontier, n)
			inFrontier[n] = struct{}{}
		}
	}

	order := make([]network.NodeID, 0, len(allNodes))
	for len(frontier) > 0 {
		n := frontier[0]
		frontier = frontier[1:]
		order = append(order, n)

		for _, child := range g.Children(n) {
			degrees[child]--
			if degrees[child] == 0 {
				frontier = append(frontier, child)
			}
		}
	}

	if len(order) < len(allNodes) {
		for _, n := range allNodes {
			if degrees[n] > 0 {
				return nil, &ErrCycleDetected{Witness: n}
			}
		}
	}

	return order, nil
}

// Edges yields (src, dst) pairs with src in Sort's order and dst in g's
// neighbor order, per §4.5.
//
// Complexity: O(V + E).
func Edges(g *network.Graph) ([]network.Edge, error) {
	order, err := Sort(g)
	if err != nil {
		return nil, err
	}
	var out []network.Edge
	for _, src := range order {
		for _, dst := range g.Children(src) {
			out = append(out, network.Edge{Src: src, Dst: dst})
		}
	}
	return out, nil
}
