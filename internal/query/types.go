// Package query implements the structural queries of §4.2: headwaters,
// tailwaters, junctions, reachability, and disjoint reachable-subnetwork
// extraction. None of these mutate the graphs they are given; each returns
// a fresh slice or map.
package query

import (
	"errors"

	"github.com/noaa-owp/reach-decomp/internal/network"
)

// ErrNotDisjoint is returned by ReachableNetwork when check_disjoint is
// requested and two distinct sources reach a common node — a
// GraphInvariantViolation per §7.
var ErrNotDisjoint = errors.New("query: reachable sets are not disjoint")

// Headwaters returns the nodes that are keys of g but appear in no
// downstream list. Re-exported from network so callers of this package
// never need to import network directly for the one query it already
// computes as part of InDegrees.
func Headwaters(g *network.Graph) []network.NodeID {
	return network.Headwaters(g)
}

// Tailwaters returns the nodes that appear in a downstream list but are not
// keys of g, plus keys of g whose downstream list is empty — physical
// river outlets.
//
// Complexity: O(V + E).
func Tailwaters(g *network.Graph) []network.NodeID {
	var out []network.NodeID
	seen := make(map[network.NodeID]struct{})
	for _, src := range g.Keys() {
		children := g.Children(src)
		if len(children) == 0 {
			if _, ok := seen[src]; !ok {
				seen[src] = struct{}{}
				out = append(out, src)
			}
			continue
		}
		for _, dst := range children {
			if g.Has(dst) {
				continue
			}
			if _, ok := seen[dst]; ok {
				continue
			}
			seen[dst] = struct{}{}
			out = append(out, dst)
		}
	}
	return out
}

// Junctions returns the nodes that are the downstream target of more than
// one parent.
//
// Complexity: O(V + E).
func Junctions(g *network.Graph) []network.NodeID {
	counts := make(map[network.NodeID]int)
	var order []network.NodeID
	for _, src := range g.Keys() {
		for _, dst := range g.Children(src) {
			if counts[dst] == 0 {
				order = append(order, dst)
			}
			counts[dst]++
		}
	}
	var out []network.NodeID
	for _, n := range order {
		if counts[n] > 1 {
			out = append(out, n)
		}
	}
	return out
}
