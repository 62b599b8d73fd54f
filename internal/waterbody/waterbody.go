// Package waterbody implements the overlay of §4.3: collapsing sets of
// nodes that belong to the same reservoir or lake into a single synthetic
// node identified by the WaterbodyID, so that the decomposition engine can
// treat a waterbody as one scheduling unit.
package waterbody

import "github.com/noaa-owp/reach-decomp/internal/network"

// Membership maps a NodeID to the WaterbodyID (itself a NodeID, since the
// two share an identifier space after collapse) of the waterbody it
// belongs to. A node absent from Membership belongs to no waterbody.
type Membership map[network.NodeID]network.NodeID

// Shore returns the union of downstream children of the given waterbody
// nodes, filtered to exclude any node that is itself a member of the same
// set. Order is first-encounter across the members in the order given,
// which keeps Shore deterministic across runs given identical input order
// (§4.3's "insertion-ordered set" requirement).
//
// Complexity: O(sum of out-degrees of members).
func Shore(g *network.Graph, members []network.NodeID) []network.NodeID {
	inSet := make(map[network.NodeID]struct{}, len(members))
	for _, m := range members {
		inSet[m] = struct{}{}
	}

	var shore []network.NodeID
	seen := make(map[network.NodeID]struct{})
	for _, m := range members {
		for _, child := range g.Children(m) {
			if _, inside := inSet[child]; inside {
				continue
			}
			if _, already := seen[child]; already {
				continue
			}
			seen[child] = struct{}{}
			shore = append(shore, child)
		}
	}
	return shore
}

// Boundary reports whether n is eligible to have one of its children
// substituted by a waterbody code: n itself must not be in a waterbody, n
// must be a known node, and at least one child of n must be in W.
func Boundary(g *network.Graph, w Membership, n network.NodeID) bool {
	if _, inWaterbody := w[n]; inWaterbody {
		return false
	}
	if !g.Has(n) {
		return false
	}
	for _, child := range g.Children(n) {
		if _, ok := w[child]; ok {
			return true
		}
	}
	return false
}

// reverseMembers returns, for each WaterbodyID, its member NodeIDs in
// first-encounter order over order (w itself has no intrinsic order as a
// map, so callers drive this from the graph's own order: Collapse passes
// g.Keys(), Separate passes network.Nodes(g)).
func reverseMembers(order []network.NodeID, w Membership) map[network.NodeID][]network.NodeID {
	out := make(map[network.NodeID][]network.NodeID)
	for _, n := range order {
		if code, ok := w[n]; ok {
			out[code] = append(out[code], n)
		}
	}
	return out
}

// Separate returns, for each WaterbodyID, a subgraph restricted to that
// waterbody's own member nodes with downstream lists filtered to in-body
// targets only.
//
// Complexity: O(V + E).
func Separate(g *network.Graph, w Membership) map[network.NodeID]*network.Graph {
	byCode := reverseMembers(network.Nodes(g), w)

	out := make(map[network.NodeID]*network.Graph, len(byCode))
	for code, members := range byCode {
		sub := network.New()
		for _, n := range members {
			if !g.Has(n) {
				continue
			}
			for _, child := range g.Children(n) {
				if _, inBody := w[child]; inBody && w[child] == code {
					sub.Append(n, child)
				} else {
					sub.Ensure(n)
				}
			}
			if len(g.Children(n)) == 0 {
				sub.Ensure(n)
			}
		}
		out[code] = sub
	}
	return out
}

// Collapse replaces each waterbody's node set with a single synthetic node
// identified by its WaterbodyID, and returns a new graph — g itself is
// never modified.
//
// Nodes are visited in g's key order. For each node n:
//  1. If n belongs to a waterbody with code c: emit (c -> Shore) the first
//     time c is encountered; subsequent members of the same waterbody
//     contribute nothing further (their shore was already folded in).
//  2. Else if n is a Boundary node (some child is in a waterbody), emit n
//     with its children, substituting each in-waterbody child by its code.
//  3. Else copy (n -> children) unchanged.
//
// Complexity: O(V + E).
func Collapse(g *network.Graph, w Membership) *network.Graph {
	out := network.New()
	emittedCode := make(map[network.NodeID]struct{})
	byCode := reverseMembers(g.Keys(), w)

	for _, n := range g.Keys() {
		if code, inWaterbody := w[n]; inWaterbody {
			if _, already := emittedCode[code]; already {
				continue
			}
			emittedCode[code] = struct{}{}

			out.Ensure(code)
			for _, s := range Shore(g, byCode[code]) {
				out.Append(code, s)
			}
			continue
		}

		if Boundary(g, w, n) {
			out.Ensure(n)
			for _, child := range g.Children(n) {
				if code, ok := w[child]; ok {
					out.Append(n, code)
				} else {
					out.Append(n, child)
				}
			}
			continue
		}

		out.Ensure(n)
		for _, child := range g.Children(n) {
			out.Append(n, child)
		}
	}

	return out
}
