// Package network defines the directed-graph representation shared by every
// other decomposition package: a mapping from NodeID to an ordered list of
// downstream NodeIDs, plus the primitive queries (enumeration, reversal,
// degree counting) that the rest of the engine builds on.
//
// A Graph is built once — by ingest.ExtractConnections or by
// waterbody.Collapse — and is never mutated afterward. Every derived view
// (Reverse, degree maps) is a fresh Graph or map; callers may hold onto a
// Graph across goroutines without synchronization because nothing in this
// package ever writes to one after it is returned.
package network

import "errors"

// NodeID identifies a stream segment (or, after waterbody collapse, a
// synthetic waterbody node). It is a defined int64 rather than a generic
// comparable type because every producer of ids in this system — the
// tabular ingestion rows and the waterbody codes that share their id space
// after collapse — is already integral; treating it as an opaque int64
// keeps map-key semantics identical to the source tables without forcing
// callers to thread a type parameter through every package in the engine.
type NodeID int64

// ErrUnknownNode is never returned by the primitives in this package.
// Graph.Children and the degree maps treat an id absent from the graph as
// having no outgoing edges, matching the design that tailwater sinks are
// implicit rather than explicit errors. The sentinel is declared here so
// that callers who need to distinguish "known, no children" from "never
// heard of this node" can do so explicitly via Graph.Has.
var ErrUnknownNode = errors.New("network: unknown node")

// Graph is a directed graph represented as node -> ordered downstream list.
// The key set defines the "known" nodes; a NodeID that appears only as a
// downstream target (a tailwater sink) is implicit and not a key.
//
// The zero value is not usable; construct with New.
type Graph struct {
	adjacency map[NodeID][]NodeID
	// order preserves first-insertion order of keys, independent of Go's
	// randomized map iteration, so that Nodes/Edges/Reverse stay
	// reproducible given identical input order (§5 ordering guarantees).
	order []NodeID
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[NodeID][]NodeID)}
}

// Has reports whether id is a key of the graph (as opposed to an implicit
// tailwater sink that only appears as some other node's downstream target).
func (g *Graph) Has(id NodeID) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Children returns the ordered downstream list for id. If id is not a key
// of the graph, it returns nil rather than an error — unknown nodes behave
// as leaves with no children, per §7's UnknownNode policy.
func (g *Graph) Children(id NodeID) []NodeID {
	return g.adjacency[id]
}

// Ensure inserts id with an empty downstream list if it is not already
// present, otherwise it is a no-op. This is the "default-constructing
// collection lookup" helper called out in §9 of the design notes: every
// derived graph (Reverse, waterbody collapse) must register a key the
// first time it is mentioned, even if it never gains a child.
func (g *Graph) Ensure(id NodeID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
		g.order = append(g.order, id)
	}
}

// Append registers id as a key (if new) and appends child to its downstream
// list, preserving insertion order. This is the single mutation primitive
// used while building a Graph; once construction finishes, callers treat
// the Graph as immutable.
func (g *Graph) Append(id, child NodeID) {
	g.Ensure(id)
	g.adjacency[id] = append(g.adjacency[id], child)
}

// Keys returns the graph's key set in first-insertion order.
func (g *Graph) Keys() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)
	return out
}

// Len reports the number of keys in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}
