package network

// Nodes returns every key of g, followed by every value that is not itself
// a key, each emitted at most once. Order follows §4.1: keys in their
// insertion order, then newly-discovered sink values in first-encounter
// order.
//
// Complexity: O(V + E).
func Nodes(g *Graph) []NodeID {
	out := make([]NodeID, 0, g.Len())
	seen := make(map[NodeID]struct{}, g.Len())
	for _, k := range g.order {
		out = append(out, k)
		seen[k] = struct{}{}
	}
	for _, k := range g.order {
		for _, v := range g.adjacency[k] {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Edge is a single (src, dst) connection.
type Edge struct {
	Src, Dst NodeID
}

// Edges returns every (src, dst) pair in the order dst appears in
// g.Children(src), keys traversed in g's insertion order.
//
// Complexity: O(V + E).
func Edges(g *Graph) []Edge {
	var out []Edge
	for _, src := range g.order {
		for _, dst := range g.adjacency[src] {
			out = append(out, Edge{Src: src, Dst: dst})
		}
	}
	return out
}

// Reverse returns a new graph Gr such that (a, b) is an edge of g iff
// (b, a) is an edge of Gr. Every key of g is also a key of Gr (with an
// empty downstream list if it gains no predecessors). Downstream lists in
// Gr are ordered by the order in which predecessors are discovered while
// scanning g in its key order — this is what makes Reverse deterministic
// and why it is implemented here rather than inverting a map with a single
// pass per node.
//
// Complexity: O(V + E).
func Reverse(g *Graph) *Graph {
	r := New()
	for _, k := range g.order {
		r.Ensure(k)
	}
	for _, src := range g.order {
		for _, dst := range g.adjacency[src] {
			r.Append(dst, src)
		}
	}
	return r
}

// InDegrees returns, for every node, the count of inbound edges. Every
// headwater (a key of g reached by no edge) appears explicitly with value
// zero, matching the Python source's Counter.update(dict.fromkeys(...)).
//
// Complexity: O(V + E).
func InDegrees(g *Graph) map[NodeID]int {
	degs := make(map[NodeID]int, g.Len())
	for _, src := range g.order {
		for _, dst := range g.adjacency[src] {
			degs[dst]++
		}
	}
	for _, h := range Headwaters(g) {
		if _, ok := degs[h]; !ok {
			degs[h] = 0
		}
	}
	return degs
}

// OutDegrees returns, for every node, the count of outbound edges. It is
// defined as InDegrees(Reverse(g)), matching §4.1's "out_degrees(G) is
// equivalent to in_degrees(reverse(G))".
//
// Complexity: O(V + E).
func OutDegrees(g *Graph) map[NodeID]int {
	return InDegrees(Reverse(g))
}

// Headwaters returns the nodes that are keys of g but appear in no
// downstream list — i.e. graph sources. It is declared in this file
// (rather than the query package) because InDegrees depends on it
// directly; query.Headwaters re-exports this exact function so callers
// outside network never need to import network themselves.
//
// Complexity: O(V + E).
func Headwaters(g *Graph) []NodeID {
	isTarget := make(map[NodeID]struct{}, g.Len())
	for _, src := range g.order {
		for _, dst := range g.adjacency[src] {
			isTarget[dst] = struct{}{}
		}
	}
	out := make([]NodeID, 0, g.Len())
	for _, k := range g.order {
		if _, ok := isTarget[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
