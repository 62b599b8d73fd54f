package reach

import "github.com/noaa-owp/reach-decomp/internal/network"

// DependencyGraph builds a dependency relation between reaches, indexed by
// their position in segments: for each reach i, DependencyGraph[i] holds
// the index of the reach whose upstream-most node is the physical
// downstream target of reach i's own tail (segments[i][len-1]), looked up
// in connections — the forward, uncollapsed-or-collapsed connection graph,
// not the reversed graph Decompose walks.
//
// This supplements §4.4's depth integer (which only bounds a safe
// schedule) with the exact adjacency a scheduler can use to build a tight
// execution DAG: grounded in the original segment_deps helper that the
// distilled spec's decomposition section omitted.
//
// Complexity: O(number of segments).
func DependencyGraph(segments []Path, connections *network.Graph) map[int][]int {
	headIndex := make(map[network.NodeID]int, len(segments))
	for i, s := range segments {
		if len(s) > 0 {
			headIndex[s[0]] = i
		}
	}

	deps := make(map[int][]int)
	for i, s := range segments {
		if len(s) == 0 {
			continue
		}
		tail := s[len(s)-1]
		children := connections.Children(tail)
		if len(children) == 0 {
			continue
		}
		if j, ok := headIndex[children[0]]; ok {
			deps[i] = append(deps[i], j)
		}
	}
	return deps
}
