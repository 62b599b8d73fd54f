package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noaa-owp/reach-decomp/internal/network"
	"github.com/noaa-owp/reach-decomp/internal/reach"
)

// buildReversed constructs the reversed graph of edges given as (src, dst)
// pairs in the *physical* (downstream) direction, the way engine.Run feeds
// Decompose a reversed, collapsed connection graph.
func buildReversed(edges [][2]network.NodeID, allNodes []network.NodeID) *network.Graph {
	g := network.New()
	for _, n := range allNodes {
		g.Ensure(n)
	}
	for _, e := range edges {
		g.Append(e[0], e[1])
	}
	return network.Reverse(g)
}

// TestDecompose_LinearChain is §8 scenario 1: G = {1->[2], 2->[3], 3->[]}.
// Walked on the reverse from the physical tailwater 3, the whole chain is
// one reach at depth 0. Per §3's invariant, the reach's first element is
// its upstream-most (physical-headwater) endpoint, so the emitted path is
// [1, 2, 3].
func TestDecompose_LinearChain(t *testing.T) {
	rg := buildReversed([][2]network.NodeID{{1, 2}, {2, 3}}, []network.NodeID{1, 2, 3})
	brk := reach.SplitAtJunction(rg)

	tuples := reach.Decompose(rg, brk, nil)
	assert.Equal(t, []reach.DepthTuple{
		{Depth: 0, Path: reach.Path{1, 2, 3}},
	}, tuples)
}

// TestDecompose_YJunction is §8 scenario 2: G = {1->[3], 2->[3], 3->[4],
// 4->[]}. Walked from 4, the junction at 3 forces [1] and [2] off as their
// own singleton reaches one depth level deeper than the fused [3, 4].
func TestDecompose_YJunction(t *testing.T) {
	rg := buildReversed([][2]network.NodeID{{1, 3}, {2, 3}, {3, 4}}, []network.NodeID{1, 2, 3, 4})
	brk := reach.SplitAtJunction(rg)

	tuples := reach.NormalizeDepths(reach.Decompose(rg, brk, nil))

	byDepth := reach.GroupByDepth(tuples)
	assert.Equal(t, []reach.Path{{3, 4}}, byDepth[0])
	assert.ElementsMatch(t, []reach.Path{{1}, {2}}, byDepth[1])
}

// TestDecompose_ParallelTributaries is §8 scenario 3: two independent
// tributaries (1->2->5, 3->4->5) join at 5 before reaching the tailwater 6.
func TestDecompose_ParallelTributaries(t *testing.T) {
	rg := buildReversed([][2]network.NodeID{
		{1, 2}, {2, 5}, {3, 4}, {4, 5}, {5, 6},
	}, []network.NodeID{1, 2, 3, 4, 5, 6})
	brk := reach.SplitAtJunction(rg)

	tuples := reach.NormalizeDepths(reach.Decompose(rg, brk, nil))
	byDepth := reach.GroupByDepth(tuples)

	assert.Equal(t, []reach.Path{{5, 6}}, byDepth[0])
	assert.ElementsMatch(t, []reach.Path{{1, 2}, {3, 4}}, byDepth[1])
}

// TestDecompose_Coverage checks I4: every node of the walked graph appears
// in exactly one emitted reach.
func TestDecompose_Coverage(t *testing.T) {
	rg := buildReversed([][2]network.NodeID{
		{1, 2}, {2, 5}, {3, 4}, {4, 5}, {5, 6},
	}, []network.NodeID{1, 2, 3, 4, 5, 6})
	brk := reach.SplitAtJunction(rg)

	tuples := reach.Decompose(rg, brk, nil)

	seen := make(map[network.NodeID]int)
	for _, tup := range tuples {
		for _, n := range tup.Path {
			seen[n]++
		}
	}
	for _, n := range []network.NodeID{1, 2, 3, 4, 5, 6} {
		assert.Equal(t, 1, seen[n], "node %v should appear exactly once", n)
	}
}

// TestDecompose_ScheduleValidity checks I5: for any dependency between two
// reaches (one's node is an ancestor, in the walked graph, of another's
// head), the depended-upon reach has a strictly lower depth.
func TestDecompose_ScheduleValidity(t *testing.T) {
	rg := buildReversed([][2]network.NodeID{
		{1, 3}, {2, 3}, {3, 4},
	}, []network.NodeID{1, 2, 3, 4})
	brk := reach.SplitAtJunction(rg)

	tuples := reach.Decompose(rg, brk, nil)
	depthOf := make(map[network.NodeID]int)
	for _, tup := range tuples {
		for _, n := range tup.Path {
			depthOf[n] = tup.Depth
		}
	}

	// node 3 (ancestor of 1 and 2 in the walked/reversed graph) must sit
	// at a strictly lower depth than both.
	assert.Less(t, depthOf[3], depthOf[1])
	assert.Less(t, depthOf[3], depthOf[2])
}

func TestDecomposePlain_MatchesDecomposePaths(t *testing.T) {
	rg := buildReversed([][2]network.NodeID{{1, 2}, {2, 3}}, []network.NodeID{1, 2, 3})
	brk := reach.SplitAtJunction(rg)

	tagged := reach.Decompose(rg, brk, nil)
	plain := reach.DecomposePlain(rg, brk, nil)

	assert.Len(t, plain, len(tagged))
	for i, tup := range tagged {
		assert.Equal(t, tup.Path, plain[i])
	}
}

func TestNormalizeDepths_ShiftsToZero(t *testing.T) {
	tuples := []reach.DepthTuple{{Depth: -2, Path: reach.Path{1}}, {Depth: 0, Path: reach.Path{2}}}
	out := reach.NormalizeDepths(tuples)
	assert.Equal(t, 0, out[0].Depth)
	assert.Equal(t, 2, out[1].Depth)
}

// TestSplitAtWaterbodiesAndJunctions_StaysWithinWaterbody walks the same
// chain as §8 scenario 4 (1->2->3->4, waterbody {2,3}) without collapsing
// first: the break rule fuses the headwater into the waterbody (entering
// it is an ordinary single-child continuation) but refuses to continue
// out of the waterbody into node 4, which is emitted as its own reach one
// depth level lower.
func TestSplitAtWaterbodiesAndJunctions_StaysWithinWaterbody(t *testing.T) {
	rg := buildReversed([][2]network.NodeID{{1, 2}, {2, 3}, {3, 4}}, []network.NodeID{1, 2, 3, 4})
	w := map[network.NodeID]network.NodeID{2: 99, 3: 99}
	brk := reach.SplitAtWaterbodiesAndJunctions(w, rg)

	tuples := reach.NormalizeDepths(reach.Decompose(rg, brk, nil))
	byDepth := reach.GroupByDepth(tuples)

	assert.Equal(t, []reach.Path{{4}}, byDepth[0])
	assert.Equal(t, []reach.Path{{1, 2, 3}}, byDepth[1])
}
