package waterbody_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noaa-owp/reach-decomp/internal/network"
	"github.com/noaa-owp/reach-decomp/internal/waterbody"
)

// chainWithWaterbody builds §8 scenario 4: G = {1->[2], 2->[3], 3->[4],
// 4->[]}, W = {2: 99, 3: 99}.
func chainWithWaterbody() (*network.Graph, waterbody.Membership) {
	g := network.New()
	g.Append(1, 2)
	g.Append(2, 3)
	g.Append(3, 4)
	g.Ensure(4)

	w := waterbody.Membership{2: 99, 3: 99}
	return g, w
}

func TestShore(t *testing.T) {
	g, _ := chainWithWaterbody()
	shore := waterbody.Shore(g, []network.NodeID{2, 3})
	assert.Equal(t, []network.NodeID{4}, shore)
}

func TestShore_ExcludesInternalMembers(t *testing.T) {
	g := network.New()
	g.Append(10, 11)
	g.Append(11, 10) // a cycle within the waterbody itself would not leak out
	g.Append(11, 12)

	shore := waterbody.Shore(g, []network.NodeID{10, 11})
	assert.Equal(t, []network.NodeID{12}, shore)
}

func TestBoundary(t *testing.T) {
	g, w := chainWithWaterbody()
	assert.True(t, waterbody.Boundary(g, w, 1), "1's child 2 is in the waterbody")
	assert.False(t, waterbody.Boundary(g, w, 2), "2 is itself a waterbody member")
	assert.False(t, waterbody.Boundary(g, w, 4), "4 has no children")
}

func TestCollapse_Scenario4(t *testing.T) {
	g, w := chainWithWaterbody()
	collapsed := waterbody.Collapse(g, w)

	assert.True(t, collapsed.Has(99))
	assert.Equal(t, []network.NodeID{99}, collapsed.Children(1))
	assert.Equal(t, []network.NodeID{4}, collapsed.Children(99))
	assert.Empty(t, collapsed.Children(4))
	assert.False(t, collapsed.Has(2))
	assert.False(t, collapsed.Has(3))
}

func TestSeparate(t *testing.T) {
	g, w := chainWithWaterbody()
	separated := waterbody.Separate(g, w)

	sub := separated[99]
	assert.True(t, sub.Has(2))
	assert.True(t, sub.Has(3))
	assert.Equal(t, []network.NodeID{3}, sub.Children(2))
	// 3's only downstream target (4) is outside the waterbody, so it is
	// filtered out of the subgraph's neighbor list.
	assert.Empty(t, sub.Children(3))
}
