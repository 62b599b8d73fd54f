package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noaa-owp/reach-decomp/internal/ingest"
	"github.com/noaa-owp/reach-decomp/internal/network"
)

func TestExtractConnections_TerminalCodeMeansNoDownstream(t *testing.T) {
	rows := []ingest.Row{
		{Source: 1, Target: 2},
		{Source: 2, Target: 0},
	}
	g := ingest.ExtractConnections(rows)

	assert.Equal(t, []network.NodeID{2}, g.Children(1))
	assert.True(t, g.Has(2))
	assert.Empty(t, g.Children(2))
}

func TestExtractConnections_NonPositiveTargetIsAbsent(t *testing.T) {
	rows := []ingest.Row{{Source: 1, Target: -5}}
	g := ingest.ExtractConnections(rows)

	assert.True(t, g.Has(1))
	assert.Empty(t, g.Children(1))
}

// TestExtractConnections_RepeatedSourceAppends documents §9's Open
// Question resolution: a source seen more than once accumulates targets
// onto the same list rather than overwriting it.
func TestExtractConnections_RepeatedSourceAppends(t *testing.T) {
	rows := []ingest.Row{
		{Source: 1, Target: 2},
		{Source: 1, Target: 3},
	}
	g := ingest.ExtractConnections(rows)
	assert.Equal(t, []network.NodeID{2, 3}, g.Children(1))
}

func TestExtractConnections_CustomTerminalCode(t *testing.T) {
	rows := []ingest.Row{{Source: 1, Target: 7}}
	g := ingest.ExtractConnections(rows, ingest.WithTerminalCode(7))
	assert.Empty(t, g.Children(1))
}

func TestExtractWaterbodies_FiltersNullSentinel(t *testing.T) {
	rows := []ingest.Row{
		{Source: 1, Target: -9999},
		{Source: 2, Target: 99},
	}
	w := ingest.ExtractWaterbodies(rows)
	_, has1 := w[1]
	assert.False(t, has1)
	assert.Equal(t, network.NodeID(99), w[2])
}

func TestReverseSurjectiveMapping(t *testing.T) {
	rows := []ingest.Row{
		{Source: 2, Target: 99},
		{Source: 3, Target: 99},
	}
	w := ingest.ExtractWaterbodies(rows)
	order := []network.NodeID{2, 3}

	members := ingest.ReverseSurjectiveMapping(w, order)
	assert.Equal(t, []network.NodeID{2, 3}, members[99])
}

func TestLoadCSV_ParsesConnectionsAndWaterbodies(t *testing.T) {
	csv := "ID,ToID,WaterbodyID\n1,2,-9999\n2,3,99\n3,4,99\n4,0,-9999\n"

	connections, waterbodies, err := ingest.LoadCSV(strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Equal(t, []ingest.Row{
		{Source: 1, Target: 2},
		{Source: 2, Target: 3},
		{Source: 3, Target: 4},
		{Source: 4, Target: 0},
	}, connections)
	assert.Equal(t, []ingest.Row{
		{Source: 1, Target: -9999},
		{Source: 2, Target: 99},
		{Source: 3, Target: 99},
		{Source: 4, Target: -9999},
	}, waterbodies)
}

func TestLoadCSV_MalformedRow(t *testing.T) {
	csv := "ID,ToID\n1,not-a-number\n"
	_, _, err := ingest.LoadCSV(strings.NewReader(csv))

	var malformed *ingest.ErrMalformedRow
	assert.ErrorAs(t, err, &malformed)
}

func TestLoadCSV_NoWaterbodyColumn(t *testing.T) {
	csv := "ID,ToID\n1,2\n"
	connections, waterbodies, err := ingest.LoadCSV(strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Equal(t, []ingest.Row{{Source: 1, Target: 2}}, connections)
	assert.Nil(t, waterbodies)
}
