// Package engine wires C1-C6 into the single pipeline the HTTP endpoint
// (and any other caller) drives: tabular rows in, depth-ordered reaches
// out. It is the synchronous, single-request-lifetime entry point
// described in §6 — no goroutines, no background state, safe to call
// concurrently from multiple HTTP handlers because every call builds and
// consumes its own graphs.
package engine

import (
	"context"
	"time"

	"github.com/noaa-owp/reach-decomp/internal/ingest"
	"github.com/noaa-owp/reach-decomp/internal/metrics"
	"github.com/noaa-owp/reach-decomp/internal/network"
	"github.com/noaa-owp/reach-decomp/internal/obstrace"
	"github.com/noaa-owp/reach-decomp/internal/reach"
	"github.com/noaa-owp/reach-decomp/internal/toposort"
	"github.com/noaa-owp/reach-decomp/internal/waterbody"
)

// Result bundles everything downstream consumers (C9's handler, tests)
// need from one decomposition run.
type Result struct {
	Connections *network.Graph
	Tuples      []reach.DepthTuple
	Depths      map[int][]reach.Path
	Deps        map[int][]int
}

// Run ingests rows (and, if present, waterbody rows), collapses
// waterbodies, reverses the collapsed graph, and decomposes it using the
// waterbody-and-junction break rule — the standard pipeline described in
// §2's data flow. Depths are normalized so the minimum is zero before
// grouping. The whole run is wrapped in a "reach.decompose" span (§4.8);
// ctx may be context.Background() for callers (tests, non-HTTP entry
// points) that have no request-scoped context to propagate. opts
// overrides the terminal/null sentinels §4.6 defaults to 0 and -9999 —
// C9's handler threads cfg.Ingest's configured values through here.
func Run(ctx context.Context, rows []ingest.Row, waterbodyRows []ingest.Row, opts ...ingest.Option) Result {
	_, span := obstrace.StartDecomposition(ctx, len(rows), len(waterbodyRows))

	start := time.Now()
	defer func() {
		metrics.DecompositionDuration.Observe(time.Since(start).Seconds())
	}()

	connections := ingest.ExtractConnections(rows, opts...)
	w := ingest.ExtractWaterbodies(waterbodyRows, opts...)

	collapsed := waterbody.Collapse(connections, w)
	reversed := network.Reverse(collapsed)

	brk := reach.SplitAtWaterbodiesAndJunctions(w, reversed)
	tuples := reach.NormalizeDepths(reach.Decompose(reversed, brk, nil))

	var paths []reach.Path
	for _, t := range tuples {
		paths = append(paths, t.Path)
	}
	deps := reach.DependencyGraph(paths, collapsed)

	nodeCount := len(network.Nodes(connections))
	metrics.NodesProcessed.Add(float64(nodeCount))
	metrics.ReachesEmitted.Add(float64(len(tuples)))
	obstrace.EndDecomposition(span, nodeCount, len(tuples), nil)

	return Result{
		Connections: collapsed,
		Tuples:      tuples,
		Depths:      reach.GroupByDepth(tuples),
		Deps:        deps,
	}
}

// TopoOrderOfReaches topologically sorts reach indices using result.Deps
// as the adjacency: index i -> index j means reach i's tail flows into
// reach j's head. This is the ?order=topo debug mode of §4.9. It only
// returns the order for inspection; it does not compare it against
// result.Depths.
func TopoOrderOfReaches(result Result) ([]network.NodeID, error) {
	g := network.New()
	for i := range result.Tuples {
		g.Ensure(network.NodeID(i))
	}
	for i, js := range result.Deps {
		for _, j := range js {
			g.Append(network.NodeID(i), network.NodeID(j))
		}
	}
	return toposort.Sort(g)
}
