// Package metrics exposes Prometheus instrumentation for the decomposition
// pipeline, grounded in the teacher pack's use of
// github.com/prometheus/client_golang (see
// yesoreyeram-thaiyyal/backend/pkg/server, which serves promhttp.Handler()
// on /metrics). reachd registers these against the default registry and
// serves them the same way.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RunsTotal counts decomposition requests, labeled by outcome
// ("ok", "cycle_detected", "malformed_input").
var RunsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reachd_runs_total",
		Help: "Total number of decomposition runs, by outcome.",
	},
	[]string{"outcome"},
)

// NodesProcessed counts the number of graph nodes seen across all runs.
var NodesProcessed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "reachd_nodes_processed_total",
		Help: "Total number of nodes processed across all decomposition runs.",
	},
)

// ReachesEmitted counts the number of reaches emitted across all runs.
var ReachesEmitted = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "reachd_reaches_emitted_total",
		Help: "Total number of reaches emitted across all decomposition runs.",
	},
)

// DecompositionDuration observes wall-clock seconds spent in a single
// decomposition run (ingest through depth normalization).
var DecompositionDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "reachd_decomposition_duration_seconds",
		Help:    "Time spent decomposing a network into depth-ordered reaches.",
		Buckets: prometheus.DefBuckets,
	},
)

func init() {
	prometheus.MustRegister(RunsTotal, NodesProcessed, ReachesEmitted, DecompositionDuration)
}
