// Package ingest builds the initial connection graph and waterbody mapping
// from tabular input (§4.6) — the one component of the engine that touches
// raw rows, rather than an already-constructed Graph or Membership.
package ingest

import (
	"fmt"

	"github.com/noaa-owp/reach-decomp/internal/network"
	"github.com/noaa-owp/reach-decomp/internal/waterbody"
)

// Row is a single source-to-downstream table row: Source is the segment
// id the row describes, Target is the downstream segment id it reports
// (the ToID / waterbody column, depending on which extractor reads it).
// Rows are the row-indexed table the distilled spec leaves abstract.
type Row struct {
	Source network.NodeID
	Target network.NodeID
}

// Options configures the sentinel values ExtractConnections and
// ExtractWaterbodies treat as "absent". Defaults match §4.6:
// TerminalCode=0 for connections, NullSentinel=-9999 for waterbodies.
type Options struct {
	TerminalCode network.NodeID
	NullSentinel network.NodeID
}

// Option configures an Options value.
type Option func(*Options)

// WithTerminalCode overrides the connection table's "no downstream" code.
func WithTerminalCode(code network.NodeID) Option {
	return func(o *Options) { o.TerminalCode = code }
}

// WithNullSentinel overrides the waterbody table's "no waterbody" sentinel.
func WithNullSentinel(null network.NodeID) Option {
	return func(o *Options) { o.NullSentinel = null }
}

func defaultOptions() Options {
	return Options{TerminalCode: 0, NullSentinel: -9999}
}

// ExtractConnections builds a connection Graph from rows. A Target equal
// to the terminal code (default 0), or any non-positive value, means "no
// downstream"; the source is still registered as a key with an empty
// downstream list. Order of insertion follows row order.
//
// Repeated-source-row semantics (§9's open question): if the same Source
// appears in more than one row, its downstream lists accumulate — the
// node is registered as a key only on its first occurrence, and every
// subsequent row with a positive Target appends to the existing list.
// This mirrors the Python source's `if src not in network: network[src]
// = []` guard exactly; whether repeated rows are an intended input shape
// or caller error is left to the ingestion caller to judge (see
// DESIGN.md), but ExtractConnections itself never raises on it.
//
// Complexity: O(len(rows)).
func ExtractConnections(rows []Row, opts ...Option) *network.Graph {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := network.New()
	for _, r := range rows {
		g.Ensure(r.Source)
		if r.Target > 0 && r.Target != o.TerminalCode {
			g.Append(r.Source, r.Target)
		}
	}
	return g
}

// ExtractWaterbodies builds a Membership from rows, retaining only rows
// whose Target differs from the null sentinel (default -9999).
//
// Complexity: O(len(rows)).
func ExtractWaterbodies(rows []Row, opts ...Option) waterbody.Membership {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := make(waterbody.Membership, len(rows))
	for _, r := range rows {
		if r.Target == o.NullSentinel {
			continue
		}
		w[r.Source] = r.Target
	}
	return w
}

// ReverseSurjectiveMapping inverts a waterbody Membership into
// WaterbodyID -> member NodeIDs, preserving input order within each
// waterbody (the caller's rows order, threaded through via order).
//
// Complexity: O(len(order)).
func ReverseSurjectiveMapping(w waterbody.Membership, order []network.NodeID) map[network.NodeID][]network.NodeID {
	out := make(map[network.NodeID][]network.NodeID)
	for _, src := range order {
		if dst, ok := w[src]; ok {
			out[dst] = append(out[dst], src)
		}
	}
	return out
}

// ErrMalformedRow is the sentinel MalformedInput error of §7: raised by
// LoadCSV when a row cannot be parsed into integral source/target
// ids. It is never swallowed by the ingestion collaborator.
type ErrMalformedRow struct {
	Line int
	Err  error
}

func (e *ErrMalformedRow) Error() string {
	return fmt.Sprintf("ingest: malformed row at line %d: %v", e.Line, e.Err)
}

func (e *ErrMalformedRow) Unwrap() error { return e.Err }
