// Package separation defines the result types, sentinel errors and functional
// options for the degree-bounded shortest-path analysis.
//
// Options:
//
//	– WithWorkers:   number of concurrent per-source searches (default 1).
//	– WithContext:   cancellation checked between sources.
//	– WithLogger:    *slog.Logger for the run summary (default slog.Default()).
//	– WithOnSource:  hook invoked after each source completes.
//
// Errors (sentinel):
//
//	– ErrNilAdjacency     if the adjacency list is nil.
//	– ErrSourceOutOfRange if a search source is not in [0, n).
//	– ErrBadMaxDegree     if max degree is negative.
//	– ErrOptionViolation  if an option received a meaningless value.
package separation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sixdegrees/graph"
)

// Sentinel errors returned by the analysis.
var (
	// ErrNilAdjacency indicates that a nil AdjacencyList was passed.
	ErrNilAdjacency = errors.New("separation: adjacency list is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, n).
	ErrSourceOutOfRange = errors.New("separation: source vertex out of range")

	// ErrBadMaxDegree indicates a negative hop ceiling.
	ErrBadMaxDegree = errors.New("separation: max degree must be non-negative")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("separation: invalid option supplied")
)

// Unreached marks a vertex with no recorded hop count in a DegreeTable.
const Unreached = -1

// DegreeTable is the per-source result of one bounded search. Hops[v] is the
// hop count stamped alongside v's best distance, or Unreached; Dist[v] is
// meaningful only when Hops[v] != Unreached.
type DegreeTable struct {
	Source graph.Vertex
	Dist   []graph.Distance
	Hops   []int
}

// Len returns the number of vertices covered by the table.
func (t *DegreeTable) Len() int { return len(t.Hops) }

// Reached returns v's recorded distance and hop count, and whether v was
// reached within the hop ceiling at all.
func (t *DegreeTable) Reached(v graph.Vertex) (graph.Distance, int, bool) {
	if v < 0 || v >= len(t.Hops) || t.Hops[v] == Unreached {
		return 0, Unreached, false
	}

	return t.Dist[v], t.Hops[v], true
}

// Reach is one aggregated cell: how many vertices have a recorded hop count
// of exactly k under a source, and their mean distance (0 when Count is 0).
type Reach struct {
	Count       int            `json:"reachable" yaml:"reachable"`
	AvgDistance graph.Distance `json:"average_distance" yaml:"average_distance"`
}

// Table is the aggregated result indexed [k-1][source] for k in 1..MaxDegree.
// Every row has exactly one entry per vertex, including zero-reach sources.
type Table [][]Reach

// MaxDegree returns the number of hop-count rows.
func (t Table) MaxDegree() int { return len(t) }

// Vertices returns n, the number of entries per row.
func (t Table) Vertices() int {
	if len(t) == 0 {
		return 0
	}

	return len(t[0])
}

// Row returns the per-source cells for hop count k (1-based).
// It returns nil when k is outside 1..MaxDegree.
func (t Table) Row(k int) []Reach {
	if k < 1 || k > len(t) {
		return nil
	}

	return t[k-1]
}

// At returns the cell for hop count k and source s.
func (t Table) At(k int, s graph.Vertex) (Reach, bool) {
	row := t.Row(k)
	if s < 0 || s >= len(row) {
		return Reach{}, false
	}

	return row[s], true
}

// Profile returns source s's cells across all hop counts, in hop order.
func (t Table) Profile(s graph.Vertex) []Reach {
	if s < 0 || s >= t.Vertices() {
		return nil
	}
	out := make([]Reach, len(t))
	for k := range t {
		out[k] = t[k][s]
	}

	return out
}

// Option configures Analyze via functional arguments. An invalid value is
// recorded and surfaced as ErrOptionViolation when Analyze runs.
type Option func(*Options)

// Options holds the knobs for one Analyze call.
type Options struct {
	// Ctx allows cancellation between per-source searches.
	Ctx context.Context

	// Workers is the number of concurrent searches; 1 means the reference
	// sequential order.
	Workers int

	// Logger receives the run summary.
	Logger *slog.Logger

	// OnSource is called after source s finishes; done counts completed
	// sources so far. With Workers > 1 calls may come from several
	// goroutines and out of source order.
	OnSource func(source graph.Vertex, done, total int)

	err error
}

// DefaultOptions returns the sequential, uninstrumented configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		Logger:   slog.Default(),
		OnSource: func(graph.Vertex, int, int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent per-source searches.
//
//	w >= 1: run at most w searches at once
//	w < 1:  invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithLogger sets the logger for the run summary.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSource registers a progress hook.
func WithOnSource(fn func(source graph.Vertex, done, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSource = fn
		}
	}
}
