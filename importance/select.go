package importance

import (
	"log/slog"
	"math"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sixdegrees/separation"
)

var tracer = otel.Tracer("sixdegrees.importance")

// Select picks the important node for every hop count of t. The result has
// t.MaxDegree() entries; entry k-1 is nil when no source qualifies at k.
//
// Complexity: O(D · n log n) for D hop counts and n sources.
func Select(t separation.Table, opts ...Option) []*Profile {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	_, span := tracer.Start(cfg.Ctx, "importance.Select",
		trace.WithAttributes(
			attribute.Int("vertices", t.Vertices()),
			attribute.Int("max_degree", t.MaxDegree()),
		),
	)
	defer span.End()

	out := make([]*Profile, t.MaxDegree())
	found := 0
	for k := 1; k <= t.MaxDegree(); k++ {
		out[k-1] = selectDegree(t, k, cfg)
		if out[k-1] != nil {
			found++
			cfg.Logger.Debug("important node selected",
				slog.Int("degree", k),
				slog.Int("vertex", out[k-1].Vertex),
				slog.Int("reachable", out[k-1].At().Count),
			)
		}
	}
	span.SetAttributes(attribute.Int("found", found))

	return out
}

// SelectDegree runs the selection for a single hop count k (1-based).
// It returns nil when k is out of range or no source qualifies.
func SelectDegree(t separation.Table, k int, opts ...Option) *Profile {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return selectDegree(t, k, cfg)
}

// Cutoff returns how many ranked entries are considered for n sources:
// max(1, ceil(fraction·n)).
func Cutoff(n int, fraction float64) int {
	c := int(math.Ceil(float64(n) * fraction))
	if c < 1 {
		return 1
	}

	return c
}

// selectDegree applies the two-stage ranking to row k:
//  1. rank a copy by count descending, then average distance ascending;
//  2. keep the first Cutoff entries;
//  3. among those, take the first with the smallest average distance.
//
// Stage 3 may pick an entry with lower reach than the top-ranked one when
// the window spans several counts. A zero-count winner means no important
// node. The source id is recovered as the first index in the unsorted row
// holding the same (count, average) pair.
func selectDegree(t separation.Table, k int, cfg Options) *Profile {
	row := t.Row(k)
	if len(row) == 0 {
		return nil
	}

	ranked := make([]separation.Reach, len(row))
	copy(ranked, row)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].AvgDistance < ranked[j].AvgDistance
	})

	top := ranked[:min(Cutoff(len(row), cfg.CutoffFraction), len(ranked))]
	best := top[0]
	for _, r := range top[1:] {
		if r.AvgDistance < best.AvgDistance {
			best = r
		}
	}
	if best.Count == 0 {
		return nil
	}

	for s, r := range row {
		if r == best {
			return &Profile{Degree: k, Vertex: s, Reach: t.Profile(s)}
		}
	}

	return nil
}
