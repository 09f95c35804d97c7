package separation

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sixdegrees/graph"
)

var tracer = otel.Tracer("sixdegrees.separation")

// Analyze runs Search from every vertex and aggregates the results into a
// Table with maxDegree rows of adj.Len() cells.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. maxDegree must be ≥ 0 (ErrBadMaxDegree); 0 yields an empty Table.
//  3. Options must be valid (ErrOptionViolation).
//  4. adj must pass graph.AdjacencyList.Validate.
//
// With the default single worker, sources run in increasing id order, each
// search draining its queue before the next starts. With WithWorkers(w > 1)
// up to w searches run at once; every search owns its table and queue and
// writes only its own column, so the result is identical to the sequential
// run.
//
// Complexity:
//
//   - Time:  O(V · E log E) total, divided across workers.
//   - Space: O(V · maxDegree) for the table plus O(V + E) per active worker.
func Analyze(adj graph.AdjacencyList, maxDegree int, opts ...Option) (Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if maxDegree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxDegree, maxDegree)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	ctx, span := tracer.Start(cfg.Ctx, "separation.Analyze",
		trace.WithAttributes(
			attribute.Int("vertices", adj.Len()),
			attribute.Int("max_degree", maxDegree),
			attribute.Int("workers", cfg.Workers),
		),
	)
	defer span.End()

	if err := adj.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("separation: %w", err)
	}

	start := time.Now()
	n := adj.Len()
	table := newTable(n, maxDegree)

	var err error
	if cfg.Workers == 1 || n < 2 {
		err = analyzeSequential(ctx, adj, maxDegree, table, cfg)
	} else {
		err = analyzeParallel(ctx, adj, maxDegree, table, cfg)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	cfg.Logger.Info("degree analysis complete",
		slog.Int("vertices", n),
		slog.Int("edges", adj.EdgeCount()),
		slog.Int("max_degree", maxDegree),
		slog.Int("workers", cfg.Workers),
		slog.Duration("elapsed", time.Since(start)),
	)

	return table, nil
}

// analyzeSequential is the reference order: sources 0..n-1, one at a time.
func analyzeSequential(ctx context.Context, adj graph.AdjacencyList, maxDegree int, table Table, cfg Options) error {
	n := adj.Len()
	for s := 0; s < n; s++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("separation: cancelled at source %d: %w", s, err)
		}
		if err := runSource(adj, s, maxDegree, table); err != nil {
			return err
		}
		cfg.OnSource(s, s+1, n)
	}

	return nil
}

// analyzeParallel fans one task per source out to at most cfg.Workers
// goroutines. Results land in the table by source index, never by
// completion order.
func analyzeParallel(ctx context.Context, adj graph.AdjacencyList, maxDegree int, table Table, cfg Options) error {
	n := adj.Len()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	var done atomic.Int64
	for s := 0; s < n; s++ {
		if gctx.Err() != nil {
			break
		}
		source := s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("separation: cancelled at source %d: %w", source, err)
			}
			if err := runSource(adj, source, maxDegree, table); err != nil {
				return err
			}
			cfg.OnSource(source, int(done.Add(1)), n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// The loop may stop early on cancellation before any task observed it.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("separation: cancelled: %w", err)
	}

	return nil
}

// runSource searches from s and writes its summarized column.
func runSource(adj graph.AdjacencyList, s graph.Vertex, maxDegree int, table Table) error {
	dt, err := Search(adj, s, maxDegree)
	if err != nil {
		return fmt.Errorf("separation: source %d: %w", s, err)
	}
	table.setColumn(s, Summarize(dt, maxDegree))

	return nil
}
