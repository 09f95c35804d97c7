// Package importance defines the Profile result type and functional options
// for the important-node selector.
package importance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sixdegrees/graph"
	"github.com/katalvlaran/sixdegrees/separation"
)

// ErrBadCutoff indicates a cutoff fraction outside (0, 1].
var ErrBadCutoff = errors.New("importance: cutoff fraction must be in (0, 1]")

// DefaultCutoffFraction is the share of sources kept after the reach-first
// ranking: the top decile.
const DefaultCutoffFraction = 0.1

// Profile is the important node for one hop count: the winning source and
// its cells at every hop count 1..MaxDegree, in hop order.
type Profile struct {
	Degree int                `json:"degree" yaml:"degree"`
	Vertex graph.Vertex       `json:"vertex" yaml:"vertex"`
	Reach  []separation.Reach `json:"profile" yaml:"profile"`
}

// At returns the winner's cell at its own hop count.
func (p *Profile) At() separation.Reach {
	return p.Reach[p.Degree-1]
}

// Option customizes Select.
type Option func(*Options)

// Options holds selector parameters.
type Options struct {
	// Ctx parents the importance.Select span.
	Ctx context.Context

	// CutoffFraction is the share of ranked sources considered, rounded up
	// and never below one entry.
	CutoffFraction float64

	// Logger receives one debug line per hop count.
	Logger *slog.Logger
}

// DefaultOptions returns the top-decile configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		CutoffFraction: DefaultCutoffFraction,
		Logger:         slog.Default(),
	}
}

// WithCutoffFraction sets the share of sources kept after ranking.
// Panics if f is not in (0, 1].
func WithCutoffFraction(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic(fmt.Sprintf("%s: got %g", ErrBadCutoff.Error(), f))
	}
	return func(o *Options) {
		o.CutoffFraction = f
	}
}

// WithContext sets the context the selection span is started from, so it
// nests under the caller's trace. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
