package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/katalvlaran/sixdegrees/graph"
)

// ErrParse indicates a numeric token that could not be parsed on an
// otherwise well-formed line.
var ErrParse = errors.New("loader: parse error")

// ErrVertexLimit indicates a vertex id at or above the configured maximum
// vertex count.
var ErrVertexLimit = errors.New("loader: vertex id exceeds limit")

// DefaultMaxVertices caps the vertex count a loaded graph may imply. Every
// id below the cap gets an adjacency slot, so an unbounded id would allocate
// without limit.
const DefaultMaxVertices = 1 << 24

// fieldsPerLine is the exact token count of an accepted edge line.
const fieldsPerLine = 4

// Options configure Load and Parse.
type Options struct {
	Fs     afero.Fs
	Strict      bool
	MaxVertices int
	Logger      *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the OS filesystem, strict parsing, the
// DefaultMaxVertices cap and slog.Default().
func DefaultOptions() Options {
	return Options{
		Fs:          afero.NewOsFs(),
		Strict:      true,
		MaxVertices: DefaultMaxVertices,
		Logger:      slog.Default(),
	}
}

// WithFs sets the filesystem Load opens files on. Nil is ignored.
func WithFs(fs afero.Fs) Option {
	return func(o *Options) {
		if fs != nil {
			o.Fs = fs
		}
	}
}

// WithStrict toggles fail-fast numeric parsing. In lenient mode a line with
// a bad number is skipped and reported at warn level.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithMaxVertices sets the largest vertex count an input may imply; ids
// must stay below it. Values below 1 are ignored.
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxVertices = n
		}
	}
}

// WithLogger sets the logger for skipped-line diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Load opens path on the configured filesystem and parses it.
func Load(path string, opts ...Option) (*graph.WeightedGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := o.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := parse(f, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	o.Logger.Info("graph loaded",
		slog.String("path", path),
		slog.Int("vertices", g.N),
		slog.Int("edges", len(g.Edges)/2))

	return g, nil
}

// Parse reads edge lines from r until EOF.
//
// Complexity: O(L) time for L input bytes; O(E) space.
func Parse(r io.Reader, opts ...Option) (*graph.WeightedGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return parse(r, o)
}

func parse(r io.Reader, o Options) (*graph.WeightedGraph, error) {
	g := &graph.WeightedGraph{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) != fieldsPerLine {
			if len(fields) > 0 {
				o.Logger.Debug("skipping line",
					slog.Int("line", lineNo),
					slog.Int("tokens", len(fields)))
			}
			continue
		}

		u, v, w, err := parseEdge(fields)
		if err != nil {
			if o.Strict {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineNo, err)
			}
			o.Logger.Warn("skipping malformed edge",
				slog.Int("line", lineNo),
				slog.String("error", err.Error()))
			continue
		}

		if u >= o.MaxVertices || v >= o.MaxVertices {
			return nil, fmt.Errorf("%w: line %d: edge %d—%d with limit %d",
				ErrVertexLimit, lineNo, u, v, o.MaxVertices)
		}

		if err := g.AddUndirected(u, v, w); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return g, nil
}

// parseEdge decodes the u, v and weight tokens; the label is ignored.
func parseEdge(fields []string) (graph.Vertex, graph.Vertex, graph.Distance, error) {
	u, err := parseVertex(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	v, err := parseVertex(fields[2])
	if err != nil {
		return 0, 0, 0, err
	}
	w, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("weight %q: %w", fields[3], err)
	}

	return u, v, w, nil
}

func parseVertex(tok string) (graph.Vertex, error) {
	id, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("vertex %q: %w", tok, err)
	}

	return graph.Vertex(id), nil
}
