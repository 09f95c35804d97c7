// Package report renders a separation analysis and its important nodes as
// human-readable text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sixdegrees/graph"
	"github.com/katalvlaran/sixdegrees/importance"
	"github.com/katalvlaran/sixdegrees/separation"
)

// ErrUnknownFormat indicates an output format other than text, json or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

const separator = "-----------------------------------------------------------------------------------"

// Result is the serializable outcome of one run.
type Result struct {
	RunID     string  `json:"run_id" yaml:"run_id"`
	Input     string  `json:"input,omitempty" yaml:"input,omitempty"`
	Vertices  int     `json:"vertices" yaml:"vertices"`
	MaxDegree int     `json:"max_degree" yaml:"max_degree"`
	Degrees   []Entry `json:"degrees" yaml:"degrees"`
}

// Entry is the important node for one hop count. Vertex is nil and Profile
// empty when no node qualifies.
type Entry struct {
	Degree  int                `json:"degree" yaml:"degree"`
	Vertex  *graph.Vertex      `json:"vertex" yaml:"vertex"`
	Profile []separation.Reach `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// New assembles a Result. profiles is indexed by degree-1 as returned by
// importance.Select; missing or nil entries become empty Entries.
func New(runID, input string, t separation.Table, profiles []*importance.Profile) *Result {
	res := &Result{
		RunID:     runID,
		Input:     input,
		Vertices:  t.Vertices(),
		MaxDegree: t.MaxDegree(),
		Degrees:   make([]Entry, t.MaxDegree()),
	}
	for k := 1; k <= t.MaxDegree(); k++ {
		e := Entry{Degree: k}
		if k-1 < len(profiles) && profiles[k-1] != nil {
			v := profiles[k-1].Vertex
			e.Vertex = &v
			e.Profile = profiles[k-1].Reach
		}
		res.Degrees[k-1] = e
	}

	return res
}

// Options tune Write.
type Options struct {
	// Color enables ANSI headings in the text format.
	Color bool
}

// Write encodes r to w in the given format.
func Write(w io.Writer, r *Result, f Format, opts Options) error {
	if r == nil {
		return errors.New("report: nil result")
	}

	var err error
	switch f {
	case FormatText:
		err = writeText(w, r, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("report: write %s: %w", f, err)
	}

	return nil
}

func writeText(w io.Writer, r *Result, opts Options) error {
	heading := color.New(color.FgCyan, color.Bold)
	missing := color.New(color.FgYellow)
	if opts.Color {
		heading.EnableColor()
		missing.EnableColor()
	} else {
		heading.DisableColor()
		missing.DisableColor()
	}

	tw := &textWriter{w: w}
	for _, e := range r.Degrees {
		if e.Vertex == nil || len(e.Profile) < e.Degree || e.Profile[e.Degree-1].Count == 0 {
			tw.color(missing, "No important node found for degree %d\n", e.Degree)
			continue
		}

		own := e.Profile[e.Degree-1]
		tw.color(heading, "Most important node for degree %d: Node %d\n", e.Degree, *e.Vertex)
		tw.printf("Number of reachable nodes in degree %d: %d\n", e.Degree, own.Count)
		tw.printf("Average distance in degree %d: %.2f\n", e.Degree, own.AvgDistance)
		tw.printf("\nNumber of reachable nodes and average distances for Node %d for the other degrees:\n", *e.Vertex)
		for j, cell := range e.Profile {
			if j+1 == e.Degree {
				continue
			}
			tw.printf("  - Degree %d: %d reachable nodes, Average Distance: %.2f\n", j+1, cell.Count, cell.AvgDistance)
		}
		tw.printf("%s\n", separator)
	}

	return tw.err
}

// textWriter latches the first write error so the layout code stays linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) color(c *color.Color, format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = c.Fprintf(t.w, format, args...)
}
