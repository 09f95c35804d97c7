package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sixdegrees/graph"
)

// Write emits g in the edge list format. Each undirected pair stored by
// AddUndirected (u→v immediately followed by v→u with the same length)
// becomes one line labelled e<i>; any other half-edge is written as its own
// line, which Load symmetrizes on the way back in. Isolated vertices above
// the largest edge endpoint have no representation in the format.
func Write(w io.Writer, g *graph.WeightedGraph) error {
	if g == nil {
		return graph.ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	label := 0
	for i := 0; i < len(g.Edges); i++ {
		e := g.Edges[i]
		if i+1 < len(g.Edges) && isReverse(e, g.Edges[i+1]) {
			i++
		}
		if _, err := fmt.Fprintf(bw, "e%d %d %d %s\n",
			label, e.From, e.To, strconv.FormatFloat(e.Length, 'g', -1, 64)); err != nil {
			return fmt.Errorf("loader: write: %w", err)
		}
		label++
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}

	return nil
}

func isReverse(a, b graph.WeightedEdge) bool {
	return a.From == b.To && a.To == b.From && a.Length == b.Length
}
