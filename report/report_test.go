package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/graph"
	"github.com/katalvlaran/sixdegrees/importance"
	"github.com/katalvlaran/sixdegrees/report"
	"github.com/katalvlaran/sixdegrees/separation"
)

// pathResult analyzes the unit path 0—1—2—3 up to maxDegree hops.
func pathResult(t *testing.T, maxDegree int) *report.Result {
	t.Helper()

	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	adj, err := graph.NewAdjacencyList(g)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	table, err := separation.Analyze(adj, maxDegree, separation.WithLogger(logger))
	require.NoError(t, err)

	return report.New("run-1", "path.txt", table, importance.Select(table, importance.WithLogger(logger)))
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, pathResult(t, 2), report.FormatText, report.Options{}))

	want := "Most important node for degree 1: Node 1\n" +
		"Number of reachable nodes in degree 1: 2\n" +
		"Average distance in degree 1: 1.00\n" +
		"\n" +
		"Number of reachable nodes and average distances for Node 1 for the other degrees:\n" +
		"  - Degree 2: 1 reachable nodes, Average Distance: 2.00\n" +
		"-----------------------------------------------------------------------------------\n" +
		"Most important node for degree 2: Node 0\n" +
		"Number of reachable nodes in degree 2: 1\n" +
		"Average distance in degree 2: 2.00\n" +
		"\n" +
		"Number of reachable nodes and average distances for Node 0 for the other degrees:\n" +
		"  - Degree 1: 1 reachable nodes, Average Distance: 1.00\n" +
		"-----------------------------------------------------------------------------------\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_TextNoImportantNode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, pathResult(t, 4), report.FormatText, report.Options{}))
	assert.Contains(t, buf.String(), "No important node found for degree 4\n")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWrite_TextColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, pathResult(t, 1), report.FormatText, report.Options{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, pathResult(t, 4), report.FormatJSON, report.Options{}))

	var decoded report.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, 4, decoded.Vertices)
	require.Len(t, decoded.Degrees, 4)
	require.NotNil(t, decoded.Degrees[0].Vertex)
	assert.Equal(t, 1, *decoded.Degrees[0].Vertex)
	assert.Equal(t, separation.Reach{Count: 2, AvgDistance: 1}, decoded.Degrees[0].Profile[0])
	assert.Nil(t, decoded.Degrees[3].Vertex)
	assert.Contains(t, buf.String(), `"vertex": null`)
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, pathResult(t, 2), report.FormatYAML, report.Options{}))

	var decoded report.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, pathResult(t, 2), &decoded)
	assert.Contains(t, buf.String(), "max_degree: 2")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	f, err := report.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, f)

	_, err = report.ParseFormat("csv")
	assert.True(t, errors.Is(err, report.ErrUnknownFormat))

	err = report.Write(io.Discard, pathResult(t, 1), report.Format("xml"), report.Options{})
	assert.True(t, errors.Is(err, report.ErrUnknownFormat))
}
