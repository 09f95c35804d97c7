// Package loader reads and writes the whitespace-separated edge list format
// consumed by separation analysis:
//
//	<label> <u> <v> <weight>
//
// One undirected edge per line. The label is ignored; u and v are
// non-negative integer vertex ids and weight is a real number. Lines with any
// other token count are skipped. Every accepted line yields both u→v and v→u
// with the same weight, and the vertex count is one plus the largest id seen
// (zero for an input with no accepted lines).
//
// By default a numeric token that fails to parse aborts the load with
// ErrParse. WithStrict(false) skips such lines and logs a warning instead.
//
// Vertex ids must stay below DefaultMaxVertices (or the WithMaxVertices
// value); a larger id fails the load with ErrVertexLimit in either mode.
//
// Files are opened through an afero.Fs (the OS filesystem unless WithFs is
// given), so tests run against afero.NewMemMapFs.
package loader
