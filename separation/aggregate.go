package separation

import "github.com/katalvlaran/sixdegrees/graph"

// Summarize reduces one DegreeTable to its per-degree cells: for each k in
// 1..maxDegree, the number of vertices whose hop count is exactly k and the
// mean of their distances. The source itself (hop 0) is never counted.
//
// Complexity: O(V + maxDegree).
func Summarize(t *DegreeTable, maxDegree int) []Reach {
	if maxDegree <= 0 {
		return []Reach{}
	}

	counts := make([]int, maxDegree)
	sums := make([]graph.Distance, maxDegree)
	for v, h := range t.Hops {
		if h < 1 || h > maxDegree {
			continue
		}
		counts[h-1]++
		sums[h-1] += t.Dist[v]
	}

	out := make([]Reach, maxDegree)
	for k := range out {
		out[k].Count = counts[k]
		if counts[k] > 0 {
			out[k].AvgDistance = sums[k] / graph.Distance(counts[k])
		}
	}

	return out
}

// Aggregate builds the Table from one DegreeTable per source vertex. tables
// must be indexed by source; entry s fills column s of every row.
//
// Complexity: O(n·(V + maxDegree)).
func Aggregate(tables []*DegreeTable, maxDegree int) Table {
	t := newTable(len(tables), maxDegree)
	for s, dt := range tables {
		t.setColumn(s, Summarize(dt, maxDegree))
	}

	return t
}

// newTable allocates maxDegree rows of n zero cells.
func newTable(n, maxDegree int) Table {
	if maxDegree < 0 {
		maxDegree = 0
	}
	t := make(Table, maxDegree)
	for k := range t {
		t[k] = make([]Reach, n)
	}

	return t
}

// setColumn writes source s's per-degree cells into the table. Each source
// owns its column, so concurrent writers for distinct s never overlap.
func (t Table) setColumn(s graph.Vertex, cells []Reach) {
	for k := range t {
		t[k][s] = cells[k]
	}
}
