package separation

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/sixdegrees/graph"
)

// Search runs one degree-bounded shortest-path search from source over adj
// and returns the per-source DegreeTable.
//
// The relaxation test compares distance only: a neighbor w is updated when
// the candidate hop count stays within maxDegree and w has no recorded
// distance or the candidate distance is strictly smaller. The hop count is
// stamped alongside whichever distance wins, so a vertex's final hop count is
// the one attached to its shortest recorded distance, not necessarily the
// fewest hops that reach it.
//
// Preconditions: adj has been validated (no negative or NaN lengths).
//
// Complexity:
//
//   - Time:  O(E log E) pushes/pops per search.
//   - Space: O(V + E).
func Search(adj graph.AdjacencyList, source graph.Vertex, maxDegree int) (*DegreeTable, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if maxDegree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxDegree, maxDegree)
	}
	if source < 0 || source >= len(adj) {
		return nil, fmt.Errorf("%w: %d with n=%d", ErrSourceOutOfRange, source, len(adj))
	}

	r := newRunner(adj, source, maxDegree)
	r.process()

	return r.table, nil
}

// searchState is one queue entry: the distance recorded when it was pushed,
// the vertex, and the hop count that produced that distance.
type searchState struct {
	dist   graph.Distance
	vertex graph.Vertex
	hops   int
}

// byDistance orders searchState ascending by distance so the queue yields
// the closest state first. Ties fall back to the heap's own order.
func byDistance(a, b interface{}) int {
	return utils.Float64Comparator(a.(searchState).dist, b.(searchState).dist)
}

// runner holds the mutable state of a single search.
type runner struct {
	adj       graph.AdjacencyList
	maxDegree int
	table     *DegreeTable
	pq        *priorityqueue.Queue
}

// newRunner allocates a fresh table with every vertex Unreached, records the
// source at distance 0 and hop 0, and seeds the queue with it.
func newRunner(adj graph.AdjacencyList, source graph.Vertex, maxDegree int) *runner {
	n := len(adj)
	t := &DegreeTable{
		Source: source,
		Dist:   make([]graph.Distance, n),
		Hops:   make([]int, n),
	}
	for v := range t.Hops {
		t.Hops[v] = Unreached
	}
	t.Dist[source] = 0
	t.Hops[source] = 0

	pq := priorityqueue.NewWith(byDistance)
	pq.Enqueue(searchState{dist: 0, vertex: source, hops: 0})

	return &runner{adj: adj, maxDegree: maxDegree, table: t, pq: pq}
}

// process drains the queue. Stale entries are not skipped: a state popped
// after its vertex improved still relaxes with its own (dist, hops), which
// matters when the improved entry sits closer to the hop ceiling.
func (r *runner) process() {
	for !r.pq.Empty() {
		item, _ := r.pq.Dequeue()
		st := item.(searchState)

		// Never true for states pushed by relax; kept so the loop is safe
		// whatever seeds the queue.
		if st.hops > r.maxDegree {
			continue
		}
		r.relax(st)
	}
}

// relax offers every neighbor of st.vertex the candidate (dist+length, hops+1).
func (r *runner) relax(st searchState) {
	nextHops := st.hops + 1
	if nextHops > r.maxDegree {
		return
	}

	t := r.table
	for _, nb := range r.adj[st.vertex] {
		next := st.dist + nb.Length
		if t.Hops[nb.To] != Unreached && next >= t.Dist[nb.To] {
			continue
		}
		t.Dist[nb.To] = next
		t.Hops[nb.To] = nextHops
		r.pq.Enqueue(searchState{dist: next, vertex: nb.To, hops: nextHops})
	}
}
