package cmr

import "github.com/katalvlaran/cgrouting/multigraph"

// vertexItem is one priority-queue entry: a snapshot of a Vertex's
// arrival time at the moment it was pushed. Lazy decrease-key means
// several vertexItems for the same Vertex may coexist in the heap; stale
// ones are discarded on pop by checking Vertex.Visited.
type vertexItem struct {
	vertex  *multigraph.Vertex
	arrival int64
}

// vertexPQ is a min-heap of *vertexItem ordered by (arrival asc, id asc),
// for deterministic vertex selection when two vertices tie on arrival time.
type vertexPQ []*vertexItem

func (pq vertexPQ) Len() int { return len(pq) }

func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].arrival != pq[j].arrival {
		return pq[i].arrival < pq[j].arrival
	}

	return pq[i].vertex.ID < pq[j].vertex.ID
}

func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *vertexPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*vertexItem))
}

func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
