// Package multigraph implements ContactMultigraph, the node-keyed graph
// CMR searches over: each Vertex is a network node, and the edges between
// two vertices are an ordered, non-overlapping list of Contacts sorted by
// Start — a multigraph because more than one contact may connect the same
// pair of nodes.
//
// ContactMultigraph and its Vertices exist only for the duration of one
// CMR search; they are rebuilt from the ContactPlan (itself long-lived)
// on every call.
package multigraph

import "github.com/katalvlaran/cgrouting/contact"

// Vertex is one node of a ContactMultigraph: its adjacency lists plus the
// per-search Dijkstra bookkeeping CMR writes into it.
type Vertex struct {
	ID contact.NodeId

	// Adjacencies maps a neighbor NodeId to the ordered, non-overlapping
	// list of Contacts from this vertex to that neighbor, sorted
	// ascending by Start.
	Adjacencies map[contact.NodeId][]contact.Contact

	ArrivalTime int64
	Visited     bool
	// Predecessor is the Contact by which this vertex was first reached
	// with its current ArrivalTime. It is a copy, not a pointer into an
	// adjacency slice, so it survives the ContactMultigraph being
	// discarded once the search that produced it returns.
	Predecessor *contact.Contact
}

// newVertex returns a Vertex with the default, unreached Dijkstra state:
// ArrivalTime = +∞, Visited = false, Predecessor = nil.
func newVertex(id contact.NodeId) *Vertex {
	return &Vertex{
		ID:          id,
		Adjacencies: make(map[contact.NodeId][]contact.Contact),
		ArrivalTime: contact.Infinity,
	}
}
