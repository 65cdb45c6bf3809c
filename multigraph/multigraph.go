package multigraph

import "github.com/katalvlaran/cgrouting/contact"

// ContactMultigraph is the vertex-keyed graph CMR searches run over.
type ContactMultigraph struct {
	Vertices map[contact.NodeId]*Vertex
}

// New builds a ContactMultigraph from plan's contacts. Every contact's
// From vertex is created on demand; its To vertex is guaranteed to exist
// as well (even with empty adjacencies) so a node that only ever appears
// as a destination still participates in the search. destination is
// likewise guaranteed a vertex, even if no contact in the plan names it
// at all, so the destination always participates in the search's
// priority queue.
func New(plan *contact.ContactPlan, destination contact.NodeId) *ContactMultigraph {
	cm := &ContactMultigraph{Vertices: make(map[contact.NodeId]*Vertex)}

	for _, c := range plan.Contacts {
		from := cm.vertex(c.From)
		cm.vertex(c.To)

		adj := from.Adjacencies[c.To]
		switch {
		case len(adj) == 0, c.Start > adj[len(adj)-1].Start:
			from.Adjacencies[c.To] = append(adj, c)
		default:
			idx := contact.SearchIndex(adj, c.Start)
			adj = append(adj, contact.Contact{})
			copy(adj[idx+1:], adj[idx:])
			adj[idx] = c
			from.Adjacencies[c.To] = adj
		}
	}

	cm.vertex(destination)

	return cm
}

// vertex returns the Vertex for id, creating it with default Dijkstra
// state if it does not already exist.
func (cm *ContactMultigraph) vertex(id contact.NodeId) *Vertex {
	v, ok := cm.Vertices[id]
	if !ok {
		v = newVertex(id)
		cm.Vertices[id] = v
	}

	return v
}
