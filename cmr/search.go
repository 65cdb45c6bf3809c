package cmr

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/cgrouting/contact"
	"github.com/katalvlaran/cgrouting/multigraph"
	"github.com/katalvlaran/cgrouting/route"
)

// Search runs CMR-Dijkstra from root to destination over plan, the
// per-vertex multigraph variant DtnSim implements as cmr_dijkstra
// (libcgr.cpp:506). root is a synthetic Contact the caller constructs (From
// == To == source node, Start set to the data-ready time); it is used
// only to seed the source vertex's arrival time and is not otherwise
// part of the multigraph.
//
// Search builds its own ContactMultigraph from plan and does not mutate
// plan itself. It returns an empty Route (route.Empty()) if destination
// is unreachable.
func Search(plan *contact.ContactPlan, root contact.Contact, destination contact.NodeId, opts ...Option) *route.Route {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	started := time.Now()

	cm := multigraph.New(plan, destination)
	source := cm.Vertices[root.From]
	source.ArrivalTime = root.Start

	pq := make(vertexPQ, 0, len(cm.Vertices))
	for _, v := range cm.Vertices {
		pq = append(pq, &vertexItem{vertex: v, arrival: v.ArrivalTime})
	}
	heap.Init(&pq)

	popNext := func() *multigraph.Vertex {
		for pq.Len() > 0 {
			item := heap.Pop(&pq).(*vertexItem)
			if item.vertex.Visited {
				continue
			}

			return item.vertex
		}

		return nil
	}

	current := popNext()
	for current != nil && current.ID != destination {
		reviewNeighbors(cm, current, &pq)
		current.Visited = true
		current = popNext()
	}

	destVertex := cm.Vertices[destination]
	if destVertex.Predecessor == nil {
		cfg.Metrics.ObserveSearch("cmr", false, 0, time.Since(started))

		return route.Empty()
	}

	hops := reconstructHops(cm, root, destVertex)
	r := route.New(hops[0])
	for _, h := range hops[1:] {
		r.Append(h)
	}

	cfg.Logger.WithFields(map[string]interface{}{
		"destination":        destination,
		"hops":               len(hops),
		"best_delivery_time": r.BestDeliveryTime(),
	}).Debug("cmr: route found")
	cfg.Metrics.ObserveSearch("cmr", true, len(hops), time.Since(started))

	return r
}

// reviewNeighbors runs the Multigraph Review Procedure for current: for
// every neighbor vertex, find the earliest usable contact via binary
// search into the time-ordered adjacency list and relax its arrival time.
func reviewNeighbors(cm *multigraph.ContactMultigraph, current *multigraph.Vertex, pq *vertexPQ) {
	for neighborID, contacts := range current.Adjacencies {
		u := cm.Vertices[neighborID]
		if u.Visited {
			continue
		}

		if contacts[len(contacts)-1].End < current.ArrivalTime {
			continue
		}

		best := contact.Search(contacts, current.ArrivalTime)

		bestStart := best.Start
		if current.ArrivalTime > bestStart {
			bestStart = current.ArrivalTime
		}
		bestArrival := bestStart + best.OWLT

		if bestArrival < u.ArrivalTime {
			u.ArrivalTime = bestArrival
			u.Predecessor = &best
			heap.Push(pq, &vertexItem{vertex: u, arrival: bestArrival})
		}
	}
}

// reconstructHops walks predecessor links backwards from destVertex to
// the source and returns the hop chain in root-to-destination order.
func reconstructHops(cm *multigraph.ContactMultigraph, root contact.Contact, destVertex *multigraph.Vertex) []contact.Contact {
	var reversed []contact.Contact

	c := destVertex.Predecessor
	for {
		reversed = append(reversed, *c)
		if c.From == c.To || c.From == root.From {
			break
		}
		c = cm.Vertices[c.From].Predecessor
	}

	hops := make([]contact.Contact, len(reversed))
	for i, h := range reversed {
		hops[len(reversed)-1-i] = h
	}

	return hops
}
