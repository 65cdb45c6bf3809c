package cgr

import (
	"time"

	"github.com/katalvlaran/cgrouting/contact"
	"github.com/katalvlaran/cgrouting/route"
)

// rootIndex is the sentinel PredecessorIdx value meaning "the caller's
// root contact", which never lives in plan.Contacts. It is distinct from
// contact's own noPredecessor sentinel (-1): every contact plan is
// guaranteed non-negative real indices, so -2 can never collide with one.
const rootIndex = -2

// Search runs CGR-Dijkstra from root to destination over plan, the
// per-contact variant DtnSim implements as dijkstra() (libcgr.cpp:282).
// root is a synthetic Contact the caller constructs (a
// self-loop on the source node, Start set to the data-ready time); it is
// not required to be a member of plan.Contacts.
//
// Search mutates the Dijkstra bookkeeping of every contact in plan except
// any contact Equal to root (clearing prior search state first, so
// repeated calls against the same plan are idempotent). It returns an
// empty Route (route.Empty()) if destination is unreachable.
func Search(plan *contact.ContactPlan, root contact.Contact, destination contact.NodeId, opts ...Option) *route.Route {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	started := time.Now()

	plan.ResetWorkingAreaExcept(plan.IndexOf(root))
	root.ArrivalTime = root.Start
	root.VisitedNodes = map[contact.NodeId]struct{}{root.To: {}}

	neighbors := plan.NeighborIndex()

	currentIdx := rootIndex
	current := root

	earliestFinalArrival := contact.Infinity
	finalIdx := -1

	for {
		for _, ni := range neighbors[current.To] {
			c := plan.At(ni)
			if current.IsSuppressedNextHop(*c) ||
				c.Suppressed ||
				c.Visited ||
				current.VisitsNode(c.To) ||
				c.End <= current.ArrivalTime ||
				c.MaxMAV() <= 0 ||
				current.IsReverseOf(*c) {
				continue
			}

			var arrival int64
			if c.Start < current.ArrivalTime {
				arrival = current.ArrivalTime + c.OWLT
			} else {
				arrival = c.Start + c.OWLT
			}

			if arrival <= c.ArrivalTime {
				c.ArrivalTime = arrival
				c.PredecessorIdx = currentIdx
				c.VisitedNodes = extendVisited(current.VisitedNodes, c.To)

				if c.To == destination && arrival < earliestFinalArrival {
					earliestFinalArrival = arrival
					finalIdx = ni
				}
			}
		}

		if currentIdx != rootIndex {
			plan.At(currentIdx).Visited = true
		}

		nextIdx := -1
		for i := range plan.Contacts {
			c := &plan.Contacts[i]
			if c.Suppressed || c.Visited || c.ArrivalTime > earliestFinalArrival {
				continue
			}
			if nextIdx == -1 || c.ArrivalTime < plan.Contacts[nextIdx].ArrivalTime {
				nextIdx = i
			}
		}

		if nextIdx == -1 {
			break
		}

		currentIdx = nextIdx
		current = plan.Contacts[nextIdx]
	}

	if finalIdx == -1 {
		cfg.Metrics.ObserveSearch("cgr", false, 0, time.Since(started))

		return route.Empty()
	}

	hops := reconstructHops(plan, finalIdx)
	r := route.New(hops[0])
	for _, h := range hops[1:] {
		r.Append(h)
	}

	cfg.Logger.WithFields(map[string]interface{}{
		"destination":        destination,
		"hops":               len(hops),
		"best_delivery_time": r.BestDeliveryTime(),
	}).Debug("cgr: route found")
	cfg.Metrics.ObserveSearch("cgr", true, len(hops), time.Since(started))

	return r
}

// reconstructHops walks PredecessorIdx links from plan.At(finalIdx) back
// to the root sentinel and returns the hop chain in root-to-destination
// order.
func reconstructHops(plan *contact.ContactPlan, finalIdx int) []contact.Contact {
	var reversed []contact.Contact
	for idx := finalIdx; idx != rootIndex; {
		c := plan.At(idx)
		reversed = append(reversed, *c)
		idx = c.PredecessorIdx
	}

	hops := make([]contact.Contact, len(reversed))
	for i, h := range reversed {
		hops[len(reversed)-1-i] = h
	}

	return hops
}

// extendVisited returns a new visited-nodes set containing every node in
// base plus node, never aliasing base itself so distinct contacts
// discovered from the same predecessor don't share a mutable set.
func extendVisited(base map[contact.NodeId]struct{}, node contact.NodeId) map[contact.NodeId]struct{} {
	out := make(map[contact.NodeId]struct{}, len(base)+1)
	for n := range base {
		out[n] = struct{}{}
	}
	out[node] = struct{}{}

	return out
}
