package route

import "github.com/katalvlaran/cgrouting/contact"

// Route is an ordered chain of Contacts with cached aggregate metrics.
// The zero value is not usable; construct with New or NewChild.
type Route struct {
	parent *Route
	hops   []contact.Contact
	// visited tracks every NodeId this route (including its parent chain)
	// has touched, as either a hop's From or To, so Eligible can forbid
	// revisiting a node in O(1).
	visited map[contact.NodeId]bool

	toNode, nextNode contact.NodeId
	fromTime, toTime int64
	bestDeliveryTime int64
	volume           int64
	confidence       float64
}

// New constructs a Route from a single seed Contact with no parent.
func New(seed contact.Contact) *Route {
	return NewChild(seed, nil)
}

// Empty returns a Route with no hops, representing "unreachable": no
// contact chain connects root to destination. All accessors return their
// Go zero value; Hops returns nil.
func Empty() *Route {
	return &Route{visited: make(map[contact.NodeId]bool)}
}

// NewChild constructs a Route from a seed Contact, logically prepending
// parent's hops (if parent is non-nil). The parent's visited-node set is
// copied so the child route's Eligible checks honor every node the
// parent chain already reached.
func NewChild(seed contact.Contact, parent *Route) *Route {
	r := &Route{parent: parent}
	if parent != nil {
		r.visited = make(map[contact.NodeId]bool, len(parent.visited))
		for node, v := range parent.visited {
			r.visited[node] = v
		}
	} else {
		r.visited = make(map[contact.NodeId]bool)
	}

	r.Append(seed)

	return r
}

// Hops returns the full hop chain: the parent's hops (recursively),
// followed by this route's own appended hops.
func (r *Route) Hops() []contact.Contact {
	if r.parent == nil {
		return r.hops
	}
	all := make([]contact.Contact, 0, len(r.parent.Hops())+len(r.hops))
	all = append(all, r.parent.Hops()...)
	all = append(all, r.hops...)

	return all
}

// lastContact returns the final hop of the full chain and whether one
// exists. An empty chain (a Route from Empty, or a brand new Route before
// the seed Append inside New/NewChild completes) has no last contact.
func (r *Route) lastContact() (contact.Contact, bool) {
	hops := r.Hops()
	if len(hops) == 0 {
		return contact.Contact{}, false
	}

	return hops[len(hops)-1], true
}

// Eligible reports whether c may extend this route: the route is empty,
// or c.To has not already been visited and c.End exceeds the current
// final hop's Start+OWLT (the successor's window must still be open when
// data could earliest arrive there).
func (r *Route) Eligible(c contact.Contact) bool {
	last, ok := r.lastContact()
	if !ok {
		return true
	}

	return !r.visited[c.To] && c.End > last.Start+last.OWLT
}

// Append records c as the route's next hop, marks both endpoints
// visited, and refreshes the cached metrics. It panics if c is not
// Eligible — an ineligible append is a programming error, not a
// recoverable condition, matching DtnSim's Route::append, which asserts
// eligibility rather than returning an error (libcgr.cpp:113).
func (r *Route) Append(c contact.Contact) {
	if !r.Eligible(c) {
		panic(ErrIneligibleContact)
	}

	r.hops = append(r.hops, c)
	r.visited[c.From] = true
	r.visited[c.To] = true

	r.refreshMetrics()
}

// ToNode returns the final hop's To.
func (r *Route) ToNode() contact.NodeId { return r.toNode }

// NextNode returns the first hop's To — the first relay data passes
// through on its way to ToNode.
func (r *Route) NextNode() contact.NodeId { return r.nextNode }

// FromTime returns the first hop's Start.
func (r *Route) FromTime() int64 { return r.fromTime }

// ToTime returns the earliest End among all hops.
func (r *Route) ToTime() int64 { return r.toTime }

// BestDeliveryTime returns the earliest time the last byte of a
// zero-size bundle could arrive at the destination via this route.
func (r *Route) BestDeliveryTime() int64 { return r.bestDeliveryTime }

// Volume returns the route's bottleneck volume: the minimum effective
// volume limit over all hops.
func (r *Route) Volume() int64 { return r.volume }

// Confidence returns the product of every hop's confidence.
func (r *Route) Confidence() float64 { return r.confidence }
