package contact

// NodeId identifies a network node. Uniqueness within a ContactPlan is
// assumed by construction; ordering (NodeId is an ordered integer type) is
// used only to break ties deterministically in CMR's priority queue.
type NodeId int64

// noPredecessor marks a Contact with no recorded predecessor.
const noPredecessor = -1

// Contact is a scheduled, directional communication opportunity between
// two nodes, plus the transient bookkeeping a route search writes into it.
//
// From, To, Start, End, Rate, OWLT and Confidence are fixed at
// construction and must never change afterwards; Equal compares exactly
// these seven fields. Volume and MAV are derived once at construction and
// are read-only gates thereafter — MAV is never mutated by a search.
//
// ArrivalTime, Visited, PredecessorIdx and VisitedNodes are CGR/CMR
// Dijkstra scratch space; Suppressed and SuppressedNextHop are
// route-management scratch space a caller may set between searches to
// exclude contacts without removing them from the plan. The Dijkstra
// scratch space is reset by ClearDijkstraWorkingArea before a fresh search,
// except on the caller-designated root Contact; Suppressed and
// SuppressedNextHop are left as the caller set them.
type Contact struct {
	From, To   NodeId
	Start, End int64
	Rate       int64
	OWLT       int64
	Confidence float64

	Volume int64
	MAV    [3]int64

	ArrivalTime    int64
	Visited        bool
	PredecessorIdx int
	VisitedNodes   map[NodeId]struct{}

	Suppressed        bool
	SuppressedNextHop map[Key]struct{}
}

// Key is the comparable projection of a Contact's fixed fields, suitable
// as a map key (e.g. for SuppressedNextHop membership tests) since Contact
// itself holds maps and is therefore not comparable with ==.
type Key struct {
	From, To   NodeId
	Start, End int64
	Rate       int64
	OWLT       int64
	Confidence float64
}

// KeyOf projects c's fixed fields into a comparable Key.
func KeyOf(c Contact) Key {
	return Key{
		From: c.From, To: c.To,
		Start: c.Start, End: c.End,
		Rate: c.Rate, OWLT: c.OWLT,
		Confidence: c.Confidence,
	}
}

// New constructs a Contact with confidence 1.0 and one-way light time 1,
// the defaults assigned when a contact plan's loader does not supply
// them explicitly.
func New(from, to NodeId, start, end, rate int64) Contact {
	return NewWithConfidence(from, to, start, end, rate, 1.0, 1)
}

// NewWithConfidence constructs a Contact with an explicit confidence and
// one-way light time, deriving Volume and seeding MAV to three copies of
// it, and clearing all search bookkeeping.
func NewWithConfidence(from, to NodeId, start, end, rate int64, confidence float64, owlt int64) Contact {
	volume := rate * (end - start)
	c := Contact{
		From: from, To: to,
		Start: start, End: end,
		Rate: rate, OWLT: owlt, Confidence: confidence,
		Volume: volume,
		MAV:    [3]int64{volume, volume, volume},
	}
	c.ClearDijkstraWorkingArea()

	return c
}

// ClearDijkstraWorkingArea resets all Dijkstra scratch fields: ArrivalTime
// to +∞ (represented as math.MaxInt64 via the sentinel Infinity), Visited
// to false, PredecessorIdx to none, and VisitedNodes to empty. It does not
// touch Suppressed/SuppressedNextHop, which are route-management state a
// caller controls across searches, not per-search Dijkstra state.
func (c *Contact) ClearDijkstraWorkingArea() {
	c.ArrivalTime = Infinity
	c.Visited = false
	c.PredecessorIdx = noPredecessor
	c.VisitedNodes = nil
}

// Infinity represents an unreached ArrivalTime. Using a finite sentinel
// (rather than a floating-point +Inf) keeps ArrivalTime an ordinary int64
// so every arithmetic comparison in the search loop stays integer-exact.
const Infinity = int64(1) << 62

// Equal reports whether c and other have identical fixed fields. Search
// bookkeeping is excluded, matching DtnSim's Contact::operator== (which
// likewise compares only the fixed fields, libcgr.cpp:23).
func (c Contact) Equal(other Contact) bool {
	return c.From == other.From &&
		c.To == other.To &&
		c.Start == other.Start &&
		c.End == other.End &&
		c.Rate == other.Rate &&
		c.OWLT == other.OWLT &&
		c.Confidence == other.Confidence
}

// IsReverseOf reports whether other is the reverse hop of c, i.e.
// c.From == other.To && c.To == other.From. CGR's neighbor scan uses this
// to forbid immediately bouncing back across the contact just taken.
func (c Contact) IsReverseOf(other Contact) bool {
	return c.From == other.To && c.To == other.From
}

// MaxMAV returns the largest of the three mission-availability-vector
// counters, used as the §4.5 gate: a contact with MaxMAV() <= 0 carries no
// usable residual volume and is skipped during neighbor expansion.
func (c Contact) MaxMAV() int64 {
	m := c.MAV[0]
	if c.MAV[1] > m {
		m = c.MAV[1]
	}
	if c.MAV[2] > m {
		m = c.MAV[2]
	}

	return m
}

// VisitsNode reports whether node is already present in c's visited-nodes
// set — the path-so-far's destinations, used to forbid revisiting a node.
func (c Contact) VisitsNode(node NodeId) bool {
	if c.VisitedNodes == nil {
		return false
	}
	_, ok := c.VisitedNodes[node]

	return ok
}

// IsSuppressedNextHop reports whether candidate is forbidden as a
// successor of c.
func (c Contact) IsSuppressedNextHop(candidate Contact) bool {
	if c.SuppressedNextHop == nil {
		return false
	}
	_, ok := c.SuppressedNextHop[KeyOf(candidate)]

	return ok
}
