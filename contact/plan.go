package contact

// ContactPlan is an ordered, indexed sequence of Contacts. It is the
// arena a route search mutates bookkeeping fields within: Contact's
// PredecessorIdx is an index into this slice rather than a pointer
// between elements of it, so the plan can be passed and copied by value
// without the aliasing hazards a language with owning pointers between
// sibling elements would have.
type ContactPlan struct {
	Contacts []Contact
}

// NewPlan wraps contacts as a ContactPlan. The slice is taken by
// reference, not copied: callers that need an independent plan should
// clone it first.
func NewPlan(contacts []Contact) *ContactPlan {
	return &ContactPlan{Contacts: contacts}
}

// Len returns the number of contacts in the plan.
func (p *ContactPlan) Len() int {
	return len(p.Contacts)
}

// At returns a pointer to the i'th contact, so callers can mutate its
// bookkeeping fields in place.
func (p *ContactPlan) At(i int) *Contact {
	return &p.Contacts[i]
}

// IndexOf returns the index of c within the plan by fixed-field identity,
// or -1 if no contact in the plan is Equal to c. cgr.Search uses it to find
// the root contact that the working-area reset skips.
func (p *ContactPlan) IndexOf(c Contact) int {
	for i := range p.Contacts {
		if p.Contacts[i].Equal(c) {
			return i
		}
	}

	return -1
}

// ResetWorkingAreaExcept clears the Dijkstra working area of every
// contact in the plan except the one at keepIdx (the caller's synthetic
// root), mirroring the reset loop at the top of DtnSim's dijkstra()
// (libcgr.cpp:284). Pass -1 to reset every contact.
func (p *ContactPlan) ResetWorkingAreaExcept(keepIdx int) {
	for i := range p.Contacts {
		if i == keepIdx {
			continue
		}
		p.Contacts[i].ClearDijkstraWorkingArea()
	}
}

// NeighborIndex maps each NodeId appearing as a contact's From (or To, so
// destinations with no outgoing contacts still get an empty entry) to the
// indices of contacts originating at that node, in plan order — the same
// per-node neighbor map DtnSim's dijkstra() builds once per search
// (libcgr.cpp:293).
func (p *ContactPlan) NeighborIndex() map[NodeId][]int {
	index := make(map[NodeId][]int, p.Len())
	for i, c := range p.Contacts {
		if _, ok := index[c.To]; !ok {
			index[c.To] = nil
		}
		index[c.From] = append(index[c.From], i)
	}

	return index
}
