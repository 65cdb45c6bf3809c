package contact

// SearchIndex returns the smallest index i such that contacts[i].End > t,
// i.e. the earliest contact in a time-sorted, non-overlapping list that
// is still usable for data arriving at time t. contacts must be sorted
// ascending by Start and must be non-empty; overlapping intervals are
// undefined behavior. If no contact has End > t, the last index is
// returned.
//
// Mirrors DtnSim's contact_search_index (libcgr.cpp:480) exactly,
// including its two-pointer narrowing (rather than the more idiomatic
// sort.Search), so the returned index is pinned bit-for-bit against the
// reference.
func SearchIndex(contacts []Contact, t int64) int {
	left, right := 0, len(contacts)-1
	if contacts[left].End > t {
		return left
	}
	for left < right-1 {
		mid := (left + right) / 2
		if contacts[mid].End > t {
			right = mid
		} else {
			left = mid
		}
	}

	return right
}

// Search returns the contact at SearchIndex(contacts, t): the earliest
// contact in contacts still usable for data arriving at time t.
func Search(contacts []Contact, t int64) Contact {
	return contacts[SearchIndex(contacts, t)]
}
