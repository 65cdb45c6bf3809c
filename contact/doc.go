// Package contact defines Contact, the immutable descriptor of a scheduled
// communication opportunity between two network nodes, plus the transient
// per-search bookkeeping a Dijkstra-style route search writes into it, and
// ContactPlan, the ordered, indexed collection of Contacts a search runs
// over.
//
// A Contact is directional (From → To), open during the half-open interval
// [Start, End), and carries a data rate, a one-way light time, and a
// confidence in [0, 1]. Volume and the mission-availability-vector (MAV)
// gate are derived at construction time and never mutated by a search.
//
// Search bookkeeping — ArrivalTime, Visited, PredecessorIdx, VisitedNodes —
// is scratch space reset by ClearDijkstraWorkingArea before every search
// except the caller-supplied root Contact. Suppressed and SuppressedNextHop
// are caller-controlled and are not reset. Equality (Equal) compares only the seven fixed fields, so
// two Contacts that differ only in bookkeeping state still compare equal.
//
// Errors:
//
//	ErrMalformedPlan   - the plan document could not be decoded.
//	ErrUnknownEncoding - the plan document's file extension is not supported.
package contact

import "errors"

// Sentinel errors for the contact package.
var (
	// ErrMalformedPlan indicates a contact-plan document could not be decoded.
	ErrMalformedPlan = errors.New("contact: malformed plan document")

	// ErrUnknownEncoding indicates Load was given a path whose extension
	// does not map to a supported decoder.
	ErrUnknownEncoding = errors.New("contact: unrecognized contact-plan encoding")
)
