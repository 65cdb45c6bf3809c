// Package route implements Route, a temporally feasible chain of Contacts
// built incrementally by a CGR or CMR search, together with the metric
// recurrence (best delivery time, bottleneck volume, confidence) that is
// refreshed after every hop is appended.
//
// A Route may be built directly from a seed Contact, or as a child of a
// parent Route whose hops are logically prepended without being copied
// into the child until Hops is called — mirroring the reference
// implementation's Route(Contact, *Route) constructor, even though
// neither cgr.Search nor cmr.Search in this module currently produces
// chained routes (both build one Route per search from a fully
// materialized hop list). The capability is kept because it is part of
// Route's construction semantics, not an optimization detail tied to a
// particular caller.
//
// Invariant: each hop's To equals the next hop's From; no NodeId other
// than a chained endpoint appears twice as a destination; each hop's End
// exceeds the previous hop's Start+OWLT. Append asserts Eligible and
// panics if violated — this is a programming error, not a recoverable
// condition.
package route

import "errors"

// ErrIneligibleContact is the message carried by the panic Append raises
// when asked to append a Contact that fails Eligible. It is exported as
// an error (rather than a raw string) so recover-based tests can assert
// on it with errors.Is against the panic value.
var ErrIneligibleContact = errors.New("route: contact is not eligible to extend this route")
