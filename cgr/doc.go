// Package cgr implements Contact Graph Routing: a Dijkstra search whose
// graph nodes are Contacts themselves (not network nodes), used to find
// the contact chain that delivers data to a destination node at the
// earliest possible time.
//
// Overview:
//
//   - Each Contact is a graph node; an edge exists from a contact c to
//     every contact whose From equals c.To (the neighbor index built once
//     per search).
//   - The search relaxes arrival times across these edges exactly once
//     per contact (each contact is marked Visited at most once), so the
//     loop terminates after at most len(plan.Contacts)+1 iterations (one
//     for the root, one per contact).
//   - Relaxation uses "<=" rather than "<": ties between equal-cost
//     candidate predecessors are resolved in favor of the most recently
//     discovered one. This is an intentional dominance relaxation carried
//     over from the reference implementation.
//
// Complexity: each contact is visited at most once (selection scans the
// full plan each time it runs, giving O(n) per selection and O(n^2)
// overall for a plan of n contacts) and each contact's neighbor list is
// scanned once, giving O(n^2 + e) total where e is the number of
// from-to edges.
//
// Thread safety: Search mutates the bookkeeping fields of every contact
// in plan except the caller-supplied root; it is not safe to call Search
// concurrently against the same plan.
package cgr
