// Package cgrouting is the root of a small Contact Graph Routing engine for
// delay/disruption-tolerant networks (DTN).
//
// Given a time-indexed contact plan — scheduled point-to-point
// communication opportunities between nodes, typical of space and
// intermittently-connected terrestrial networks — the engine finds the
// contact chain that delivers a bundle to a destination at the earliest
// possible time, honoring per-contact start/end windows, one-way light
// time, data rate, and residual volume.
//
// Two independent searches are provided over the same contact plan:
//
//	cgr/ — a per-contact Dijkstra (CGR), treating contacts as graph nodes
//	cmr/ — a per-vertex multigraph Dijkstra (CMR), treating network nodes
//	       as graph vertices with time-ordered multi-edges between them
//
// Supporting packages:
//
//	contact/    — Contact, NodeId, ContactPlan, and contact-plan loading
//	route/      — Route construction and the delivery-time/volume/
//	              confidence metric recurrence
//	multigraph/ — ContactMultigraph, the per-vertex adjacency structure CMR
//	              searches over
//	internal/obs — logging and metrics wiring shared by cgr and cmr
//
// The engine is single-threaded and synchronous: cgr.Search mutates
// per-contact bookkeeping fields on the supplied ContactPlan and must not
// be run concurrently against the same plan from multiple goroutines.
// cmr.Search builds its own multigraph and does not mutate the plan.
// See each package's doc comment for algorithm detail and complexity.
package cgrouting
