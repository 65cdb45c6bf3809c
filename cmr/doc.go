// Package cmr implements Contact Multigraph Routing: a Dijkstra search
// whose graph nodes are network nodes (not contacts), with time-ordered
// multi-edges between them resolved via binary search as the search
// reaches each vertex.
//
// Overview:
//
//   - Search builds a multigraph.ContactMultigraph from the supplied
//     plan and destination, then runs Dijkstra over its vertices using a
//     container/heap priority queue with lazy decrease-key: a vertex may
//     be pushed multiple times as its arrival time improves, and stale
//     entries for already-visited vertices are discarded on pop.
//   - Ties in the priority queue are broken by NodeId ascending, making
//     vertex selection order fully deterministic.
//   - The search stops on the first pop of the destination vertex — this
//     is optimal because the queue pops vertices in non-decreasing
//     arrival-time order and every edge has non-negative delay.
//
// Complexity: O((V + E) log V) where V is the number of nodes and E the
// number of from-to adjacency pairs, each heap push/pop costing
// O(log(V+E)) and each vertex's neighbor review costing one binary
// search (O(log k) for k contacts on that edge) per neighbor.
//
// Thread safety: Search builds and discards its own ContactMultigraph
// per call and does not mutate plan; it is safe to call concurrently
// against the same plan from multiple goroutines, unlike cgr.Search.
package cmr
