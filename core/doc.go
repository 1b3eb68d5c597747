// Package core provides the mutable node/edge model every semgraph algorithm runs on.
//
// The Graph G = (V,E) owns all of its nodes and edges:
//
//   - Nodes are keyed by a unique string id and kept in insertion order.
//   - Edges are ordered pairs (Node1 → Node2) kept in insertion order.
//     A reverse edge B→A is a separate object from A→B.
//   - Every node carries a Links index: neighbor id → the edge used to reach it.
//     A's link to B yields A→B; B's link to A yields B→A when it exists,
//     otherwise the same A→B edge. Undirected consumers therefore see the pair
//     as connected either way, while directed consumers can tell them apart.
//   - Nodes and edges never point back at their Graph. They carry the owner's
//     GraphKey instead, and every mutation goes through Graph methods.
//
// Derived state:
//
//   - Adjacency maps (per-node arc costs, 1 − 0.5×weight) are built on demand
//     and cached under (directed, reversed, stochastic, heuristic) keys.
//     Any structural change or edge-weight write evicts the cache, so a cached
//     map is always an exact reflection of the current edges.
//   - Eigenvector weight and betweenness centrality are stored on nodes by the
//     centrality package and reset to "uncomputed" on the same events.
//
// Configuration:
//
//	NewGraph(opts ...GraphOption)
//	  – WithSpacing(f)       world-coordinate scale for node positions (default 10)
//	  – WithLayout(l)        layout engine stepped by Graph.Update
//	  – WithNodeFactory(f)   construct domain-specific node variants
//	  – WithEdgeFactory(f)   construct domain-specific edge variants
//	  – WithLogger(l)        charmbracelet logger for debug output
//
// Concurrency:
//
//	A Graph is single-writer. Concurrent readers must each take their own Copy.
package core
