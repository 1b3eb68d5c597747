// Package traverse walks a core.Graph through its per-node Links.
//
// Every walk takes an optional Traversable predicate deciding, for a node and
// the edge leading out of it, whether the edge may be followed. Because a
// node's link to a neighbor yields the forward edge when one exists, the
// Directed predicate turns any walk into a directed-only variant.
//
// Walks:
//
//	Flatten(n, depth, traversable)       bounded-depth reachable closure
//	DepthFirst(n, visit, traversable)    recursive DFS, visit==true halts
//	BreadthFirst(n, visit, traversable)  FIFO BFS, visit==true halts
//	Paths(g, id1, id2, length)           every simple path of at most length nodes
//	Fringe(g, depth, traversable)        closures around leaf nodes
//
// All walks are deterministic: neighbors are visited in Links order.
package traverse
