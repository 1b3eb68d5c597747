// Package semgraph is an in-memory engine for analysing semantic graphs:
// networks of concepts joined by weighted, typed relations.
//
// 🚀 What is in the box?
//
//	• Core model: nodes, edges, per-node links, typed configs, factories
//	• Adjacency: cached cost maps (1 − 0.5×weight) with heuristics
//	• Traversal: flatten, DFS, BFS, bounded simple paths, fringe
//	• Shortest paths: Dijkstra (single pair / single source), Floyd–Warshall
//	• Centrality: Brandes betweenness, eigenvector power iteration, ranking
//	• Layout: seeded spring simulation stepped through Graph.Update
//	• Partition & topology: components, cliques, unlink/redirect/cut/insert
//
// ✨ How it fits together
//
//   - Every algorithm reads a core.Graph; scores are written back onto nodes
//     and reset whenever the topology or an edge weight changes.
//   - Loaders (ingest) and generators (builder) only use AddNode/AddEdge, so
//     custom node/edge factories flow through unchanged.
//   - Single writer: copy a graph (Graph.Copy, partition.Partition) to
//     analyse it from several goroutines.
//
// Packages:
//
//	core/         Graph, Node, Edge, Links, Adjacency cache
//	traverse/     Flatten, DepthFirst, BreadthFirst, Paths, Fringe
//	shortest/     ShortestPath, ShortestPaths, AllPairs
//	centrality/   Betweenness, Eigenvector, Ranked
//	layout/       Spring (core.Layout)
//	partition/    Partition, Clique, Cliques
//	topology/     Unlink, Redirect, Cut, Insert
//	builder/      Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse
//	config/       TOML/YAML settings
//	ingest/       JSON documents and CSV edge lists
//
// Quick ASCII example:
//
//	tree ── nest ── bird ── fly
//	                 │       │
//	                ant ── insect
//
//	shortest.ShortestPath(g, "tree", "fly") → [tree nest bird fly]
//
// The semgraph command (cmd/semgraph) exposes path, centrality, layout and
// partition over graph files.
package semgraph
