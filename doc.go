// Package plexus is an in-memory playground for graphs addressed by dense
// integer handles — build them, walk them, route across them.
//
// What's inside:
//
//	core/     — generic Graph[V, E]: ordered node arena + canonical-pair
//	            undirected edge map, with deterministic iteration
//	traverse/ — breadth-/depth-first visiting and path search over one
//	            shared engine
//	dijkstra/ — minimum-weight paths for numeric edge values
//	astar/    — heuristic pathfinding, both greedy best-first and
//	            textbook f = g + h
//	grid/     — rectangular grids with a bridge into core
//	vex/      — small float64 vectors for geometric heuristics
//	bloom/    — a probabilistic set, for when "have I seen this" may be
//	            answered approximately
//
// Why plexus?
//
//   - Handles, not hashes — nodes are dense integers, so per-node state in
//     the algorithms is a plain slice
//   - Deterministic — ordered maps under everything; same graph, same
//     iteration, same answer
//   - Absence is not an error — unreachable targets come back comma-ok,
//     panics are reserved for identifiers you never owned
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	four AddNode calls, four AddEdge calls, and traverse.Search(g, 0, 3,
//	traverse.BreadthFirst) returns [0 1 3].
//
//	go get github.com/katalvlaran/plexus
package plexus
