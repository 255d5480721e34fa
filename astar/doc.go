// Package astar provides heuristic-guided pathfinding over a core.Graph,
// in two deliberately distinct flavors.
//
// Greedy is a pure best-first search: pending nodes are ordered by the
// heuristic value of the candidate edge alone, with no accumulation of
// path cost. Each node is enqueued at most once and the heuristic is
// evaluated once per candidate edge. This is fast and well behaved on the
// planar, geometric graphs it was built for — a heuristic like "euclidean
// distance to the target" steers it straight there — but it is not
// guaranteed to return a minimal path on general graphs. That is its
// contract, not a bug.
//
// AStar is the textbook algorithm: pending nodes are ordered by
// f = g + h, the accumulated edge weight plus the heuristic of the
// candidate node. With an admissible heuristic (never overestimating the
// true remaining cost) the returned path is minimal. Use AStar when
// optimality matters and Greedy when the heuristic alone is trustworthy
// guidance.
//
// Both share the duplicate-tolerant min-heap ordered by (key, node), so
// equal-keyed entries for different nodes never collide. Unreachable
// targets are a normal (nil/zero, false) outcome; identifiers never
// returned by AddNode panic.
package astar
