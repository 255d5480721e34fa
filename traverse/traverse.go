package traverse

import (
	"iter"

	"github.com/katalvlaran/plexus/core"
)

// Mode selects the order in which pending nodes are expanded.
type Mode int

const (
	// BreadthFirst pops the pending queue FIFO, expanding the frontier in
	// waves of increasing edge distance.
	BreadthFirst Mode = iota

	// DepthFirst pops the pending queue LIFO, diving along one branch
	// before backtracking.
	DepthFirst
)

// next pops one identifier from the pending queue according to the mode.
// The queue must be non-empty.
func (m Mode) next(queue *[]core.NodeID) core.NodeID {
	q := *queue
	if m == DepthFirst {
		id := q[len(q)-1]
		*queue = q[:len(q)-1]

		return id
	}
	id := q[0]
	*queue = q[1:]

	return id
}

// Visit returns a lazy sequence of the (id, value) pairs of every node
// reachable from from, in mode order. Each node appears at most once: it
// is marked visited when enqueued, not when dequeued. The sequence is
// finite and single-use; values are produced as the consumer pulls.
//
// Neighbor expansion follows the edge map's canonical-key order, so the
// exact sequence is deterministic for a given graph.
// Complexity: O(R·E) time for R reachable nodes (Neighbors is a full edge
// scan), O(NodeBound) space.
func Visit[V, E any](g *core.Graph[V, E], from core.NodeID, mode Mode) iter.Seq2[core.NodeID, V] {
	return func(yield func(core.NodeID, V) bool) {
		visited := make([]bool, g.NodeBound())
		visited[from] = true
		queue := []core.NodeID{from}

		for len(queue) > 0 {
			cur := mode.next(&queue)
			for n := range g.Neighbors(cur) {
				if visited[n] {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
			v, ok := g.Node(cur)
			if !ok {
				// A dangling edge led here; there is no value to yield.
				return
			}
			if !yield(cur, v) {
				return
			}
		}
	}
}

// Search finds a path from from to to, returning the node identifiers in
// visitation order (from first, to last) and ok=true, or (nil, false) if
// to is never reached. The engine stops the first time to is dequeued.
//
// BreadthFirst yields a path with the fewest edges; DepthFirst yields
// whichever path the dive finds first.
// Complexity: O(R·E) time, O(NodeBound) space.
func Search[V, E any](g *core.Graph[V, E], from, to core.NodeID, mode Mode) ([]core.NodeID, bool) {
	bound := g.NodeBound()
	cameFrom := make([]core.NodeID, bound)
	seen := make([]bool, bound)
	queue := []core.NodeID{from}

	for len(queue) > 0 {
		cur := mode.next(&queue)
		if cur == to {
			return backtrack(cameFrom, from, to), true
		}
		for n := range g.Neighbors(cur) {
			// seen doubles as "back-pointer recorded"; the start node is
			// deliberately not pre-marked, matching the engine's contract
			// that back-pointers exist only for discovered nodes.
			if seen[n] {
				continue
			}
			seen[n] = true
			cameFrom[n] = cur
			queue = append(queue, n)
		}
	}

	return nil, false
}

// backtrack walks the back-pointer array from to up to from and reverses
// the result, producing a from-first path. to must have been discovered.
func backtrack(cameFrom []core.NodeID, from, to core.NodeID) []core.NodeID {
	path := []core.NodeID{to}
	for path[len(path)-1] != from {
		path = append(path, cameFrom[path[len(path)-1]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
