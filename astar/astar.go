package astar

import (
	"container/heap"

	"github.com/katalvlaran/plexus/core"
)

// Greedy runs best-first search from from to to, expanding pending nodes
// in ascending order of heuristic value. h is evaluated once per candidate
// edge, with the candidate node's value and the connecting edge's value;
// lower values are expanded earlier. The path is returned source-first
// with ok=true, or (nil, false) if to is never reached.
//
// The back-pointer array doubles as the already-queued guard, so each node
// is enqueued at most once and h is never re-evaluated or combined with
// the cost of the path so far. If an edge leads to an identifier with no
// stored node value, the search aborts with (nil, false).
func Greedy[V, E any](g *core.Graph[V, E], from, to core.NodeID, h func(v V, e E) float64) ([]core.NodeID, bool) {
	bound := g.NodeBound()
	prev := make([]core.NodeID, bound)
	seen := make([]bool, bound)

	pending := &keyHeap{{node: from}}
	heap.Init(pending)

	for pending.Len() > 0 {
		cur := heap.Pop(pending).(keyed).node
		if cur == to {
			return backtrack(prev, from, to), true
		}

		for n, e := range g.Neighbors(cur) {
			v, ok := g.Node(n)
			if !ok {
				return nil, false
			}
			eval := h(v, e)
			if seen[n] {
				continue
			}
			seen[n] = true
			prev[n] = cur
			heap.Push(pending, keyed{key: eval, node: n})
		}
	}

	return nil, false
}

// AStar finds the minimum-weight path from from to to, ordering pending
// nodes by f = g + h: the accumulated edge weight plus h evaluated on the
// candidate node's value. Returns the total weight, the path source-first,
// and ok=true; or (0, nil, false) when to is unreachable.
//
// Minimality holds when h is admissible (it never overestimates the
// remaining cost to to); h ≡ 0 degenerates to Dijkstra. Neighbors with no
// stored node value are skipped — h needs a value to look at.
func AStar[V any, E core.Weight](g *core.Graph[V, E], from, to core.NodeID, h func(v V) float64) (E, []core.NodeID, bool) {
	bound := g.NodeBound()
	gScore := make([]score[E], bound)
	gScore[from] = score[E]{prev: from, known: true}
	closed := make([]bool, bound)

	pending := &keyHeap{{node: from}}
	heap.Init(pending)

	for pending.Len() > 0 {
		cur := heap.Pop(pending).(keyed).node
		if cur == to {
			return gScore[to].weight, backtrackScore(gScore, from, to), true
		}
		// Stale entries surface here once a better path closed the node.
		if closed[cur] {
			continue
		}
		closed[cur] = true

		for n, w := range g.Neighbors(cur) {
			v, ok := g.Node(n)
			if !ok {
				continue
			}
			cand := gScore[cur].weight + w
			if gScore[n].known && gScore[n].weight <= cand {
				continue
			}
			gScore[n] = score[E]{weight: cand, prev: cur, known: true}
			heap.Push(pending, keyed{key: float64(cand) + h(v), node: n})
		}
	}

	var zero E

	return zero, nil, false
}

// score is the per-node accumulated weight and predecessor for AStar.
type score[E core.Weight] struct {
	weight E
	prev   core.NodeID
	known  bool
}

// backtrack walks a plain predecessor array from to up to from, reversed
// to a from-first path.
func backtrack(prev []core.NodeID, from, to core.NodeID) []core.NodeID {
	path := []core.NodeID{to}
	for path[len(path)-1] != from {
		path = append(path, prev[path[len(path)-1]])
	}
	reverse(path)

	return path
}

// backtrackScore is backtrack over AStar's score records.
func backtrackScore[E core.Weight](scores []score[E], from, to core.NodeID) []core.NodeID {
	path := []core.NodeID{to}
	for path[len(path)-1] != from {
		path = append(path, scores[path[len(path)-1]].prev)
	}
	reverse(path)

	return path
}

func reverse(path []core.NodeID) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

// keyed is a pending (priority key, node) pair.
type keyed struct {
	key  float64
	node core.NodeID
}

// keyHeap is a duplicate-tolerant min-heap of keyed entries, ordered by
// key and then node identifier so equal-keyed entries stay distinct.
type keyHeap []keyed

func (h keyHeap) Len() int { return len(h) }

func (h keyHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].node < h[j].node
}

func (h keyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *keyHeap) Push(x interface{}) { *h = append(*h, x.(keyed)) }

func (h *keyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
