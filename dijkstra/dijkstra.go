package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/plexus/core"
)

// record is the per-node best state: the lowest cumulative weight found so
// far and the predecessor that produced it. known distinguishes "never
// reached" from a genuine zero weight.
type record[E core.Weight] struct {
	weight E
	prev   core.NodeID
	known  bool
}

// Dijkstra finds the path from from to to minimizing total edge weight,
// returning the accumulated weight, the node identifiers source-first, and
// ok=true; or (0, nil, false) when to is unreachable.
//
// A neighbor candidate is recorded and enqueued unless a strictly better
// weight is already known for it; equal-weight candidates re-record, so
// among equal-weight paths the last one discovered wins. Stale heap
// entries are left in place and become harmless re-expansions.
func Dijkstra[V any, E core.Weight](g *core.Graph[V, E], from, to core.NodeID) (E, []core.NodeID, bool) {
	best := make([]record[E], g.NodeBound())
	best[from] = record[E]{weight: 0, prev: from, known: true}

	pending := &minHeap[E]{{node: from}}
	heap.Init(pending)

	for pending.Len() > 0 {
		cur := heap.Pop(pending).(entry[E])
		if cur.node == to {
			return cur.weight, backtrack(best, from, to), true
		}

		for n, w := range g.Neighbors(cur.node) {
			cand := cur.weight + w
			if best[n].known && best[n].weight < cand {
				continue
			}
			best[n] = record[E]{weight: cand, prev: cur.node, known: true}
			heap.Push(pending, entry[E]{weight: cand, node: n})
		}
	}

	var zero E

	return zero, nil, false
}

// backtrack walks predecessors from to up to from and reverses, producing
// a from-first path. to must have a known record.
func backtrack[E core.Weight](best []record[E], from, to core.NodeID) []core.NodeID {
	path := []core.NodeID{to}
	for path[len(path)-1] != from {
		path = append(path, best[path[len(path)-1]].prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// entry is a pending (weight, node) pair in the priority queue.
type entry[E core.Weight] struct {
	weight E
	node   core.NodeID
}

// minHeap is a duplicate-tolerant min-heap of entries, ordered by weight
// and then by node identifier so equal-weight entries never collide.
type minHeap[E core.Weight] []entry[E]

func (h minHeap[E]) Len() int { return len(h) }

func (h minHeap[E]) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].node < h[j].node
}

func (h minHeap[E]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minHeap[E]) Push(x interface{}) { *h = append(*h, x.(entry[E])) }

func (h *minHeap[E]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
