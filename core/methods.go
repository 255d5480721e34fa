package core

import "iter"

// AddNode appends a node carrying v and returns its freshly assigned
// identifier. Identifiers increase by one per call and are never handed
// out twice, even after RemoveNode.
// Complexity: O(log V).
func (g *Graph[V, E]) AddNode(v V) NodeID {
	id := g.nextID
	g.nextID++
	g.nodes.ReplaceOrInsert(nodeItem[V]{id: id, val: v})

	return id
}

// RemoveNode deletes the node and purges every edge with either endpoint
// equal to id, returning the removed value, or ok=false if id was absent.
// The edge purge runs unconditionally, so dangling edges created through
// the permissive AddEdge are swept too. Surviving nodes keep their
// identifiers; the id itself is never reused.
// Complexity: O(E + log V).
func (g *Graph[V, E]) RemoveNode(id NodeID) (V, bool) {
	item, ok := g.nodes.Delete(nodeItem[V]{id: id})

	// Collect first: deleting while ascending is undefined for the B-tree.
	var touching []EdgeKey
	g.edges.Ascend(func(it edgeItem[E]) bool {
		if it.key.Touches(id) {
			touching = append(touching, it.key)
		}

		return true
	})
	for _, k := range touching {
		g.edges.Delete(edgeItem[E]{key: k})
	}

	return item.val, ok
}

// Node returns the value stored at id, with ok=false if id is absent.
// Complexity: O(log V).
func (g *Graph[V, E]) Node(id NodeID) (V, bool) {
	item, ok := g.nodes.Get(nodeItem[V]{id: id})

	return item.val, ok
}

// HasNode reports whether id names a live node.
// Complexity: O(log V).
func (g *Graph[V, E]) HasNode(id NodeID) bool {
	return g.nodes.Has(nodeItem[V]{id: id})
}

// NumNodes returns the number of live nodes.
// Complexity: O(1).
func (g *Graph[V, E]) NumNodes() int {
	return g.nodes.Len()
}

// NodeBound returns one past the highest identifier ever assigned. After
// removals NumNodes can be smaller than NodeBound; per-node arrays indexed
// by NodeID must be sized by NodeBound, which is what the traversal
// packages do.
// Complexity: O(1).
func (g *Graph[V, E]) NodeBound() NodeID {
	return g.nextID
}

// Nodes iterates all (id, value) pairs in ascending identifier order.
// Complexity: O(V) for a full drain.
func (g *Graph[V, E]) Nodes() iter.Seq2[NodeID, V] {
	return func(yield func(NodeID, V) bool) {
		g.nodes.Ascend(func(it nodeItem[V]) bool {
			return yield(it.id, it.val)
		})
	}
}
