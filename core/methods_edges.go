package core

import "iter"

// AddEdge inserts an undirected edge between a and b carrying v, using the
// canonical key. If the pair already had an edge, the value is overwritten
// and the previous value returned with replaced=true.
//
// Endpoints are not validated: an edge may reference identifiers that do
// not (or do not yet) exist as nodes. Callers batch edges before or after
// nodes, so this is deliberate, but it is a trap: such edges are invisible
// to traversal until both endpoints exist, and RemoveNode sweeps them.
// Complexity: O(log E).
func (g *Graph[V, E]) AddEdge(a, b NodeID, v E) (E, bool) {
	prev, ok := g.edges.ReplaceOrInsert(edgeItem[E]{key: NewEdgeKey(a, b), val: v})

	return prev.val, ok
}

// AddEdgeWith derives the edge value from the two endpoint node values.
// Unlike AddEdge it requires both endpoints to exist; if either is absent
// the graph is unchanged and ok=false. On success it behaves exactly like
// AddEdge(a, b, f(va, vb)), returning any previous value.
// Complexity: O(log V + log E).
func (g *Graph[V, E]) AddEdgeWith(a, b NodeID, f func(va, vb V) E) (E, bool) {
	var zero E
	va, ok := g.Node(a)
	if !ok {
		return zero, false
	}
	vb, ok := g.Node(b)
	if !ok {
		return zero, false
	}
	prev, _ := g.AddEdge(a, b, f(va, vb))

	return prev, true
}

// RemoveEdge deletes the edge between a and b (in either endpoint order),
// returning the removed value, or ok=false if no such edge exists.
// Complexity: O(log E).
func (g *Graph[V, E]) RemoveEdge(a, b NodeID) (E, bool) {
	item, ok := g.edges.Delete(edgeItem[E]{key: NewEdgeKey(a, b)})

	return item.val, ok
}

// Edge returns the value on the edge between a and b, with ok=false if the
// pair is not connected. Endpoint order does not matter.
// Complexity: O(log E).
func (g *Graph[V, E]) Edge(a, b NodeID) (E, bool) {
	item, ok := g.edges.Get(edgeItem[E]{key: NewEdgeKey(a, b)})

	return item.val, ok
}

// AreNeighbors reports whether an edge connects a and b.
// Complexity: O(log E).
func (g *Graph[V, E]) AreNeighbors(a, b NodeID) bool {
	return g.edges.Has(edgeItem[E]{key: NewEdgeKey(a, b)})
}

// NumEdges returns the number of stored edges.
// Complexity: O(1).
func (g *Graph[V, E]) NumEdges() int {
	return g.edges.Len()
}

// Neighbors iterates the (neighbor id, edge value) pairs of every edge
// touching id. The order is the edge map's canonical-key order, not edge
// insertion order; callers must not rely on insertion order.
//
// This scans the whole edge map, so a full drain costs O(E) regardless of
// the node's degree — acceptable for sparse graphs, a known ceiling for
// dense ones.
func (g *Graph[V, E]) Neighbors(id NodeID) iter.Seq2[NodeID, E] {
	return func(yield func(NodeID, E) bool) {
		g.edges.Ascend(func(it edgeItem[E]) bool {
			if !it.key.Touches(id) {
				return true
			}

			return yield(it.key.Other(id), it.val)
		})
	}
}

// Edges iterates all (key, value) pairs in canonical-key order.
// Complexity: O(E) for a full drain.
func (g *Graph[V, E]) Edges() iter.Seq2[EdgeKey, E] {
	return func(yield func(EdgeKey, E) bool) {
		g.edges.Ascend(func(it edgeItem[E]) bool {
			return yield(it.key, it.val)
		})
	}
}

// PathEdges returns the edge values between consecutive identifiers of
// path, in traversal order. ok=false if any consecutive pair is not
// connected (the partial prefix collected so far is returned with it).
// Complexity: O(len(path) · log E).
func (g *Graph[V, E]) PathEdges(path []NodeID) ([]E, bool) {
	if len(path) < 2 {
		return nil, true
	}
	vals := make([]E, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		v, ok := g.Edge(path[i], path[i+1])
		if !ok {
			return vals, false
		}
		vals = append(vals, v)
	}

	return vals, true
}
