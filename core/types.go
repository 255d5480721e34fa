package core

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Weight constrains the edge-value types the weighted algorithms accept:
// any built-in integer or float. Algorithms additionally require weights
// to be non-negative; that precondition is documented, not enforced.
type Weight interface {
	constraints.Integer | constraints.Float
}

// NodeID identifies a node within its Graph. Identifiers are dense,
// monotonically assigned from zero, and never reused after removal.
type NodeID uint

// EdgeKey is the canonical key of an undirected edge: the endpoint pair
// ordered smallest-first, so (a,b) and (b,a) name the same edge.
type EdgeKey struct {
	U, V NodeID
}

// NewEdgeKey canonicalizes the endpoint pair (a, b).
// Complexity: O(1).
func NewEdgeKey(a, b NodeID) EdgeKey {
	if a <= b {
		return EdgeKey{U: a, V: b}
	}

	return EdgeKey{U: b, V: a}
}

// Touches reports whether id is one of the key's endpoints.
func (k EdgeKey) Touches(id NodeID) bool {
	return k.U == id || k.V == id
}

// Other returns the endpoint opposite to id. If id is not an endpoint,
// it returns k.U (callers are expected to check Touches first).
func (k EdgeKey) Other(id NodeID) NodeID {
	if k.U == id {
		return k.V
	}

	return k.U
}

// nodeItem is a node entry in the ordered node map.
type nodeItem[V any] struct {
	id  NodeID
	val V
}

// edgeItem is an edge entry in the ordered edge map.
type edgeItem[E any] struct {
	key EdgeKey
	val E
}

// btreeDegree is the branching factor for the backing B-trees.
const btreeDegree = 32

// Graph is an undirected graph with node values of type V and edge values
// of type E. The zero value is not usable; construct with New.
//
// nodes maps NodeID → V and edges maps EdgeKey → E, both as ordered
// B-trees. nextID is the high-water mark of assigned identifiers; it only
// ever grows, so removal never recycles an identifier.
type Graph[V, E any] struct {
	nodes  *btree.BTreeG[nodeItem[V]]
	edges  *btree.BTreeG[edgeItem[E]]
	nextID NodeID
}

// New creates an empty Graph.
// Complexity: O(1).
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		nodes: btree.NewG(btreeDegree, func(a, b nodeItem[V]) bool {
			return a.id < b.id
		}),
		edges: btree.NewG(btreeDegree, func(a, b edgeItem[E]) bool {
			if a.key.U != b.key.U {
				return a.key.U < b.key.U
			}

			return a.key.V < b.key.V
		}),
	}
}
