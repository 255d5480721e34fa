// Package dijkstra computes minimum-weight paths between two nodes of a
// core.Graph whose edge values are numeric weights.
//
// The algorithm keeps, per node, the best (cumulative weight, predecessor)
// pair found so far and a min-heap of pending (weight, node) entries. The
// heap permits duplicate entries; superseded entries are not removed, and
// re-insertion with a worse weight is prevented by the best-weight check
// at insertion time — there is deliberately no extraction-time staleness
// check. Heap ordering compares weight first and node identifier second,
// so equal-weight entries for different nodes stay distinct and the result
// under weight ties is well defined.
//
// Preconditions: edge weights must be non-negative (not validated — the
// minimality guarantee simply does not hold otherwise), and both endpoints
// must be identifiers previously returned by AddNode (out-of-range
// identifiers panic).
//
// An unreachable target is a normal (0, nil, false) outcome, not an error.
//
// Complexity: O((V + E·E') log E) time with the core's linear Neighbors
// scan (E' the average scan cost), O(V + E) space.
package dijkstra
