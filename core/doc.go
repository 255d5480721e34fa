// Package core defines the central Graph type: an undirected, in-memory
// graph whose nodes carry values of type V and whose edges carry values
// of type E.
//
// Nodes are addressed by dense integer identifiers (NodeID), handed out by
// AddNode in insertion order starting at zero. Identifiers are stable for
// the lifetime of the graph and are never reused: removing a node leaves a
// gap in the identifier space rather than renumbering survivors. Edges are
// keyed by the canonical unordered pair of their endpoints (EdgeKey), so
// adding an edge between two already-connected nodes overwrites the stored
// value and returns the previous one.
//
// Both mappings are backed by ordered B-trees, giving O(log n) point
// operations and deterministic, key-sorted iteration for Nodes, Edges and
// Neighbors. Neighbors is the one exception to the logarithmic bound: it
// filters the entire edge map linearly, which is fine for sparse graphs
// but a ceiling worth knowing about for dense ones.
//
// Error doctrine: there is no error type in this package. "Not present" is
// a legitimate outcome and is reported through comma-ok returns. Passing an
// identifier that was never returned by AddNode is API misuse; queries
// report such identifiers as absent, and the traversal packages may panic
// on them. AddEdge deliberately does not validate its endpoints — see its
// doc comment.
//
// The Graph carries no internal locking. Callers needing concurrent access
// must serialize it externally (single writer, or read-only sharing).
package core
