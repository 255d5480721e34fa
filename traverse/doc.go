// Package traverse provides unweighted traversal over a core.Graph: a lazy
// visitor yielding every node reachable from a start node, and a path
// search between two nodes. Both share one engine parameterized by Mode —
// the pending queue is popped FIFO for BreadthFirst and LIFO for
// DepthFirst.
//
// Visit marks nodes on enqueue, so each reachable node is yielded at most
// once; the exact BFS order when several edges lead into the same node
// follows from that choice. Search records a back-pointer per node and
// reconstructs the path the moment the target is dequeued. In BreadthFirst
// mode the path is shortest by edge count; in DepthFirst mode it is some
// path, with no shortness guarantee — that asymmetry is part of the
// contract.
//
// An unreachable target is a normal (nil, false) outcome, not an error.
// Passing a start identifier never returned by AddNode panics.
package traverse
