// Graphviz DOT rendering for debugging and visualization.
package core

import (
	"fmt"
	"strings"
)

// ToDOT renders the graph as Graphviz DOT text, one node line per live
// node (labelled with its value) and one undirected edge line per stored
// edge (labelled with the edge value). Output order follows the ordered
// maps, so the text is deterministic for a given graph.
//
// The result is meant for piping into dot(1) or an online viewer; it makes
// no attempt at layout hints.
func (g *Graph[V, E]) ToDOT(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph %s {\n", name)
	for id, v := range g.Nodes() {
		fmt.Fprintf(&b, "  n%d [label=%q];\n", id, fmt.Sprint(v))
	}
	for k, e := range g.Edges() {
		fmt.Fprintf(&b, "  n%d -- n%d [label=%q];\n", k.U, k.V, fmt.Sprint(e))
	}
	b.WriteString("}\n")

	return b.String()
}
