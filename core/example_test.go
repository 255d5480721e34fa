package core_test

import (
	"fmt"

	"github.com/katalvlaran/plexus/core"
)

// ExampleGraph builds a small labelled triangle and walks the query
// surface: neighbor iteration is always in canonical-key order.
func ExampleGraph() {
	g := core.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")

	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(c, a, 3)

	fmt.Println(g.NumNodes(), g.NumEdges())
	for n, w := range g.Neighbors(a) {
		v, _ := g.Node(n)
		fmt.Println(n, v, w)
	}
	// Output:
	// 3 3
	// 1 b 1
	// 2 c 3
}

// ExampleGraph_AddEdge shows the overwrite contract: the canonical key
// dedupes endpoint order and the previous value comes back.
func ExampleGraph_AddEdge() {
	g := core.New[struct{}, int]()
	a := g.AddNode(struct{}{})
	b := g.AddNode(struct{}{})

	_, replaced := g.AddEdge(a, b, 5)
	fmt.Println(replaced)

	prev, replaced := g.AddEdge(b, a, 7)
	fmt.Println(replaced, prev, g.NumEdges())
	// Output:
	// false
	// true 5 1
}
