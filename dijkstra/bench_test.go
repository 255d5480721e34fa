package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/plexus/core"
	"github.com/katalvlaran/plexus/dijkstra"
)

// BenchmarkDijkstra_Chain routes end to end over a 1k-node weighted chain.
func BenchmarkDijkstra_Chain(b *testing.B) {
	const n = 1000
	g := core.New[struct{}, int]()
	for i := 0; i <= n; i++ {
		g.AddNode(struct{}{})
	}
	for i := core.NodeID(0); i < n; i++ {
		g.AddEdge(i, i+1, 2)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, ok := dijkstra.Dijkstra(g, 0, n); !ok {
			b.Fatal("no path")
		}
	}
}
