// Package dijkstra_test validates minimum-weight path computation: the
// canonical fixtures, unreachable targets, equal-weight tie handling, and
// a brute-force cross-check on a small dense graph.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/core"
	"github.com/katalvlaran/plexus/dijkstra"
)

// weighted builds a graph of n value-less nodes with uint32 weights.
func weighted(n int) *core.Graph[struct{}, uint32] {
	g := core.New[struct{}, uint32]()
	for i := 0; i < n; i++ {
		g.AddNode(struct{}{})
	}

	return g
}

func TestDijkstraChainVersusDirect(t *testing.T) {
	g := weighted(10)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 2)
	g.AddEdge(3, 4, 2)
	g.AddEdge(0, 4, 10)

	total, path, ok := dijkstra.Dijkstra(g, 0, 4)
	require.True(t, ok)
	require.Equal(t, uint32(8), total)
	require.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, path)

	// Raising one chain link tips the balance to the direct edge.
	g.AddEdge(2, 3, 6)
	total, path, ok = dijkstra.Dijkstra(g, 0, 4)
	require.True(t, ok)
	require.Equal(t, uint32(10), total)
	require.Equal(t, []core.NodeID{0, 4}, path)
}

func TestDijkstraNoPath(t *testing.T) {
	g := weighted(10)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 2)

	total, path, ok := dijkstra.Dijkstra(g, 4, 8)
	require.False(t, ok)
	require.Nil(t, path)
	require.Equal(t, uint32(0), total)
}

func TestDijkstraEqualWeightTies(t *testing.T) {
	// Diamond: both routes 0→3 cost 2. Equal-weight frontier entries for
	// different nodes must both stay pending; equal-weight re-records make
	// the later discovery win the predecessor slot.
	g := weighted(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 3, 1)

	total, path, ok := dijkstra.Dijkstra(g, 0, 3)
	require.True(t, ok)
	require.Equal(t, uint32(2), total)
	require.Equal(t, []core.NodeID{0, 2, 3}, path)
}

func TestDijkstraManyEqualCostFrontier(t *testing.T) {
	// A fan of k equal-weight spokes into a hub, then one exit. Every
	// spoke lands in the priority structure at the same weight; losing
	// any of them must not lose the exit.
	const k = 6
	g := weighted(k + 3)
	hub := core.NodeID(k + 1)
	exit := core.NodeID(k + 2)
	for i := core.NodeID(1); i <= k; i++ {
		g.AddEdge(0, i, 5)
		g.AddEdge(i, hub, 5)
	}
	g.AddEdge(hub, exit, 1)

	total, path, ok := dijkstra.Dijkstra(g, 0, exit)
	require.True(t, ok)
	require.Equal(t, uint32(11), total)
	require.Len(t, path, 4)
	require.Equal(t, exit, path[len(path)-1])
}

func TestDijkstraFloatWeights(t *testing.T) {
	g := core.New[struct{}, float64]()
	for i := 0; i < 4; i++ {
		g.AddNode(struct{}{})
	}
	g.AddEdge(0, 1, 0.5)
	g.AddEdge(1, 2, 0.25)
	g.AddEdge(0, 2, 1.0)
	g.AddEdge(2, 3, 0.125)

	total, path, ok := dijkstra.Dijkstra(g, 0, 3)
	require.True(t, ok)
	require.InDelta(t, 0.875, total, 1e-12)
	require.Equal(t, []core.NodeID{0, 1, 2, 3}, path)
}

func TestDijkstraSameSourceAndTarget(t *testing.T) {
	g := weighted(3)
	g.AddEdge(0, 1, 4)

	total, path, ok := dijkstra.Dijkstra(g, 1, 1)
	require.True(t, ok)
	require.Equal(t, uint32(0), total)
	require.Equal(t, []core.NodeID{1}, path)
}

// bruteForce enumerates every simple path from a to b and returns the
// minimum total weight, with found=false when no path exists.
func bruteForce(g *core.Graph[struct{}, uint32], from, to core.NodeID) (uint32, bool) {
	onPath := make([]bool, g.NodeBound())
	best := uint32(0)
	found := false

	var walk func(cur core.NodeID, total uint32)
	walk = func(cur core.NodeID, total uint32) {
		if cur == to {
			if !found || total < best {
				best, found = total, true
			}

			return
		}
		onPath[cur] = true
		for n, w := range g.Neighbors(cur) {
			if !onPath[n] {
				walk(n, total+w)
			}
		}
		onPath[cur] = false
	}
	walk(from, 0)

	return best, found
}

func TestDijkstraMatchesBruteForce(t *testing.T) {
	// A fixed dense-ish graph small enough to enumerate exhaustively.
	g := weighted(7)
	edges := []struct {
		a, b core.NodeID
		w    uint32
	}{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 2}, {1, 3, 5},
		{2, 4, 8}, {3, 4, 3}, {3, 5, 2}, {4, 5, 6},
		{1, 4, 10}, {2, 3, 7},
	}
	for _, e := range edges {
		g.AddEdge(e.a, e.b, e.w)
	}

	for from := core.NodeID(0); from < 7; from++ {
		for to := core.NodeID(0); to < 7; to++ {
			want, reachable := bruteForce(g, from, to)
			got, path, ok := dijkstra.Dijkstra(g, from, to)
			require.Equal(t, reachable, ok, "reachability mismatch %d→%d", from, to)
			if !ok {
				continue
			}
			require.Equal(t, want, got, "weight mismatch %d→%d", from, to)
			// The reported path must exist and its edges must sum to the
			// reported weight.
			vals, allPresent := g.PathEdges(path)
			require.True(t, allPresent, "path %v has missing edges", path)
			sum := uint32(0)
			for _, w := range vals {
				sum += w
			}
			require.Equal(t, got, sum)
		}
	}
}
