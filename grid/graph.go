package grid

import "github.com/katalvlaran/plexus/core"

// Conn selects the connectivity of the graph bridge.
type Conn int

const (
	// Conn4 connects each cell to its orthogonal neighbors.
	Conn4 Conn = iota

	// Conn8 additionally connects diagonal neighbors.
	Conn8
)

// ID returns the node identifier the graph bridge assigns to (row, col):
// row-major order, matching AddNode insertion order.
func (g *Grid[T]) ID(row, col int) core.NodeID {
	return core.NodeID(row*g.cols + col)
}

// Coordinate inverts ID.
func (g *Grid[T]) Coordinate(id core.NodeID) (row, col int) {
	return int(id) / g.cols, int(id) % g.cols
}

// ToGraph builds an undirected core.Graph with one node per cell (carrying
// the cell value) and unit-weight edges between neighboring cells under
// the chosen connectivity. Use ID/Coordinate to translate between cells
// and node identifiers.
// Complexity: O(rows·cols) nodes and edges.
func ToGraph[T any](g *Grid[T], conn Conn) *core.Graph[T, int] {
	out := core.New[T, int]()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.AddNode(g.cells[r*g.cols+c])
		}
	}

	// Right, down, and for Conn8 the two downward diagonals: each pair is
	// visited exactly once.
	links := [][2]int{{0, 1}, {1, 0}}
	if conn == Conn8 {
		links = append(links, [2]int{1, 1}, [2]int{1, -1})
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			for _, d := range links {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				out.AddEdge(g.ID(r, c), g.ID(nr, nc), 1)
			}
		}
	}

	return out
}
