package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a rectangular, row-major grid of T. Construct with New; the
// zero value is an empty grid.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New creates a rows×cols grid with every cell set to fill.
// Complexity: O(rows·cols).
func New[T any](rows, cols int, fill T) *Grid[T] {
	cells := make([]T, rows*cols)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the cell at (row, col), with ok=false out of bounds.
func (g *Grid[T]) Get(row, col int) (T, bool) {
	if !g.InBounds(row, col) {
		var zero T

		return zero, false
	}

	return g.cells[row*g.cols+col], true
}

// At returns the cell at (row, col); out-of-range coordinates panic.
func (g *Grid[T]) At(row, col int) T {
	g.check(row, col)

	return g.cells[row*g.cols+col]
}

// Set stores v at (row, col) and returns the previous value;
// out-of-range coordinates panic.
func (g *Grid[T]) Set(row, col int, v T) T {
	g.check(row, col)
	i := row*g.cols + col
	prev := g.cells[i]
	g.cells[i] = v

	return prev
}

func (g *Grid[T]) check(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: coordinate (%d,%d) out of range %dx%d", row, col, g.rows, g.cols))
	}
}

// Neighbors iterates the values of the up-to-eight cells surrounding
// (row, col), row by row, skipping whatever falls outside the grid.
func (g *Grid[T]) Neighbors(row, col int) iter.Seq[T] {
	return g.neighbors(row, col, offsets8[:])
}

// NeighborsOrthogonal is Neighbors restricted to the four
// orthogonally adjacent cells.
func (g *Grid[T]) NeighborsOrthogonal(row, col int) iter.Seq[T] {
	return g.neighbors(row, col, offsets4[:])
}

var offsets8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var offsets4 = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

func (g *Grid[T]) neighbors(row, col int, offsets [][2]int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, d := range offsets {
			v, ok := g.Get(row+d[0], col+d[1])
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the grid row by row, cells space-separated.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fmt.Fprintf(&b, "%v ", g.cells[r*g.cols+c])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
