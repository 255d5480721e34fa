// Package grid provides a rectangular, row-major grid of values with
// bounds-checked access and 4- or 8-connected neighbor queries, plus a
// bridge that turns a grid into a core.Graph for pathfinding.
//
// Cell access comes in two registers, mirroring the rest of the library's
// error doctrine: Get reports out-of-range coordinates through a comma-ok
// return, while At and Set treat them as API misuse and panic.
//
// The bridge assigns node identifiers in row-major order, so the mapping
// between (row, col) and core.NodeID is the pure arithmetic ID/Coordinate
// pair and survives no removals — grids are static.
package grid
