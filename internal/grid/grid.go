// Package grid provides a uniform spatial hash over indexed points.
//
// Points are bucketed into square cells of a fixed size. Every point closer
// than one cell size to a query position lies in the query's cell or one of
// its eight neighbours, so Near returns a superset of the points within that
// radius.
//
// Thread safety: Grid is NOT thread-safe.
package grid

import "math"

// cell addresses one bucket of the grid.
type cell struct {
	x, y int64
}

// Grid buckets point indices by cell.
type Grid struct {
	// size is the cell edge length; zero means a single bucket.
	size float64

	// cells maps a cell to the indices inserted into it, in insertion order.
	cells map[cell][]int
}

// New creates a grid whose cells are size wide. A size that is not a
// positive finite number puts every point in one cell.
func New(size float64) *Grid {
	if !(size > 0) || math.IsInf(size, 1) {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make(map[cell][]int),
	}
}

// Insert records index i at position (x, y).
func (g *Grid) Insert(i int, x, y float64) {
	c := g.cellOf(x, y)
	g.cells[c] = append(g.cells[c], i)
}

// Len returns the number of inserted indices.
func (g *Grid) Len() int {
	n := 0
	for _, ids := range g.cells {
		n += len(ids)
	}
	return n
}

// Near appends to dst the indices in the cell containing (x, y) and its
// eight neighbours, and returns the extended slice. Order is unspecified.
func (g *Grid) Near(dst []int, x, y float64) []int {
	c := g.cellOf(x, y)
	if g.size == 0 {
		return append(dst, g.cells[c]...)
	}
	for dy := int64(-1); dy <= 1; dy++ {
		for dx := int64(-1); dx <= 1; dx++ {
			dst = append(dst, g.cells[cell{x: c.x + dx, y: c.y + dy}]...)
		}
	}
	return dst
}

func (g *Grid) cellOf(x, y float64) cell {
	if g.size == 0 {
		return cell{}
	}
	return cell{
		x: int64(math.Floor(x / g.size)),
		y: int64(math.Floor(y / g.size)),
	}
}
