// SPDX-License-Identifier: MIT

// File: methods_traverse.go
// Role: Ordered traversals over the current rectangle.
// Determinism:
//   - Row-major: y ascending outer, x ascending inner.
//   - Column-major: x ascending outer, y ascending inner.
// Notes:
//   - Callbacks receive copies; mutating a passed row or column does not
//     touch the grid. Callbacks must not mutate the grid itself.

package grid

import (
	"iter"
	"slices"
)

// Rows returns a copy of the backing store, rows[y][x].
// Complexity: O(W×H).
func (g *Grid[T]) Rows() [][]Slot[T] {
	rows := make([][]Slot[T], len(g.rows))
	for y, row := range g.rows {
		rows[y] = slices.Clone(row)
	}
	return rows
}

// Columns transposes the grid: result[x] lists column x top to bottom.
// An empty grid yields an empty, non-nil slice.
// Complexity: O(W×H).
func (g *Grid[T]) Columns() [][]Slot[T] {
	w, h := g.Width(), g.Height()
	cols := make([][]Slot[T], w)
	for x := 0; x < w; x++ {
		col := make([]Slot[T], h)
		for y := 0; y < h; y++ {
			col[y] = g.rows[y][x]
		}
		cols[x] = col
	}
	return cols
}

// RowsDo calls fn once per row, top to bottom, with the row and its index.
func (g *Grid[T]) RowsDo(fn func(row []Slot[T], y int)) {
	for y, row := range g.Rows() {
		fn(row, y)
	}
}

// ColumnsDo calls fn once per column, left to right, with the column and
// its index.
func (g *Grid[T]) ColumnsDo(fn func(col []Slot[T], x int)) {
	for x, col := range g.Columns() {
		fn(col, x)
	}
}

// CellsByRowDo calls fn for every slot in row-major order.
func (g *Grid[T]) CellsByRowDo(fn func(s Slot[T], at Location)) {
	for at, s := range g.Cells() {
		fn(s, at)
	}
}

// CellsByColumnDo calls fn for every slot in column-major order.
func (g *Grid[T]) CellsByColumnDo(fn func(s Slot[T], at Location)) {
	for at, s := range g.CellsByColumn() {
		fn(s, at)
	}
}

// CellsBetweenByRowDo calls fn in row-major order for every existing slot
// with from.Y <= y, toY.Contains(y), from.X <= x and toX.Contains(x).
// Bounds past the current rectangle are clipped to it; pass Unbounded to run
// through the last row or column.
// Complexity: O(h'×w') over the clipped rectangle.
func (g *Grid[T]) CellsBetweenByRowDo(from Location, toX, toY Bound, fn func(s Slot[T], at Location)) {
	for y := max(from.Y, 0); y < len(g.rows) && toY.Contains(y); y++ {
		row := g.rows[y]
		for x := max(from.X, 0); x < len(row) && toX.Contains(x); x++ {
			fn(row[x], Location{X: x, Y: y})
		}
	}
}

// Cells iterates every slot in row-major order.
//
//	for at, s := range g.Cells() { ... }
//
// Breaking out of the loop stops the scan.
func (g *Grid[T]) Cells() iter.Seq2[Location, Slot[T]] {
	return func(yield func(Location, Slot[T]) bool) {
		for y, row := range g.rows {
			for x, s := range row {
				if !yield(Location{X: x, Y: y}, s) {
					return
				}
			}
		}
	}
}

// CellsByColumn iterates every slot in column-major order.
func (g *Grid[T]) CellsByColumn() iter.Seq2[Location, Slot[T]] {
	return func(yield func(Location, Slot[T]) bool) {
		w, h := g.Width(), g.Height()
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				if !yield(Location{X: x, Y: y}, g.rows[y][x]) {
					return
				}
			}
		}
	}
}
