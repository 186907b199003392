// SPDX-License-Identifier: MIT

// File: grid.go
// Role: Grid storage, growth/shrink and point access.
// Invariants (hold after every exported call):
//   - every row has the same length (width); len(rows) is the height.
//   - the last row and the last column each hold at least one value;
//     an empty grid has zero rows.

package grid

import (
	"fmt"
	"strings"
)

// Grid is a sparse, auto-resizing 2D container of Slot[T].
// rows is row-major: rows[y][x]. The zero Grid is an empty grid that
// compares values with ==; New applies options.
type Grid[T comparable] struct {
	rows [][]Slot[T]
	same func(a, b T) bool // identity predicate for Location
}

// New returns an empty Grid configured by opts.
// Complexity: O(1).
func New[T comparable](opts ...Option[T]) *Grid[T] {
	g := &Grid[T]{same: identical[T]}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// At returns the slot at (x, y). Coordinates outside the current rectangle,
// negative ones included, yield the empty marker. At never resizes the grid.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) Slot[T] {
	if !g.inBounds(x, y) {
		return Slot[T]{}
	}
	return g.rows[y][x]
}

// AtLocation is At(loc.X, loc.Y).
func (g *Grid[T]) AtLocation(loc Location) Slot[T] {
	return g.At(loc.X, loc.Y)
}

// Put stores s at (x, y) and returns s.
//
// Behavior:
//  1. Reject negative coordinates with ErrNegativeCoordinate; nothing changes.
//  2. For a value outside the rectangle, append empty rows until the height
//     exceeds y, then an empty column to every row until the width exceeds x.
//     Placing the empty marker outside the rectangle is a no-op.
//  3. Call SetGrid(nil) on the displaced value and SetGrid(g) on the new one
//     when they implement Attachable[T]. Hooks may call back into g; s is
//     stored at (x, y) after they return, growing the grid again if needed.
//  4. When s is the empty marker, trim trailing empty rows, then columns.
//
// Complexity: O(1) amortized in bounds; O(W×H) when growing or shrinking.
func (g *Grid[T]) Put(x, y int, s Slot[T]) (Slot[T], error) {
	if x < 0 || y < 0 {
		return s, fmt.Errorf("Grid.Put(%d,%d): %w", x, y, ErrNegativeCoordinate)
	}
	if !g.inBounds(x, y) {
		if !s.full {
			return s, nil
		}
		g.grow(x, y)
	}

	if old, ok := g.rows[y][x].Value(); ok {
		if a, ok := any(old).(Attachable[T]); ok {
			a.SetGrid(nil)
		}
	}
	if s.full {
		if a, ok := any(s.value).(Attachable[T]); ok {
			a.SetGrid(g)
		}
	}
	// A hook may have resized the grid; index the slot afresh.
	if !g.inBounds(x, y) && s.full {
		g.grow(x, y)
	}
	if g.inBounds(x, y) {
		g.rows[y][x] = s
	}

	if !s.full {
		g.shrink()
	}
	return s, nil
}

// Set stores the value v at (x, y). See Put.
func (g *Grid[T]) Set(x, y int, v T) error {
	_, err := g.Put(x, y, Of(v))
	return err
}

// Remove clears (x, y) and shrinks the grid if trailing rows or columns
// become empty. See Put.
func (g *Grid[T]) Remove(x, y int) error {
	_, err := g.Put(x, y, Slot[T]{})
	return err
}

// IsEmpty reports whether the grid has zero rows.
func (g *Grid[T]) IsEmpty() bool {
	return len(g.rows) == 0
}

// Clear calls AboutToRemoveFromGrid(g) on every stored value implementing
// Removable[T], in row-major order, then discards all rows.
// Complexity: O(W×H).
func (g *Grid[T]) Clear() {
	for _, row := range g.rows {
		for _, s := range row {
			if !s.full {
				continue
			}
			if r, ok := any(s.value).(Removable[T]); ok {
				r.AboutToRemoveFromGrid(g)
			}
		}
	}
	g.rows = nil
}

// Size returns the bounding rectangle: the width of row 0 (0 without rows)
// and the number of rows.
func (g *Grid[T]) Size() Size {
	if len(g.rows) == 0 {
		return Size{}
	}
	return Size{Width: len(g.rows[0]), Height: len(g.rows)}
}

// Width is Size().Width.
func (g *Grid[T]) Width() int { return g.Size().Width }

// Height is Size().Height.
func (g *Grid[T]) Height() int { return g.Size().Height }

// Occupied counts the slots holding a value.
// Complexity: O(W×H).
func (g *Grid[T]) Occupied() int {
	n := 0
	for _, row := range g.rows {
		for _, s := range row {
			if s.full {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line, slots separated by a space,
// "." for the empty marker. An empty grid renders as "".
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, s := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.String())
		}
	}
	return sb.String()
}

func (g *Grid[T]) inBounds(x, y int) bool {
	return y >= 0 && y < len(g.rows) && x >= 0 && x < len(g.rows[y])
}

// grow appends empty rows, then empty columns, until (x, y) is in bounds.
// New rows take the current width.
func (g *Grid[T]) grow(x, y int) {
	for len(g.rows) <= y {
		g.rows = append(g.rows, make([]Slot[T], g.Width()))
	}
	if extra := x + 1 - len(g.rows[0]); extra > 0 {
		for i := range g.rows {
			g.rows[i] = append(g.rows[i], make([]Slot[T], extra)...)
		}
	}
}

// shrink trims trailing empty rows to completion, then trailing empty
// columns against the rows that remain.
func (g *Grid[T]) shrink() {
	for g.lastRowIsEmpty() {
		g.rows[len(g.rows)-1] = nil
		g.rows = g.rows[:len(g.rows)-1]
	}
	if len(g.rows) == 0 {
		g.rows = nil
		return
	}
	for g.lastColumnIsEmpty() {
		for i, row := range g.rows {
			row[len(row)-1] = Slot[T]{}
			g.rows[i] = row[:len(row)-1]
		}
	}
}

func (g *Grid[T]) lastRowIsEmpty() bool {
	if len(g.rows) == 0 {
		return false
	}
	for _, s := range g.rows[len(g.rows)-1] {
		if s.full {
			return false
		}
	}
	return true
}

func (g *Grid[T]) lastColumnIsEmpty() bool {
	if len(g.rows) == 0 || len(g.rows[0]) == 0 {
		return false
	}
	for _, row := range g.rows {
		if row[len(row)-1].full {
			return false
		}
	}
	return true
}
