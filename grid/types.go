// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
)

// Slot is one addressable cell of a Grid: either a value or the empty marker.
// The zero Slot is empty.
type Slot[T comparable] struct {
	value T
	full  bool
}

// Of returns a slot holding v. Any v, including T's zero value, is a value.
func Of[T comparable](v T) Slot[T] {
	return Slot[T]{value: v, full: true}
}

// Empty returns the empty marker.
func Empty[T comparable]() Slot[T] {
	return Slot[T]{}
}

// Value returns the stored value and true, or T's zero value and false.
func (s Slot[T]) Value() (T, bool) {
	return s.value, s.full
}

// Get returns the stored value, or T's zero value for the empty marker.
func (s Slot[T]) Get() T {
	return s.value
}

// IsEmpty reports whether s is the empty marker.
func (s Slot[T]) IsEmpty() bool {
	return !s.full
}

// String renders the value with fmt, or "." for the empty marker.
func (s Slot[T]) String() string {
	if !s.full {
		return emptyGlyph
	}
	return fmt.Sprint(s.value)
}

const emptyGlyph = "."

// Location identifies a slot: X is the column, Y is the row.
type Location struct {
	X, Y int
}

// LocationFrom builds a Location from its coordinates.
func LocationFrom(x, y int) Location {
	return Location{X: x, Y: y}
}

// Equal reports whether l and o name the same slot.
func (l Location) Equal(o Location) bool {
	return l.X == o.X && l.Y == o.Y
}

// String renders l as "(x,y)".
func (l Location) String() string {
	return "(" + strconv.Itoa(l.X) + "," + strconv.Itoa(l.Y) + ")"
}

// LocationsEqual reports whether all given locations are equal.
// Zero or one location is trivially equal.
func LocationsEqual(locs ...Location) bool {
	for i := 1; i < len(locs); i++ {
		if !locs[i].Equal(locs[0]) {
			return false
		}
	}
	return true
}

// Size is the grid's bounding rectangle.
type Size struct {
	Width, Height int
}

// String renders s as "WxH".
func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// Bound is an inclusive upper limit used by range traversals.
// The zero Bound is UpTo(0); use Unbounded for an open limit.
type Bound struct {
	limit int
	open  bool
}

// Unbounded is an open upper limit: through the last existing row or column.
var Unbounded = Bound{open: true}

// UpTo returns the inclusive upper limit n.
func UpTo(n int) Bound {
	return Bound{limit: n}
}

// Contains reports whether n lies at or below the bound.
func (b Bound) Contains(n int) bool {
	return b.open || n <= b.limit
}

// Limit returns the finite limit and true, or 0 and false when b is open.
func (b Bound) Limit() (int, bool) {
	if b.open {
		return 0, false
	}
	return b.limit, true
}

// Attachable is implemented by values that track which grid holds them.
// Put calls SetGrid(g) on the value it stores and SetGrid(nil) on the value
// it displaces. SetGrid may mutate the grid; the value Put was storing still
// lands at its coordinates once the hook returns.
type Attachable[T comparable] interface {
	SetGrid(g *Grid[T])
}

// Removable is implemented by values that hold grid-related resources.
// Clear calls AboutToRemoveFromGrid on every stored value before the
// grid's storage is discarded.
type Removable[T comparable] interface {
	AboutToRemoveFromGrid(g *Grid[T])
}
