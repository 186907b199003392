// SPDX-License-Identifier: MIT

// File: methods_navigate.go
// Role: Value lookup and location-relative navigation.
// Notes:
//   - LocationAbove/Below/Before/After only reject negative coordinates.
//     A location past the current width/height is still a valid Location;
//     resolving it with At yields the empty marker.

package grid

// Location returns the first location holding v, scanning rows top to
// bottom and each row left to right. Values are matched with the grid's
// identity predicate (== unless WithIdentity was given). Empty slots never
// match, so the empty marker has no location.
// Complexity: O(W×H).
func (g *Grid[T]) Location(v T) (Location, bool) {
	same := g.same
	if same == nil {
		same = identical[T]
	}
	for y, row := range g.rows {
		for x, s := range row {
			if s.full && same(s.value, v) {
				return Location{X: x, Y: y}, true
			}
		}
	}
	return Location{}, false
}

// LocationAbove returns loc moved one row up, or false if that leaves the grid's
// non-negative quadrant.
func (g *Grid[T]) LocationAbove(loc Location) (Location, bool) {
	return offset(loc, 0, -1)
}

// LocationBelow returns loc moved one row down.
func (g *Grid[T]) LocationBelow(loc Location) (Location, bool) {
	return offset(loc, 0, 1)
}

// LocationBefore returns loc moved one column left, or false at column 0.
func (g *Grid[T]) LocationBefore(loc Location) (Location, bool) {
	return offset(loc, -1, 0)
}

// LocationAfter returns loc moved one column right.
func (g *Grid[T]) LocationAfter(loc Location) (Location, bool) {
	return offset(loc, 1, 0)
}

// Above returns the slot directly above v, or the empty marker when v is
// not in the grid or sits on row 0.
func (g *Grid[T]) Above(v T) Slot[T] {
	return g.neighbor(v, g.LocationAbove)
}

// Below returns the slot directly below v.
func (g *Grid[T]) Below(v T) Slot[T] {
	return g.neighbor(v, g.LocationBelow)
}

// Before returns the slot directly left of v.
func (g *Grid[T]) Before(v T) Slot[T] {
	return g.neighbor(v, g.LocationBefore)
}

// After returns the slot directly right of v.
func (g *Grid[T]) After(v T) Slot[T] {
	return g.neighbor(v, g.LocationAfter)
}

func (g *Grid[T]) neighbor(v T, step func(Location) (Location, bool)) Slot[T] {
	loc, ok := g.Location(v)
	if !ok {
		return Slot[T]{}
	}
	next, ok := step(loc)
	if !ok {
		return Slot[T]{}
	}
	return g.AtLocation(next)
}

func offset(loc Location, dx, dy int) (Location, bool) {
	next := Location{X: loc.X + dx, Y: loc.Y + dy}
	if next.X < 0 || next.Y < 0 {
		return Location{}, false
	}
	return next, true
}
