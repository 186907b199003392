// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Copying grid instances.
// Notes:
//   - Values are copied shallowly; pointer values are shared with the source.
//   - No hooks fire: stored values are not told about the clone.

package grid

import "slices"

// Clone returns an independent Grid with the same rectangle, slots and
// identity predicate. Later mutations of either grid do not affect the other.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	clone := &Grid[T]{same: g.same}
	if len(g.rows) == 0 {
		return clone
	}
	clone.rows = make([][]Slot[T], len(g.rows))
	for y, row := range g.rows {
		clone.rows[y] = slices.Clone(row)
	}

	return clone
}
