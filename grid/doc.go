// SPDX-License-Identifier: MIT

// Package grid provides Grid, a sparse two-dimensional container that grows
// and shrinks its bounding rectangle as values are placed and removed.
//
// What:
//
//   - Grid[T] stores values of any comparable type T at integer (x, y)
//     coordinates; x grows rightward, y grows downward, (0,0) is top-left.
//   - Every slot holds either a value or the empty marker (Slot[T]).
//   - Put outside the current rectangle appends empty rows/columns.
//   - Removing a value trims trailing all-empty rows, then trailing all-empty
//     columns. Only the bottom/right edges are trimmed, so surviving cells
//     keep their coordinates.
//   - An empty grid has zero rows (Size 0x0), never a 1x1 grid of empties.
//
// Navigation:
//
//   - Location(v) finds the first slot holding v in row-major order.
//   - LocationAbove/Below/Before/After offset a Location by one step and
//     reject only negative results; bounds are not checked.
//   - Above/Below/Before/After(v) combine both and resolve the neighbor slot.
//
// Traversal:
//
//   - RowsDo / ColumnsDo:           whole rows or columns with their index.
//   - CellsByRowDo / CellsByColumnDo: one call per slot with its Location.
//   - CellsBetweenByRowDo:          row-major over an inclusive sub-rectangle;
//     upper bounds may be Unbounded.
//   - Cells / CellsByColumn:        range-over-func equivalents.
//
// Hooks:
//
//	A stored value may implement Attachable[T] to learn which grid holds it,
//	and Removable[T] to be told before Clear discards the grid's storage.
//	Both are optional; values without them are stored silently. A SetGrid
//	hook may place or remove other values; Put writes its own value after
//	the hooks return.
//
// Errors:
//
//   - ErrNegativeCoordinate: Put/Set/Remove with x < 0 or y < 0.
//
// Reads never fail: out-of-range coordinates yield the empty marker.
//
// Concurrency:
//
//	Grid is not safe for concurrent use. Callbacks run inline on the caller's
//	goroutine; callers sharing a Grid must serialize access themselves.
//
// Complexity:
//
//   - At / Put (in bounds): O(1); Put with growth: O(W×H) worst case.
//   - Remove with shrink: O(W×H) worst case.
//   - Location / Above / ...: O(W×H).
//   - Traversals: O(W×H).
package grid
