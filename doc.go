// Package sparsegrid is a small in-memory library for sparse, self-sizing
// two-dimensional grids.
//
// What is in the box?
//
//	grid/ — Grid[T]: values at (x, y) coordinates with automatic growth and
//	        bottom/right shrink, value lookup, above/below/before/after
//	        navigation, row/column/sub-rectangle traversals and optional
//	        lifecycle hooks (Attachable, Removable) for stored values.
//
// Why?
//
//   - Game boards, spreadsheets-in-miniature, layout cells: anywhere the
//     occupied region changes shape as items come and go.
//   - Coordinates of surviving cells never move; only the trailing edge trims.
//   - Pure Go, generic over any comparable value type.
//
// Quick ASCII example:
//
//	Set(1,1,"A")      Set(4,5,"F")        Remove(4,5)
//	. .               . . . . .           . .
//	. A               . A . . .           . A
//	                  . . . . .
//	                  . . . . .
//	                  . . . . .
//	                  . . . . F
//
//	go get github.com/katalvlaran/sparsegrid/grid
package sparsegrid
