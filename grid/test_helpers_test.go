// SPDX-License-Identifier: MIT
// Package grid_test contains shared fixtures and invariant checks for grid tests.
//
// Purpose:
//   - Provide small deterministic fixtures (cell names, a hook-aware token).
//   - Centralize the structural invariants every mutation must preserve.

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/grid"
)

// Common cell values used across grid tests.
const (
	CellA = "A"
	CellB = "B"
	CellC = "C"
	CellD = "D"
	CellF = "F"
	CellX = "X"
)

// token is a pointer-identity value that records hook calls.
type token struct {
	name     string
	attached *grid.Grid[*token]
	setCalls int
	removed  []*grid.Grid[*token]
	journal  *[]string // shared record of AboutToRemoveFromGrid calls, by name
}

func newToken(name string) *token { return &token{name: name} }

func (tk *token) SetGrid(g *grid.Grid[*token]) {
	tk.setCalls++
	tk.attached = g
}

func (tk *token) AboutToRemoveFromGrid(g *grid.Grid[*token]) {
	tk.removed = append(tk.removed, g)
	if tk.journal != nil {
		*tk.journal = append(*tk.journal, tk.name)
	}
}

func (tk *token) String() string { return tk.name }

// plain is a value with no hooks.
type plain struct{ n int }

// MustHoldInvariants FAILS t unless g is rectangular, its reported size
// matches its rows, and no trailing row or column is entirely empty.
func MustHoldInvariants[T comparable](t *testing.T, g *grid.Grid[T]) {
	t.Helper()
	rows := g.Rows()
	size := g.Size()
	require.Equal(t, len(rows), size.Height, "height must equal row count")
	if len(rows) == 0 {
		require.Equal(t, 0, size.Width, "zero rows must report zero width")
		require.True(t, g.IsEmpty(), "zero rows must report IsEmpty")
		return
	}
	require.False(t, g.IsEmpty())
	for y, row := range rows {
		require.Lenf(t, row, size.Width, "row %d must have grid width", y)
	}

	lastRowUsed := false
	for _, s := range rows[len(rows)-1] {
		lastRowUsed = lastRowUsed || !s.IsEmpty()
	}
	require.True(t, lastRowUsed, "last row must hold a value")

	lastColUsed := false
	for _, row := range rows {
		lastColUsed = lastColUsed || !row[len(row)-1].IsEmpty()
	}
	require.True(t, lastColUsed, "last column must hold a value")
}

// MustSet stores v at (x, y) and fails t on error.
func MustSet[T comparable](t *testing.T, g *grid.Grid[T], x, y int, v T) {
	t.Helper()
	require.NoError(t, g.Set(x, y, v), "Set(%d,%d)", x, y)
}

// MustRemove clears (x, y) and fails t on error.
func MustRemove[T comparable](t *testing.T, g *grid.Grid[T], x, y int) {
	t.Helper()
	require.NoError(t, g.Remove(x, y), "Remove(%d,%d)", x, y)
}

// values flattens slots into their values, using "." for the empty marker.
func values(slots []grid.Slot[string]) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
