// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid operations. Callers match them with errors.Is;
// mutators may wrap them with the offending coordinates.
var (
	// ErrNegativeCoordinate indicates Put was given x < 0 or y < 0.
	// The grid is left unmodified.
	ErrNegativeCoordinate = errors.New("grid: coordinates must be non-negative")
)
