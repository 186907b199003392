// SPDX-License-Identifier: MIT

package grid

const panicIdentityNil = "grid: WithIdentity: eq must not be nil"

// Option configures a Grid at construction time.
type Option[T comparable] func(g *Grid[T])

// WithIdentity replaces the identity predicate used by Location and the
// value-relative navigation helpers. The default is ==, which for pointer
// types is reference identity.
//
// Panics if eq is nil.
func WithIdentity[T comparable](eq func(a, b T) bool) Option[T] {
	if eq == nil {
		panic(panicIdentityNil)
	}
	return func(g *Grid[T]) { g.same = eq }
}

func identical[T comparable](a, b T) bool {
	return a == b
}
