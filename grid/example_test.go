// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/sparsegrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: growth and shrink
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid demonstrates how the bounding rectangle follows the values.
// Scenario:
//
//   - Place A at (1,1): the grid grows from 0x0 to 2x2.
//   - Place F at (4,5): the grid grows to 5x6.
//   - Remove F: trailing empty rows, then columns, are trimmed back to 2x2.
func ExampleGrid() {
	g := grid.New[string]()
	fmt.Println(g.Size())

	_ = g.Set(1, 1, "A")
	fmt.Println(g.Size())

	_ = g.Set(4, 5, "F")
	fmt.Println(g.Size())

	_ = g.Remove(4, 5)
	fmt.Println(g.Size())
	fmt.Println(g)

	// Output:
	// 0x0
	// 2x2
	// 5x6
	// 2x2
	// . .
	// . A
}

////////////////////////////////////////////////////////////////////////////////
// Example: navigation
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Above shows value-relative navigation on a 2x2 board.
//
//	A B
//	C D
func ExampleGrid_Above() {
	g := grid.New[string]()
	_ = g.Set(0, 0, "A")
	_ = g.Set(1, 0, "B")
	_ = g.Set(0, 1, "C")
	_ = g.Set(1, 1, "D")

	loc, _ := g.Location("D")
	fmt.Println("D at", loc)
	fmt.Println("above D:", g.Above("D"))
	fmt.Println("before D:", g.Before("D"))
	fmt.Println("above A:", g.Above("A"))

	// Output:
	// D at (1,1)
	// above D: B
	// before D: C
	// above A: .
}

////////////////////////////////////////////////////////////////////////////////
// Example: sub-rectangle traversal
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_CellsBetweenByRowDo walks columns 1..2 of every row from 1 down.
func ExampleGrid_CellsBetweenByRowDo() {
	g := grid.New[int]()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			_ = g.Set(x, y, y*3+x)
		}
	}

	g.CellsBetweenByRowDo(grid.LocationFrom(1, 1), grid.UpTo(2), grid.Unbounded,
		func(s grid.Slot[int], at grid.Location) {
			fmt.Println(at, s)
		})

	// Output:
	// (1,1) 4
	// (2,1) 5
	// (1,2) 7
	// (2,2) 8
}

////////////////////////////////////////////////////////////////////////////////
// Example: hooks
////////////////////////////////////////////////////////////////////////////////

type marker struct {
	name string
	on   *grid.Grid[*marker]
}

func (m *marker) SetGrid(g *grid.Grid[*marker]) { m.on = g }

func (m *marker) AboutToRemoveFromGrid(*grid.Grid[*marker]) {
	fmt.Println("releasing", m.name)
}

// ExampleAttachable shows a value tracking the grid that holds it.
func ExampleAttachable() {
	g := grid.New[*marker]()
	m := &marker{name: "m1"}

	_ = g.Set(2, 0, m)
	fmt.Println("attached:", m.on == g)

	_ = g.Remove(2, 0)
	fmt.Println("attached:", m.on == g, "size:", g.Size())

	_ = g.Set(0, 0, m)
	g.Clear()

	// Output:
	// attached: true
	// attached: false size: 0x0
	// releasing m1
}
