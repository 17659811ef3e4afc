// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/goldgrid/grid"
)

// ExampleParse demonstrates building a grid from glyph lines:
// '.' is an open cell, 'X' a rock, digits are open cells with gold.
func ExampleParse() {
	g, _ := grid.Parse([]string{
		". 3 X",
		"5 . 2",
	})
	fmt.Println("rows:", g.Rows(), "columns:", g.Columns())
	fmt.Println("max steps:", g.MaxSteps())
	fmt.Println(g)
	// Output:
	// rows: 2 columns: 3
	// max steps: 3
	// .3X
	// 5.2
}
