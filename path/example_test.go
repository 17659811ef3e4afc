// File: path/example_test.go
package path_test

import (
	"fmt"

	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/path"
)

// ExamplePath demonstrates growing a walk one validated step at a time.
// Scenario: a 2×2 grid where the richest cells sit below the start.
func ExamplePath() {
	g, _ := grid.Parse([]string{
		".3",
		"52",
	})
	p, _ := path.New(g)

	for _, d := range []path.Direction{path.Down, path.Right} {
		if p.IsStepValid(d) {
			_ = p.AddStep(d)
		}
	}

	fmt.Println("steps:", p)
	fmt.Println("position:", p.Position())
	fmt.Println("gold:", p.TotalGold())
	// Output:
	// steps: DR
	// position: {1 1}
	// gold: 7
}
