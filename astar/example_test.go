package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSearch finds the zero-cost corridor through a small maze.
func ExampleSearch() {
	g, err := grid.ParseString(`
		S 0 0 0 0
		9 9 1 9 0
		0 1 1 1 0
		0 9 1 9 0
		0 0 0 0 E`)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := astar.Search(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Printf("cost: %.3f\n", res.Cost)
	fmt.Println("expanded:", res.Expanded)
	fmt.Println("path:", res.Path)
	// Output:
	// found: true
	// cost: 0.000
	// expanded: 7
	// path: (0,0) (0,1) (0,2) (0,3) (1,4) (2,4) (3,4) (4,4)
}

// ExampleFindPath walks around a heavy centre cell.
func ExampleFindPath() {
	g, _ := grid.ParseString(`
		S 1 1
		1 5 1
		1 1 E`)

	path, ok := astar.FindPath(g)
	fmt.Println(ok, path)
	fmt.Printf("%.3f\n", path.Cost())
	// Output:
	// true (0,0) (1,0) (2,1) (2,2)
	// 2.414
}

// ExampleStepCost shows the diagonal multiplier.
func ExampleStepCost() {
	g, _ := grid.ParseString("S 2\n2 3\n0 E")
	c, _ := astar.StepCost(g, g.Start(), grid.Position{Row: 1, Col: 1})
	fmt.Printf("%.4f\n", c)
	// Output: 4.2426
}
