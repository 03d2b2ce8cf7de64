package render_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

func ExamplePlain() {
	g, _ := grid.ParseString("S 1 1\n1 5 1\n1 1 E")
	path, _ := astar.FindPath(g)

	fmt.Println(render.Plain(g, path))
	// Output:
	// S 1 1
	// * 5 1
	// 1 * E
}
