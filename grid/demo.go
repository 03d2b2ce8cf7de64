package grid

// DemoMaze is a 10×10 maze with several weighted detours, in Parse format.
const DemoMaze = `S 0 9 0 0 0 0 9 0 0
9 1 9 1 1 9 0 9 9 0
0 1 0 0 1 0 0 1 9 0
0 9 0 9 9 9 1 9 0 0
0 2 0 1 0 0 1 1 1 0
9 9 9 1 9 1 9 9 9 0
0 0 1 1 0 1 0 0 0 0
0 1 9 9 9 1 9 9 1 0
0 0 0 1 0 1 0 1 1 0
0 9 0 1 0 0 0 0 9 E`

// Demo parses DemoMaze with default options.
func Demo() *Grid {
	g, err := ParseString(DemoMaze)
	if err != nil {
		panic("grid: demo maze: " + err.Error())
	}
	return g
}
