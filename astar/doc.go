// Package astar finds a minimum-cost path between the start and end cells of
// a weighted grid.Grid using the A* search algorithm.
//
// Overview:
//
//   - The frontier (open set) is a min-heap ordered by f = g + h, where g is the
//     accumulated cost from the start and h is the Manhattan distance to the goal.
//     A position → entry index makes "is this position already open?" O(1).
//   - The closed set holds positions that were fully expanded; they are never
//     revisited.
//   - Movement is 8-directional. Orthogonal moves have multiplier 1 and diagonal
//     moves multiplier √2. Entering a cell costs multiplier × weight of the
//     destination cell, so a weight-0 cell is free to enter from any direction
//     and the start cell's own weight never contributes.
//   - Cells whose weight is ≥ the grid's obstacle threshold are impassable.
//   - When the goal is dequeued the path is rebuilt by following parent links
//     back to the start node and reversing.
//
// Ordering:
//
//	Entries are ordered by f, then by h (closer to the goal first), then by
//	insertion sequence. The order is total, so a search over a given grid is
//	fully deterministic.
//
// Heuristic:
//
//	Manhattan distance is exact for orthogonal moves over weight-1 cells but
//	can overestimate the remaining cost when diagonal moves or weight-0 cells
//	are involved (a diagonal step covers 2 Manhattan units for √2 × weight).
//	The search then returns a valid path that may cost more than the cheapest
//	one. Results are reproducible for a given grid.
//
// API:
//
//	func FindPath(g *grid.Grid) (Path, bool)
//	func Search(g *grid.Grid, opts ...Option) (*Result, error)
//
//	  - FindPath returns the path from start to end inclusive, or false when
//	    the end is unreachable.
//	  - Search additionally reports the number of expanded nodes and accepts
//	    hooks (WithOnExpand, WithOnEnqueue). Its error is reserved for misuse
//	    (ErrNilGrid); an unreachable goal is Result.Found == false.
//
// Complexity:
//
//   - Time:  O(N log N) for N = Rows×Cols; each cell is closed at most once and
//     each of its 8 neighbors costs one heap operation.
//   - Space: O(N) for the open set, the closed set and the nodes.
//
// Thread safety:
//
//	A search owns all of its state and only reads the grid, so concurrent
//	searches over the same *grid.Grid are safe.
package astar
