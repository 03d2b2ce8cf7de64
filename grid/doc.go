// Package grid models a weighted 2D grid of cells for path finding.
//
// What:
//
//   - Grid wraps a rectangular [][]int table of non-negative traversal weights.
//   - Exactly one start cell and one end cell are marked in the input table with
//     the sentinels StartMarker and EndMarker. They are resolved once at
//     construction time and then cleared to weight 0.
//   - FromWeights takes a plain weight table and explicit endpoints instead.
//   - Any cell whose weight is ≥ ObstacleThreshold (9 by default) is impassable.
//   - Regions groups passable cells into 8-connected regions; Reachable tells
//     whether the end shares the start's region.
//   - Parse reads the textual form used by the command line tool:
//
//     S 0 9 0
//     9 1 9 1
//     0 1 0 E
//
// Why:
//
//   - Terrain maps where entering a cell costs proportionally to its weight.
//   - Mazes where some cells are walls and others merely slow.
//
// Complexity:
//
//   - NewGrid: O(R×C) time and memory (the input is deep-copied).
//   - WeightAt, InBounds, Passable: O(1).
//   - Regions, RegionOf, Reachable: O(R×C).
//
// Options:
//
//   - Options.ObstacleThreshold: minimum weight treated as a wall (must be > 0).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart / ErrMissingEnd: a marker is absent.
//   - ErrDuplicateMarker: a marker appears more than once.
//   - ErrNegativeWeight: a non-marker cell is negative.
//   - ErrBadThreshold: ObstacleThreshold ≤ 0.
//   - ErrOutOfBounds: WeightAt called outside [0,Rows)×[0,Cols).
//   - ErrBadToken: Parse met a token that is neither a weight nor a marker.
//
// A Grid is immutable once built and is safe for concurrent readers.
package grid
