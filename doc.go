// Package gridpath finds low-cost routes across weighted 2D grids with A*,
// and shows them as text, JSON, a terminal viewer or an MCP tool.
//
// 🚀 What is gridpath?
//
//	A small, deterministic path-finding toolkit:
//		• Grids: rectangular weight tables with one start and one end
//		• Search: A* over 8 directions, Manhattan heuristic, hooks
//		• Presentation: plain and lipgloss-styled rendering, JSON reports
//		• Metrics: Prometheus collectors on a private registry
//		• Surfaces: CLI, bubbletea viewer, MCP stdio server
//
// ✨ Cost model
//
//   - Entering a cell costs its weight times 1 (orthogonal) or √2 (diagonal)
//   - Cells at or above the obstacle threshold (default 9) are walls
//   - The start and end cells weigh 0
//
// Subpackages:
//
//	grid/          Grid, Position, parsing, validation, regions
//	astar/         Search, FindPath, Node, Path, StepCost
//	render/        Plain, Styled, Coordinates, Report
//	metrics/       Recorder (Prometheus)
//	tui/           interactive path viewer (bubbletea)
//	mcpserver/     find_path tool over the Model Context Protocol
//	cmd/gridpath/  command-line entry point
//
// Quick example:
//
//	S 0 0 0 0        S * * * 0
//	9 9 1 9 0        9 9 1 9 *
//	0 1 1 1 0   →    0 1 1 1 *
//	0 9 1 9 0        0 9 1 9 *
//	0 0 0 0 E        0 0 0 0 E
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
