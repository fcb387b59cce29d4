// Package world models the cleaning robot's environment: a small rectangular
// grid of tiles holding dirt, empty floor, walls and exactly one agent.
//
// What:
//
//   - Grid wraps a validated, immutable row-major matrix of Tiles.
//   - New builds a Grid from text rows ("D" dirt, "E" empty, "W" wall, "X" agent).
//   - Move applies one Direction and returns a NEW Grid; the receiver never changes.
//   - Key returns the canonical serialization used to deduplicate configurations.
//   - Reachable / UnreachableDirt flood-fill the agent's connected region.
//
// Why:
//
//   - Search code can share Grids freely between frontier and visited set,
//     because no operation mutates a Grid after construction.
//   - Invalid input (ragged rows, missing or duplicated agent, oversized grid)
//     is rejected once, at construction, with a descriptive error.
//
// Movement:
//
//	Directions are generated in the fixed order Up, Down, Left, Right
//	(symbols u, d, l, r). A move is legal iff the destination is inside the
//	grid and is not a Wall. Moving leaves Empty behind and cleans any Dirt
//	on the destination.
//
// Complexity (R = rows, C = columns):
//
//   - New, Move:           O(R×C) time and memory (one copy of the cells).
//   - Key, Clean:          O(R×C).
//   - Reachable:           O(R×C×4).
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or an empty first row.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrTooLarge:        a side exceeds the configured maximum (MaxSide by default).
//   - ErrUnknownTile:     a cell is not one of D, E, W, X.
//   - ErrNoAgent:         no cell holds the agent.
//   - ErrMultipleAgents:  more than one cell holds the agent.
//   - ErrIllegalMove:     a move leaves the grid or enters a wall.
package world
