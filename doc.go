// Package optimalcleaner computes the shortest route that takes a single
// cleaning robot over every dirty cell of a small walled grid.
//
// The problem is a shortest-path search over grid configurations: each
// configuration is the full tile layout (dirt, empty floor, walls, robot),
// each move costs one step, and any configuration without dirt is a goal.
// Exhaustive breadth-first search gives an optimal answer with no heuristic.
//
// Packages:
//
//	world/    immutable Grid, Tiles, Directions, text parsing, legal moves
//	bfs/      the search engine: FIFO frontier, visited set, shortest moves
//	scenario/ named example grids, YAML loading, concurrent runs, rendering
//	cmd/cleaner command-line front end (solve, scenarios, version)
//
// Quick ASCII example:
//
//	X W D       robot top-left, walls in the middle column,
//	E E E       dirt in two corners
//	D W E
//
// is cleaned by "ddurru" (down, down, up, right, right, up) in six moves.
//
//	go install github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/cmd/cleaner@latest
package optimalcleaner
