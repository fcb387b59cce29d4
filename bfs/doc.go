// Package bfs provides an exhaustive breadth-first search over the
// configuration space of a world.Grid, returning the shortest sequence of
// moves that makes the agent visit every dirty cell.
//
// What
//
//   - A configuration is the full tile layout of a grid; its canonical key is
//     world.Grid.Key (tiles in row-major order, no path information).
//   - Solve seeds a FIFO frontier with the input grid, then repeatedly pops the
//     oldest configuration. If it is clean, its move sequence is the answer.
//     Otherwise every legal move (Up, Down, Left, Right, in that order) yields a
//     successor; successors whose key was already enqueued are discarded.
//   - Returns a Result containing:
//   - Solved:      whether the grid can be cleaned at all
//   - Moves:       the shortest cleaning sequence
//   - Explored, Discovered, MaxFrontier: search statistics
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a configuration is first discovered)
//   - OnDequeue (immediately before examining it)
//   - OnVisit   (when examining it; may abort with an error)
//
// Why
//
//   - Every move costs the same, so breadth-first order finds a minimum-length
//     answer without any heuristic.
//   - Marking configurations visited when they are enqueued (not dequeued)
//     keeps each configuration in the frontier at most once.
//
// Determinism
//
//	Successors are generated in the fixed order Up, Down, Left, Right and the
//	frontier is strictly FIFO, so among several shortest answers the one found
//	first under that priority is always returned.
//
// Complexity (S = reachable configurations, N = cells)
//
//   - Time:   O(S × N)   (each configuration is copied and keyed once per edge)
//   - Memory: O(S × N)   (visited keys, parent links, frontier grids)
//
// S is at most N × 2^D for D dirty cells, which is why grids are kept small.
//
// Usage
//
//	g, err := world.New([]string{"XWD", "EEE", "DWE"})
//	if err != nil {
//		// malformed grid
//	}
//	res, err := bfs.Solve(g)
//	if err != nil {
//		// ErrGridNil, ErrGridInvalid, ErrOptionViolation, ErrCapacityExceeded,
//		// ErrDepthExceeded, ctx.Err() or a hook error
//	}
//	if !res.Solved {
//		// some dirt can never be reached
//	}
//	fmt.Println(res.Moves) // ddurru
//
// Options
//
//   - DefaultOptions():            background Context, no limits, no-op hooks,
//     reachability pre-check on.
//   - WithContext(ctx):            cancellation, checked once per dequeue.
//   - WithMaxStates(n):            fail with ErrCapacityExceeded past n configurations.
//   - WithMaxDepth(d):             do not explore beyond d moves.
//   - WithReachabilityCheck(bool): report "no solution" up front when dirt is
//     walled off from the agent.
//   - WithOnEnqueue/WithOnDequeue/WithOnVisit: hooks.
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrGridInvalid       if the grid was not built by world.New or world.FromTiles.
//   - ErrOptionViolation   for a negative MaxStates or MaxDepth.
//   - ErrCapacityExceeded  if MaxStates is reached.
//   - ErrDepthExceeded     if MaxDepth pruned the search and no solution was found,
//     so "no solution" could not be proven.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
//
// Each Solve call owns its frontier and visited set; concurrent calls share
// nothing and are safe.
package bfs
