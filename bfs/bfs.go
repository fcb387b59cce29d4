package bfs

import (
	"context"
	"fmt"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

// node is one discovered configuration. Nodes are never modified after
// they are enqueued; grid is shared, never copied.
type node struct {
	key   string
	grid  *world.Grid
	depth int
}

// link records how a configuration was first reached.
type link struct {
	parent string
	dir    world.Direction
}

// walker encapsulates mutable search state for a single Solve call.
type walker struct {
	opts    Options
	ctx     context.Context
	start   string
	queue   []node
	visited map[string]struct{}
	parent  map[string]link
	pruned  bool
	res     *Result
}

// Solve runs breadth-first search from g and returns the shortest move
// sequence (ties broken by Up, Down, Left, Right) that leaves no Dirt.
//
// An unsolvable grid is not an error: Solve returns a Result with
// Solved == false and a nil error. Errors are reserved for ErrGridNil,
// ErrGridInvalid, ErrOptionViolation, ErrCapacityExceeded, ErrDepthExceeded, context
// cancellation and user-supplied hook errors.
func Solve(g *world.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGridInvalid, err)
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		start:   g.Key(),
		visited: make(map[string]struct{}),
		parent:  make(map[string]link),
		res:     &Result{},
	}

	// Dirt walled off from the agent can never be cleaned.
	if o.CheckReachability && g.UnreachableDirt() > 0 {
		return w.res, nil
	}

	if err := w.enqueue(node{key: w.start, grid: g}, link{}); err != nil {
		return nil, err
	}
	return w.loop()
}

// enqueue marks n visited, records how it was reached, calls OnEnqueue,
// and appends it to the frontier.
func (w *walker) enqueue(n node, via link) error {
	if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
		return fmt.Errorf("%w: more than %d configurations", ErrCapacityExceeded, w.opts.MaxStates)
	}
	w.visited[n.key] = struct{}{}
	if n.key != w.start {
		w.parent[n.key] = via
	}
	w.opts.OnEnqueue(n.key, n.depth)
	w.queue = append(w.queue, n)

	w.res.Discovered = len(w.visited)
	if len(w.queue) > w.res.MaxFrontier {
		w.res.MaxFrontier = len(w.queue)
	}
	return nil
}

// loop processes the frontier until a clean configuration is dequeued,
// the frontier empties, or an error occurs.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		cur := w.dequeue()
		if err := w.visit(cur); err != nil {
			return nil, err
		}
		if cur.grid.Clean() {
			w.res.Solved = true
			w.res.Moves = w.pathTo(cur.key)
			return w.res, nil
		}
		if err := w.expand(cur); err != nil {
			return nil, err
		}
	}

	if w.pruned {
		return nil, fmt.Errorf("%w: no solution within %d moves", ErrDepthExceeded, w.opts.MaxDepth)
	}
	return w.res, nil
}

// dequeue pops the oldest node, invokes OnDequeue, and returns it.
func (w *walker) dequeue() node {
	n := w.queue[0]
	w.queue[0] = node{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(n.key, n.depth)
	return n
}

// visit counts the node as explored and calls OnVisit.
func (w *walker) visit(n node) error {
	w.res.Explored++
	if err := w.opts.OnVisit(n.key, n.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at depth %d: %w", n.depth, err)
	}
	return nil
}

// expand applies every legal move in generation order and enqueues each
// successor whose configuration has not been seen before.
func (w *walker) expand(cur node) error {
	for _, d := range world.Directions() {
		if !cur.grid.CanMove(d) {
			continue
		}
		next, err := cur.grid.Move(d)
		if err != nil {
			return err
		}
		key := next.Key()
		if _, seen := w.visited[key]; seen {
			continue
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			w.pruned = true
			continue
		}
		if err := w.enqueue(node{key: key, grid: next, depth: cur.depth + 1}, link{parent: cur.key, dir: d}); err != nil {
			return err
		}
	}
	return nil
}

// pathTo rebuilds the move sequence leading from the start to key.
func (w *walker) pathTo(key string) world.Moves {
	moves := world.Moves{}
	for cur := key; cur != w.start; {
		l := w.parent[cur]
		moves = append(moves, l.dir)
		cur = l.parent
	}
	// reverse to get start → key
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
