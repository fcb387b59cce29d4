package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrGridInvalid is returned for a grid not built by world.New or
	// world.FromTiles, such as the zero world.Grid. It wraps the
	// world error describing the problem.
	ErrGridInvalid = errors.New("bfs: grid is invalid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrCapacityExceeded is returned when the visited set would grow past MaxStates.
	ErrCapacityExceeded = errors.New("bfs: state capacity exceeded")

	// ErrDepthExceeded is returned when no solution was found within MaxDepth
	// but deeper configurations were pruned, so unsolvability is not proven.
	ErrDepthExceeded = errors.New("bfs: move limit reached before search completed")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a configuration is first discovered.
	// Receives its canonical key and move count from the start.
	OnEnqueue func(key string, depth int)

	// OnDequeue is called immediately before examining a configuration.
	OnDequeue func(key string, depth int)

	// OnVisit is called when examining a configuration. If it returns an
	// error, the search aborts and propagates that error.
	OnVisit func(key string, depth int) error

	// MaxStates, if > 0, bounds the number of distinct configurations
	// discovered. 0 means unbounded.
	MaxStates int

	// MaxDepth, if > 0, bounds the number of moves explored.
	// 0 means unbounded.
	MaxDepth int

	// CheckReachability rejects grids whose dirt lies outside the agent's
	// region before any exploration.
	CheckReachability bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no state or depth limit
//   - reachability pre-check enabled
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		OnEnqueue:         func(string, int) {},
		OnDequeue:         func(string, int) {},
		OnVisit:           func(string, int) error { return nil },
		CheckReachability: true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(key string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStates fails the search with ErrCapacityExceeded once more than n
// distinct configurations have been discovered.
//
//	n > 0:  limit to n configurations
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithMaxDepth stops expanding configurations that already took d moves.
//
//	d > 0:  limit solutions to at most d moves
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithReachabilityCheck toggles the unreachable-dirt pre-check.
func WithReachabilityCheck(enabled bool) Option {
	return func(o *Options) {
		o.CheckReachability = enabled
	}
}

// Result holds the outcome of a search:
//   - Solved: whether some move sequence cleans the grid.
//   - Moves: the shortest such sequence (nil when unsolved, empty when
//     the grid was already clean).
//   - Explored: configurations dequeued and examined.
//   - Discovered: distinct configurations ever enqueued (visited-set size).
//   - MaxFrontier: peak frontier length.
type Result struct {
	Solved      bool
	Moves       world.Moves
	Explored    int
	Discovered  int
	MaxFrontier int
}

// Len returns the number of moves, or -1 when unsolved.
func (r *Result) Len() int {
	if !r.Solved {
		return -1
	}
	return len(r.Moves)
}

// String returns the move string, or "no solution".
func (r *Result) String() string {
	if !r.Solved {
		return "no solution"
	}
	return r.Moves.String()
}
