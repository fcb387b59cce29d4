package scenario

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/bfs"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

// Report is the outcome of one scenario. Err holds grid construction or
// search errors; a scenario with no solution has a nil Err and an
// unsolved Result.
type Report struct {
	Name    string
	Rows    []string
	Expect  *Expectation
	Grid    *world.Grid
	Result  *bfs.Result
	Err     error
	Elapsed time.Duration
}

// Check verifies the report against its expectation and replays the
// answer to confirm it only uses legal moves and leaves the grid clean.
func (r Report) Check() error {
	if r.Err != nil {
		return r.Err
	}
	if r.Result.Solved {
		final, err := r.Grid.Replay(r.Result.Moves)
		if err != nil {
			return fmt.Errorf("%w: %q: answer %q does not replay: %v", ErrExpectationMismatch, r.Name, r.Result.Moves, err)
		}
		if !final.Clean() {
			return fmt.Errorf("%w: %q: answer %q leaves dirt", ErrExpectationMismatch, r.Name, r.Result.Moves)
		}
	}

	e := r.Expect
	if e == nil {
		return nil
	}
	if e.Unsolvable && r.Result.Solved {
		return fmt.Errorf("%w: %q: want no solution, got %q", ErrExpectationMismatch, r.Name, r.Result.Moves)
	}
	if (e.Moves != nil || e.Length != nil) && !r.Result.Solved {
		return fmt.Errorf("%w: %q: want a solution, got none", ErrExpectationMismatch, r.Name)
	}
	if e.Moves != nil && *e.Moves != r.Result.Moves.String() {
		return fmt.Errorf("%w: %q: want moves %q, got %q", ErrExpectationMismatch, r.Name, *e.Moves, r.Result.Moves)
	}
	if e.Length != nil && *e.Length != r.Result.Len() {
		return fmt.Errorf("%w: %q: want length %d, got %d", ErrExpectationMismatch, r.Name, *e.Length, r.Result.Len())
	}
	return nil
}

// Runner solves scenarios concurrently.
type Runner struct {
	parallelism int
	gridOpts    []world.Option
	solveOpts   []bfs.Option
	log         logrus.FieldLogger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithParallelism bounds the number of scenarios solved at once.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) {
		r.parallelism = n
	}
}

// WithGridOptions sets the options used to build every scenario grid.
func WithGridOptions(opts ...world.Option) RunnerOption {
	return func(r *Runner) {
		r.gridOpts = append(r.gridOpts, opts...)
	}
}

// WithSolveOptions sets the options passed to every bfs.Solve call.
func WithSolveOptions(opts ...bfs.Option) RunnerOption {
	return func(r *Runner) {
		r.solveOpts = append(r.solveOpts, opts...)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Runner{log: discard}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallelism <= 0 {
		r.parallelism = runtime.GOMAXPROCS(0)
	}
	return r
}

// Run solves every scenario and returns one Report per scenario, in input
// order. Per-scenario failures are recorded in Report.Err; the returned
// error is non-nil only for invalid input or cancellation of ctx.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Report, error) {
	if err := Validate(scenarios); err != nil {
		return nil, err
	}

	reports := make([]Report, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = r.runOne(ctx, s)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// runOne builds the grid and solves it with a private search state.
func (r *Runner) runOne(ctx context.Context, s Scenario) Report {
	rep := Report{Name: s.Name, Rows: s.Rows, Expect: s.Expect}
	log := r.log.WithField("scenario", s.Name)

	grid, err := world.New(s.Rows, r.gridOpts...)
	if err != nil {
		log.WithError(err).Warn("invalid grid")
		rep.Err = fmt.Errorf("scenario %q: %w", s.Name, err)
		return rep
	}
	rep.Grid = grid

	opts := append([]bfs.Option{bfs.WithContext(ctx)}, r.solveOpts...)
	start := time.Now()
	res, err := bfs.Solve(grid, opts...)
	rep.Elapsed = time.Since(start)
	if err != nil {
		log.WithError(err).Warn("search failed")
		rep.Err = fmt.Errorf("scenario %q: %w", s.Name, err)
		return rep
	}
	rep.Result = res

	log.WithFields(logrus.Fields{
		"solved":     res.Solved,
		"moves":      res.String(),
		"explored":   res.Explored,
		"discovered": res.Discovered,
		"elapsed":    rep.Elapsed,
	}).Debug("scenario solved")
	return rep
}
