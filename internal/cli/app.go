// Package cli provides the command-line interface of the cleaner binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/bfs"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/internal/config"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	log    *logrus.Logger
}

// New creates the CLI application. cfg supplies flag defaults.
func New(cfg config.Config) *App {
	app := &App{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		cfg:    cfg,
		log:    logrus.New(),
	}

	app.root = &cobra.Command{
		Use:   "cleaner",
		Short: "Shortest cleaning routes for a robot on a small grid",
		Long: `cleaner finds the shortest sequence of moves (u, d, l, r) that takes a
single robot over every dirty cell of a small grid without entering walls.

Grids are written one row per line: D dirt, E empty, W wall, X robot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setupLogging()
		},
	}

	flags := app.root.PersistentFlags()
	flags.StringVar(&app.cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.IntVar(&app.cfg.MaxSide, "max-side", cfg.MaxSide, "Maximum rows/columns of a grid (0 = unbounded)")
	flags.IntVar(&app.cfg.MaxStates, "max-states", cfg.MaxStates, "Fail once this many configurations are discovered (0 = unbounded)")
	flags.IntVar(&app.cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Do not explore routes longer than this (0 = unbounded)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSolveCmd(),
		app.newScenariosCmd(),
	)

	return app
}

// WithIO sets custom input and output streams.
func (a *App) WithIO(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetIn(stdin)
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) setupLogging() error {
	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	a.log.SetLevel(lvl)
	a.log.SetOutput(a.stderr)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// gridOptions returns the world options derived from flags.
func (a *App) gridOptions() []world.Option {
	return []world.Option{world.WithMaxSide(a.cfg.MaxSide)}
}

// searchLimits returns the search limits derived from flags. The options
// carry no state, so one slice may be shared by concurrent searches.
func (a *App) searchLimits() []bfs.Option {
	return []bfs.Option{
		bfs.WithMaxStates(a.cfg.MaxStates),
		bfs.WithMaxDepth(a.cfg.MaxDepth),
	}
}

// solveOptions extends searchLimits for a single search with cancellation
// and a hook that reports each new frontier layer at debug level.
func (a *App) solveOptions(ctx context.Context) []bfs.Option {
	layer := -1
	return append(a.searchLimits(),
		bfs.WithContext(ctx),
		bfs.WithOnDequeue(func(_ string, depth int) {
			if depth != layer {
				layer = depth
				a.log.WithField("depth", depth).Debug("expanding layer")
			}
		}),
	)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "cleaner version %s (%s)\n", Version, GitCommit)
		},
	}
}
