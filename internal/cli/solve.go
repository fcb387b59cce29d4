package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/bfs"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/scenario"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

// solveCmdOptions holds options for the solve command.
type solveCmdOptions struct {
	file   string
	verify bool
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveCmdOptions{}

	cmd := &cobra.Command{
		Use:   "solve [ROW...]",
		Short: "Find the shortest cleaning route for one grid",
		Long: `Find the shortest cleaning route for one grid.

Rows are taken from the arguments, or from --file (use "-" for stdin),
one row per line. Blank lines are ignored.

Examples:
  cleaner solve XWD EEE DWE
  cleaner solve --file room.txt --verify
  printf 'XDD\nDEE\n' | cleaner solve --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := args
			if opts.file != "" {
				if len(args) > 0 {
					return fmt.Errorf("give rows either as arguments or with --file, not both")
				}
				var err error
				if rows, err = a.readRows(opts.file); err != nil {
					return err
				}
			}
			return a.solve(cmd, rows, opts.verify)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read grid rows from a file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Replay the answer and confirm it cleans the grid")

	return cmd
}

func (a *App) readRows(path string) ([]string, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open grid: %w", err)
		}
		defer f.Close()
		r = f
	}

	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return rows, nil
}

func (a *App) solve(cmd *cobra.Command, rows []string, verify bool) error {
	g, err := world.New(rows, a.gridOptions()...)
	if err != nil {
		return err
	}
	rowsN, colsN := g.Size()
	a.log.WithFields(logrus.Fields{
		"rows": rowsN,
		"cols": colsN,
		"dirt": g.DirtCount(),
	}).Debug("grid loaded")

	res, err := bfs.Solve(g, a.solveOptions(cmd.Context())...)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"explored":     res.Explored,
		"discovered":   res.Discovered,
		"max_frontier": res.MaxFrontier,
	}).Info("search finished")

	if err := scenario.RenderWorld(a.stdout, g.Lines()); err != nil {
		return err
	}
	if err := scenario.RenderResult(a.stdout, res); err != nil {
		return err
	}

	if verify {
		if !res.Solved {
			fmt.Fprintln(a.stdout, "Verified: nothing to replay, dirt is unreachable")
			return nil
		}
		rep := scenario.Report{Name: "input", Rows: g.Lines(), Grid: g, Result: res}
		if err := rep.Check(); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, "Verified: route is legal and leaves no dirt")
	}
	return nil
}
