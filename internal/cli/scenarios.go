package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/scenario"
)

// scenariosCmdOptions holds options for the scenarios command.
type scenariosCmdOptions struct {
	file     string
	parallel int
}

// newScenariosCmd creates the scenarios command.
func (a *App) newScenariosCmd() *cobra.Command {
	opts := &scenariosCmdOptions{parallel: a.cfg.Parallelism}

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Run named example scenarios",
		Long: `Run the built-in example scenarios, or the scenarios listed in a YAML file,
print each grid with its optimal route, and fail if any expectation is not met.

Examples:
  cleaner scenarios
  cleaner scenarios --file rooms.yaml --parallel 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenarios(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML file with scenarios (default: built-in set)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", opts.parallel, "Scenarios solved at once (0 = number of CPUs)")

	return cmd
}

func (a *App) runScenarios(cmd *cobra.Command, opts *scenariosCmdOptions) error {
	scenarios := scenario.Builtin()
	if opts.file != "" {
		var err error
		if scenarios, err = scenario.LoadFile(opts.file); err != nil {
			return err
		}
	}

	runner := scenario.NewRunner(
		scenario.WithParallelism(opts.parallel),
		scenario.WithGridOptions(a.gridOptions()...),
		scenario.WithSolveOptions(a.searchLimits()...),
		scenario.WithLogger(a.log),
	)
	reports, err := runner.Run(cmd.Context(), scenarios)
	if err != nil {
		return err
	}
	if err := scenario.RenderAll(a.stdout, reports); err != nil {
		return err
	}

	failed := 0
	for _, r := range reports {
		if err := r.Check(); err != nil {
			failed++
			a.log.WithFields(logrus.Fields{"scenario": r.Name}).WithError(err).Error("scenario failed")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(reports))
	}
	a.log.WithField("count", len(reports)).Info("all scenarios passed")
	return nil
}
