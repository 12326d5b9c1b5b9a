package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"wayfind/problem"
	"wayfind/routing"
	"wayfind/runner"
)

// newSolveCommand builds the `wayfind solve` command: one problem file,
// either the full three-mode run or a single explicit mode.
func newSolveCommand() *cobra.Command {
	var (
		outDir   string
		modeName string
	)

	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve one problem file and write its solution records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if modeName == "all" {
				return runner.Solve(args[0], outDir)
			}

			mode, err := routing.ParseMode(modeName)
			if err != nil {
				return err
			}
			g, err := problem.Load(args[0])
			if err != nil {
				return err
			}

			return runner.SolveMode(g, mode, filepath.Join(outDir, runner.OutputFile(mode)))
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "directory for solution files")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "all", "heuristic mode: none|simple|advanced|all")

	return cmd
}
