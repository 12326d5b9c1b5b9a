package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wayfind/runner"
)

// newBatchCommand builds the `wayfind batch` command: solve every problem
// file in a directory, never letting one bad input abort the rest.
func newBatchCommand() *cobra.Command {
	var (
		outDir      string
		expectedDir string
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Solve every problem file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := runner.Batch(args[0], runner.Options{
				OutputDir:   outDir,
				ExpectedDir: expectedDir,
			})
			if err != nil {
				return err
			}

			log.Infof("batch finished: %d solved, %d failed, %d checked, %d mismatched",
				rep.Solved, rep.Failed, rep.Checked, rep.Mismatched)

			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory for per-input output subfolders (default: the input directory)")
	cmd.Flags().StringVarP(&expectedDir, "expected", "e", "", "directory of expected outputs to validate against")

	return cmd
}
