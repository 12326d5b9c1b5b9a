// Package cmd wires the wayfind CLI: a solve command for one problem
// file and a batch command for whole directories.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// Execute is the entry point to running the CLI.
func Execute(version string) {
	rootCmd := &cobra.Command{
		Use:          "wayfind",
		Short:        "Compute shortest city routes with A* under three heuristics",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(newSolveCommand(), newBatchCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
