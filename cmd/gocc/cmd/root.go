// Package cmd implements the gocc CLI: Cobra commands wiring package
// ingest, csr, bench, runspec, and output together the way spec.md §6
// describes the external CLI surface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gocc/internal/colog"
)

var (
	verbose bool
	logger  colog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gocc",
	Short: "Connected-components benchmark suite for large sparse graphs",
	Long: `gocc builds a CSR graph from a Matrix Market or MATLAB binary file and
benchmarks four equivalent connected-components kernels against each
other: sequential BFS, sequential label-propagation, loop-parallel
label-propagation, and thread-pool label-propagation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := colog.LevelInfo
		if verbose {
			level = colog.LevelDebug
		}
		logger = colog.New(level, os.Stderr)
		return nil
	},
}

// Execute runs the root command, exiting with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
}

// GetLogger returns the logger configured by PersistentPreRunE.
func GetLogger() colog.Logger {
	if logger == nil {
		return colog.Null{}
	}
	return logger
}
