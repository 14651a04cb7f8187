package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gocc/bench"
	"github.com/katalvlaran/gocc/ccerr"
	"github.com/katalvlaran/gocc/output"
	"github.com/katalvlaran/gocc/runspec"
)

var (
	sweepRuns      int
	sweepThreads   string
	sweepChunkSize string
	sweepAlgorithm string
	sweepOutputDir string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <matrix-path>",
	Short: "Run every (threads, chunk-size) combination and write the surface CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSweep(args[0])
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 3, "number of timed runs per configuration")
	sweepCmd.Flags().StringVar(&sweepThreads, "threads", "", "threads runspec (required)")
	sweepCmd.Flags().StringVar(&sweepChunkSize, "chunk-size", "", "chunk-size runspec (required)")
	sweepCmd.Flags().StringVar(&sweepAlgorithm, "algorithm", "lp-par-pool", "lp-par-loop | lp-par-pool")
	sweepCmd.Flags().StringVar(&sweepOutputDir, "output", "./gocc-out", "output directory for the surface CSV")
}

func runSweep(matrixPath string) error {
	log := GetLogger()

	if sweepThreads == "" || sweepChunkSize == "" {
		return fmt.Errorf("%w: --threads and --chunk-size are required for sweep", ccerr.ErrBadArgument)
	}
	algo, err := parseAlgorithm(sweepAlgorithm)
	if err != nil {
		return err
	}
	if algo != bench.AlgorithmLPParallelLoop && algo != bench.AlgorithmLPParallelPool {
		return fmt.Errorf("%w: sweep only supports lp-par-loop or lp-par-pool, got %q", ccerr.ErrBadArgument, algo)
	}
	threadVals, err := runspec.Parse(sweepThreads)
	if err != nil {
		return fmt.Errorf("--threads: %w", err)
	}
	chunkVals, err := runspec.Parse(sweepChunkSize)
	if err != nil {
		return fmt.Errorf("--chunk-size: %w", err)
	}

	g, err := loadGraph(matrixPath, true, true)
	if err != nil {
		return err
	}
	log.Info("graph loaded", "n", g.N, "m", g.M)

	if err := output.EnsureDir(sweepOutputDir); err != nil {
		return err
	}

	var rows []output.SurfaceRow
	for _, threads := range threadVals {
		for _, chunk := range chunkVals {
			h, err := bench.New(bench.Config{
				Graph: g, Algorithm: algo, Runs: sweepRuns,
				Threads: threads, ChunkSize: chunk, Logger: log,
			})
			if err != nil {
				return err
			}
			res, err := h.Run()
			if err != nil {
				return err
			}
			rows = append(rows, output.SurfaceRow{
				Threads: threads, ChunkSize: chunk, AverageSeconds: res.AverageSeconds(),
			})
			log.Info("sweep point done", "threads", threads, "chunk_size", chunk, "avg_seconds", res.AverageSeconds())
		}
	}

	surfacePath := sweepOutputDir + "/surface.csv"
	if err := output.WriteSurfaceCSV(surfacePath, rows); err != nil {
		return err
	}
	log.Info("sweep complete", "surface", surfacePath)
	return nil
}
