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
	runRuns       int
	runThreads    string
	runChunkSize  string
	runAlgorithm  string
	runOutputDir  string
	runSymmetrize bool
)

var runCmd = &cobra.Command{
	Use:   "run <matrix-path>",
	Short: "Benchmark one algorithm across a cartesian product of thread/chunk specs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runRuns, "runs", 5, "number of timed runs per configuration")
	runCmd.Flags().StringVar(&runThreads, "threads", "1", "thread count or runspec (comma-list / start:end[:step])")
	runCmd.Flags().StringVar(&runChunkSize, "chunk-size", "1024", "chunk size or runspec")
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "lp-par-pool", "bfs | lp-seq | lp-par-loop | lp-par-pool")
	runCmd.Flags().StringVar(&runOutputDir, "output", "./gocc-out", "output directory for labels and timings CSV")
	runCmd.Flags().BoolVar(&runSymmetrize, "symmetrize", true, "symmetrize the input edge list")
}

func runRun(matrixPath string) error {
	log := GetLogger()

	if runRuns <= 0 {
		return fmt.Errorf("%w: --runs must be positive, got %d", ccerr.ErrBadArgument, runRuns)
	}
	if runOutputDir == "" {
		return fmt.Errorf("%w: --output must not be empty", ccerr.ErrBadArgument)
	}
	algo, err := parseAlgorithm(runAlgorithm)
	if err != nil {
		return err
	}
	threadVals, err := runspec.Parse(runThreads)
	if err != nil {
		return fmt.Errorf("--threads: %w", err)
	}
	chunkVals, err := runspec.Parse(runChunkSize)
	if err != nil {
		return fmt.Errorf("--chunk-size: %w", err)
	}

	log.Info("loading graph", "path", matrixPath)
	g, err := loadGraph(matrixPath, runSymmetrize, true)
	if err != nil {
		return err
	}
	log.Info("graph loaded", "n", g.N, "m", g.M)

	if err := output.EnsureDir(runOutputDir); err != nil {
		return err
	}

	var lastLabels []int32
	for _, threads := range threadVals {
		for _, chunk := range chunkVals {
			h, err := bench.New(bench.Config{
				Graph: g, Algorithm: algo, Runs: runRuns,
				Threads: threads, ChunkSize: chunk, Logger: log,
			})
			if err != nil {
				return err
			}
			res, err := h.Run()
			if err != nil {
				return err
			}
			lastLabels = res.Labels

			header := fmt.Sprintf("%s_t%d_c%d", algo, threads, chunk)
			seconds := make([]float64, len(res.Durations))
			for i, d := range res.Durations {
				seconds[i] = d.Seconds()
			}
			timingsPath := runOutputDir + "/timings.csv"
			if err := output.AppendTimingsColumn(timingsPath, header, seconds); err != nil {
				return err
			}
			log.Info("configuration done", "threads", threads, "chunk_size", chunk, "avg_seconds", res.AverageSeconds())
		}
	}

	labelsPath := runOutputDir + "/labels.txt"
	if err := output.WriteLabels(labelsPath, lastLabels); err != nil {
		return err
	}
	log.Info("run complete", "labels", labelsPath, "timings", runOutputDir+"/timings.csv")
	return nil
}

func parseAlgorithm(s string) (bench.Algorithm, error) {
	switch bench.Algorithm(s) {
	case bench.AlgorithmBFS, bench.AlgorithmLPSequential, bench.AlgorithmLPParallelLoop, bench.AlgorithmLPParallelPool:
		return bench.Algorithm(s), nil
	default:
		return "", fmt.Errorf("%w: unknown --algorithm %q", ccerr.ErrBadArgument, s)
	}
}
