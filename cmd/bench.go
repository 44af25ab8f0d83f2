package main

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/countdown/internal/bench"
	"github.com/cwbudde/countdown/internal/report"
	"github.com/spf13/cobra"
)

var (
	casesPath   string
	concurrency int
	benchFormat string
	benchSearch searchFlags
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve a batch of hands in plain and resilient mode with timing",
	Long: `Runs every case in plain mode, then every case in resilient mode,
printing each solution followed by its search time. Without --cases the
built-in reference hands are used.

A case file is YAML:

  cases:
    - name: classic
      numbers: [1, 3, 5, 8, 10, 50]
      goal: 462`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&casesPath, "cases", "", "YAML case file (default: built-in cases)")
	benchCmd.Flags().IntVar(&concurrency, "concurrency", 1, "Cases solved at the same time")
	benchCmd.Flags().StringVar(&benchFormat, "format", "text", "Output format: text, json")
	benchSearch.register(benchCmd, 1)
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cases := bench.DefaultCases()
	if casesPath != "" {
		loaded, err := bench.LoadCases(casesPath)
		if err != nil {
			return err
		}
		cases = loaded
	}

	rep, err := report.New(benchFormat)
	if err != nil {
		return err
	}

	slog.Info("Running bench", "cases", len(cases), "concurrency", concurrency, "workers", benchSearch.workers)

	runner := bench.Runner{Solver: benchSearch.solver(), Concurrency: concurrency}
	results, err := runner.Run(cmd.Context(), cases)
	if err != nil {
		return fmt.Errorf("bench failed: %w", err)
	}

	return bench.Print(cmd.OutOrStdout(), results, rep)
}
