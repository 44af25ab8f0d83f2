package main

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/countdown/internal/game"
	"github.com/cwbudde/countdown/internal/report"
	"github.com/cwbudde/countdown/internal/search"
	"github.com/spf13/cobra"
)

var (
	numbersArg  string
	goal        int
	resilient   bool
	solveFormat string
	timing      bool
	solveSearch searchFlags
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a single hand",
	Long: `Searches every chain over the six numbers and prints the best one.
With --resilient the chain minimizes the worst distance after the last
operand is replaced by any value from 1 to 10.`,
	Example: `  countdown solve --numbers 1,3,5,8,10,50 --goal 462
  countdown solve --numbers 1,3,5,8,10,50 --goal 462 --resilient --format json`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&numbersArg, "numbers", "", "The six hand numbers, comma separated (required)")
	solveCmd.Flags().IntVar(&goal, "goal", 0, "Goal value (required)")
	solveCmd.Flags().BoolVar(&resilient, "resilient", false, "Minimize the worst distance after an attack on the last move")
	solveCmd.Flags().StringVar(&solveFormat, "format", "text", "Output format: text, json")
	solveCmd.Flags().BoolVar(&timing, "timing", false, "Print the search time after the solution")
	solveSearch.register(solveCmd, runtime.NumCPU())

	solveCmd.MarkFlagRequired("numbers")
	solveCmd.MarkFlagRequired("goal")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	nums, err := parseNumbers(numbersArg)
	if err != nil {
		return err
	}
	h, err := game.NewHand(nums, goal)
	if err != nil {
		return err
	}

	rep, err := report.New(solveFormat)
	if err != nil {
		return err
	}

	slog.Info("Solving hand", "hand", h.String(), "resilient", resilient,
		"workers", solveSearch.workers, "warm_start", solveSearch.warmStart)

	solver := solveSearch.solver()
	start := time.Now()

	var sol search.Solution
	if resilient {
		sol, err = solver.SolveResilient(h)
		if errors.Is(err, search.ErrNoAttackableSolution) {
			fmt.Fprintln(cmd.OutOrStdout(), "No solution found")
			return nil
		}
		if err != nil {
			return err
		}
	} else {
		sol = solver.SolvePlain(h)
	}

	if err := rep.Report(cmd.OutOrStdout(), sol); err != nil {
		return fmt.Errorf("failed to write solution: %w", err)
	}
	if timing {
		fmt.Fprintf(cmd.OutOrStdout(), "Time: %.3fs\n", time.Since(start).Seconds())
	}

	slog.Info("Solved hand", "distance", sol.Distance(), "used", sol.Used(), "nodes", sol.Stats.Nodes, "elapsed", sol.Elapsed)
	return nil
}

// parseNumbers parses a comma separated list such as "1,3,5,8,10,50"
func parseNumbers(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
