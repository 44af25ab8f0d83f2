package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cwbudde/countdown/internal/report"
	"github.com/cwbudde/countdown/internal/search"
	"golang.org/x/sync/errgroup"
)

// Mode selects the objective a case is solved under
type Mode string

const (
	ModePlain     Mode = "plain"
	ModeResilient Mode = "resilient"
)

// Result is the outcome of one case in one mode
type Result struct {
	Case     Case
	Mode     Mode
	Solution search.Solution
	Err      error
	Elapsed  time.Duration
}

// Runner solves batches of cases
type Runner struct {
	Solver *search.Solver
	// Concurrency is how many cases run at once. Values below 2 run the
	// cases one after another, which keeps the timings comparable.
	Concurrency int
}

// Run solves every case in plain mode, then every case in resilient mode.
// Results come back in that order regardless of Concurrency. A hand that
// fails validation aborts the run; a resilient search without an
// attackable chain is recorded in its Result.
func (r Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	solver := r.Solver
	if solver == nil {
		solver = search.New()
	}

	results := make([]Result, 2*len(cases))
	g, ctx := errgroup.WithContext(ctx)
	limit := r.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, mode := range []Mode{ModePlain, ModeResilient} {
		for j, c := range cases {
			slot := i*len(cases) + j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				h, err := c.Hand()
				if err != nil {
					return fmt.Errorf("case %d: %w", j+1, err)
				}

				start := time.Now()
				res := Result{Case: c, Mode: mode}
				if mode == ModePlain {
					res.Solution = solver.SolvePlain(h)
				} else {
					res.Solution, res.Err = solver.SolveResilient(h)
				}
				res.Elapsed = time.Since(start)
				results[slot] = res

				slog.Debug("Case solved", "mode", mode, "goal", c.Goal,
					"distance", res.Solution.Distance(), "nodes", res.Solution.Stats.Nodes,
					"elapsed", res.Elapsed)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Print writes each result with its header and timing:
//
//	Case: numbers=[1, 3, 5, 8, 10, 50], goal=462
//	<rendered solution>
//	Time: 0.012s
//	---
func Print(w io.Writer, results []Result, rep report.Reporter) error {
	for _, res := range results {
		header := "Case"
		if res.Mode == ModeResilient {
			header = "Resilient case"
		}
		if res.Case.Name != "" {
			header += " " + res.Case.Name
		}
		if _, err := fmt.Fprintf(w, "%s: numbers=%s, goal=%d\n", header, formatNumbers(res.Case.Numbers), res.Case.Goal); err != nil {
			return err
		}

		if res.Err != nil {
			if _, err := fmt.Fprintln(w, "No solution found"); err != nil {
				return err
			}
		} else if err := rep.Report(w, res.Solution); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "Time: %.3fs\n---\n", res.Elapsed.Seconds()); err != nil {
			return err
		}
	}
	return nil
}

func formatNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
