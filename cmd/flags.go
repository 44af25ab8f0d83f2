package main

import (
	"github.com/cwbudde/countdown/internal/opt"
	"github.com/cwbudde/countdown/internal/search"
	"github.com/spf13/cobra"
)

// searchFlags are the solver settings shared by solve, bench and serve.
// Each command owns its own instance so flag defaults do not collide.
type searchFlags struct {
	workers   int
	warmStart bool
	warmIters int
	warmPop   int
	seed      int64
}

func (f *searchFlags) register(cmd *cobra.Command, defaultWorkers int) {
	cmd.Flags().IntVar(&f.workers, "workers", defaultWorkers, "Initial picks searched in parallel (1 = sequential)")
	cmd.Flags().BoolVar(&f.warmStart, "warm-start", false, "Seed the search with a mayfly heuristic solution")
	cmd.Flags().IntVar(&f.warmIters, "warm-iters", 50, "Warm start iterations")
	cmd.Flags().IntVar(&f.warmPop, "warm-pop", opt.MinPopulation, "Warm start population size")
	cmd.Flags().Int64Var(&f.seed, "seed", 42, "Warm start random seed")
}

func (f *searchFlags) solver() *search.Solver {
	opts := []search.Option{search.WithWorkers(f.workers)}
	if f.warmStart {
		opts = append(opts, search.WithWarmStart(opt.NewMayfly(f.warmIters, f.warmPop, f.seed)))
	}
	return search.New(opts...)
}
