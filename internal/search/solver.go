// Package search finds the best chain of moves for a hand: a depth-first
// branch-and-bound engine driven by a plain or a resilient (minimax)
// objective.
package search

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/cwbudde/countdown/internal/game"
	"github.com/cwbudde/countdown/internal/opt"
	"golang.org/x/sync/errgroup"
)

// Solution is the best candidate found for a hand and its score
type Solution struct {
	Mode      string
	Hand      game.Hand
	Candidate game.Candidate
	Score     Score
	Stats     Stats
	Elapsed   time.Duration
}

// Distance returns the primary score: the distance to the goal, or the
// worst distance after an attack for a resilient solution.
func (s Solution) Distance() int { return s.Score.Primary }

// Used returns how many hand numbers the chain consumes
func (s Solution) Used() int { return s.Score.Used }

// Solver runs searches over hands. A Solver holds configuration only and
// is safe for concurrent use.
type Solver struct {
	workers int
	warm    opt.Optimizer
}

// Option configures a Solver
type Option func(*Solver)

// WithWorkers sets how many top-level branches are explored in parallel.
// Values below 2 run one sequential engine over the whole tree.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithWarmStart seeds every search with the chain found by o
func WithWarmStart(o opt.Optimizer) Option {
	return func(s *Solver) { s.warm = o }
}

// New creates a Solver. By default it uses one worker per CPU.
func New(opts ...Option) *Solver {
	s := &Solver{workers: runtime.NumCPU()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SolvePlain returns the chain closest to the goal, using as few numbers
// as possible among the closest ones.
func (s *Solver) SolvePlain(h game.Hand) Solution {
	sol, _ := s.Solve(h, PlainEvaluator{})
	return sol
}

// SolveResilient returns the chain whose worst distance after an attack
// is smallest. It fails with ErrNoAttackableSolution only if no chain
// ends with an arithmetic move.
func (s *Solver) SolveResilient(h game.Hand) (Solution, error) {
	return s.Solve(h, ResilientEvaluator{})
}

// Solve runs the exhaustive search for h under eval
func (s *Solver) Solve(h game.Hand, eval Evaluator) (Solution, error) {
	start := time.Now()
	slog.Debug("Starting search", "mode", eval.Name(), "hand", h.String(), "workers", s.workers)

	var seed *branch
	if s.warm != nil {
		c, score, err := warmStart(s.warm, &h, eval)
		if err != nil {
			slog.Warn("Warm start failed, searching without incumbent", "error", err)
		} else {
			seed = &branch{candidate: c, score: score, ok: true}
		}
	}

	var best branch
	var stats Stats
	if s.workers < 2 {
		best, stats = s.sequential(&h, eval, seed)
	} else {
		best, stats = s.parallel(&h, eval, seed)
	}

	sol := Solution{
		Mode:      eval.Name(),
		Hand:      h,
		Candidate: best.candidate,
		Score:     best.score,
		Stats:     stats,
		Elapsed:   time.Since(start),
	}
	if !best.ok {
		return sol, ErrNoAttackableSolution
	}

	slog.Debug("Search complete",
		"mode", sol.Mode,
		"primary", sol.Score.Primary,
		"used", sol.Score.Used,
		"nodes", stats.Nodes,
		"elapsed", sol.Elapsed,
	)
	return sol, nil
}

type branch struct {
	candidate game.Candidate
	score     Score
	ok        bool
}

func (b *branch) improve(o branch) {
	if o.ok && (!b.ok || o.score.Less(b.score)) {
		*b = o
	}
}

func newBranchEngine(h *game.Hand, eval Evaluator, seed *branch) *Engine {
	e := NewEngine(h, eval)
	if seed != nil {
		e.Seed(seed.candidate, seed.score)
	}
	return e
}

func engineResult(e *Engine) branch {
	c, score, ok := e.Best()
	return branch{candidate: c, score: score, ok: ok}
}

func (s *Solver) sequential(h *game.Hand, eval Evaluator, seed *branch) (branch, Stats) {
	e := newBranchEngine(h, eval, seed)
	e.Run()
	return engineResult(e), e.Stats()
}

// parallel explores each initial pick in its own engine and reduces the
// results in pick order, so the outcome matches the sequential search.
func (s *Solver) parallel(h *game.Hand, eval Evaluator, seed *branch) (branch, Stats) {
	results := make([]branch, game.HandSize)
	counts := make([]Stats, game.HandSize)

	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i := 0; i < game.HandSize; i++ {
		g.Go(func() error {
			e := newBranchEngine(h, eval, seed)
			e.RunFrom(i)
			results[i] = engineResult(e)
			counts[i] = e.Stats()
			return nil
		})
	}
	_ = g.Wait() // branches never fail

	var best branch
	if seed != nil {
		best = *seed
	}
	var stats Stats
	for i := range results {
		best.improve(results[i])
		stats.add(counts[i])
	}
	return best, stats
}

var defaultSolver = New()

// SolvePlain solves h with the default Solver
func SolvePlain(h game.Hand) Solution { return defaultSolver.SolvePlain(h) }

// SolveResilient solves h with the default Solver
func SolveResilient(h game.Hand) (Solution, error) { return defaultSolver.SolveResilient(h) }
