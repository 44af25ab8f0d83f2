package search

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/countdown/internal/game"
	"github.com/cwbudde/countdown/internal/opt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceCases = []struct {
	numbers   []int
	goal      int
	plain     Score
	resilient Score
}{
	{[]int{1, 3, 5, 8, 10, 50}, 462, Score{0, 4}, Score{5, 5}},
	{[]int{3, 5, 6, 8, 9, 10}, 317, Score{0, 5}, Score{5, 5}},
	{[]int{2, 4, 7, 9, 25, 50}, 463, Score{0, 5}, Score{5, 4}},
	{[]int{1, 6, 8, 12, 25, 75}, 952, Score{0, 5}, Score{5, 5}},
	{[]int{1, 2, 3, 4, 6, 8}, 999, Score{7, 6}, Score{38, 6}},
	{[]int{2, 3, 5, 7, 11, 13}, 997, Score{0, 6}, Score{5, 5}},
	{[]int{1, 4, 6, 7, 8, 9}, 503, Score{0, 4}, Score{5, 5}},
	{[]int{2, 4, 6, 8, 10, 12}, 457, Score{0, 6}, Score{5, 6}},
}

// checkChain verifies the structural invariants of a solution's moves
func checkChain(t *testing.T, h game.Hand, c game.Candidate) {
	t.Helper()

	require.NotEmpty(t, c.Moves)
	require.LessOrEqual(t, len(c.Moves), game.HandSize)
	assert.True(t, c.Moves[0].IsPick())
	assert.Equal(t, len(c.Moves), c.Used)

	seen := map[int]bool{}
	running := 0
	for i, m := range c.Moves {
		idx := m.Operand().Index()
		assert.False(t, seen[idx], "index %d used twice", idx)
		seen[idx] = true
		assert.Equal(t, h.Number(idx), m.Number())
		assert.GreaterOrEqual(t, m.Result, 0)

		if i > 0 {
			assert.False(t, m.IsPick())
			if m.RunningLeft() {
				assert.Equal(t, running, m.LeftValue)
				assert.Equal(t, game.Original(idx), m.Right)
			} else {
				assert.Equal(t, running, m.RightValue)
				assert.Equal(t, game.Running, m.Right)
			}
			r, ok := m.Op.Apply(m.LeftValue, m.RightValue)
			require.True(t, ok, "illegal move %v", m)
			assert.Equal(t, r, m.Result)
		}
		running = m.Result
	}
	assert.Equal(t, running, c.Value)
}

func TestSolvePlain_ReferenceCases(t *testing.T) {
	for _, tc := range referenceCases {
		h := game.MustHand(tc.numbers, tc.goal)
		t.Run(h.String(), func(t *testing.T) {
			sol := SolvePlain(h)

			assert.Equal(t, "plain", sol.Mode)
			assert.Equal(t, tc.plain, sol.Score)
			assert.Equal(t, h.Distance(sol.Candidate.Value), sol.Distance())
			checkChain(t, h, sol.Candidate)
		})
	}
}

func TestSolveResilient_ReferenceCases(t *testing.T) {
	for _, tc := range referenceCases {
		h := game.MustHand(tc.numbers, tc.goal)
		t.Run(h.String(), func(t *testing.T) {
			sol, err := SolveResilient(h)
			require.NoError(t, err)

			assert.Equal(t, "resilient", sol.Mode)
			assert.Equal(t, tc.resilient, sol.Score)
			assert.GreaterOrEqual(t, sol.Used(), 2)
			checkChain(t, h, sol.Candidate)

			last, ok := sol.Candidate.Last()
			require.True(t, ok)
			_, worst := ResilientEvaluator{}.WorstAttack(&h, last)
			assert.Equal(t, worst, sol.Distance())

			assert.GreaterOrEqual(t, sol.Distance(), tc.plain.Primary,
				"an attack cannot beat the plain optimum on this hand")
		})
	}
}

func TestSolvePlain_ExampleSolution(t *testing.T) {
	h := game.MustHand([]int{1, 3, 5, 8, 10, 50}, 462)
	sol := SolvePlain(h)

	assert.Equal(t, 462, sol.Candidate.Value)
	assert.Equal(t, 0, sol.Distance())
	assert.Equal(t, 4, sol.Used())
}

func TestSolveResilient_BeatsExampleChain(t *testing.T) {
	h := game.MustHand([]int{1, 3, 5, 8, 10, 50}, 462)
	example, ok := ResilientEvaluator{}.Evaluate(&h, examplePath(&h))
	require.True(t, ok)

	sol, err := SolveResilient(h)
	require.NoError(t, err)

	assert.True(t, sol.Score.Less(example), "resilient solution %v should beat %v", sol.Score, example)
	assert.LessOrEqual(t, sol.Distance(), example.Primary)
}

func TestSolve_Idempotent(t *testing.T) {
	h := game.MustHand([]int{3, 5, 6, 8, 9, 10}, 317)
	s := New()

	a := s.SolvePlain(h)
	b := s.SolvePlain(h)
	assert.Equal(t, a.Score, b.Score)

	ra, err := s.SolveResilient(h)
	require.NoError(t, err)
	rb, err := s.SolveResilient(h)
	require.NoError(t, err)
	assert.Equal(t, ra.Score, rb.Score)
}

func TestSolve_SequentialMatchesParallel(t *testing.T) {
	seq := New(WithWorkers(1))
	par := New(WithWorkers(4))

	for _, tc := range referenceCases[:4] {
		h := game.MustHand(tc.numbers, tc.goal)

		a := seq.SolvePlain(h)
		b := par.SolvePlain(h)
		assert.Equal(t, a.Score, b.Score)
		assert.Equal(t, a.Candidate, b.Candidate, "both traversals must pick the same optimum")

		ra, err := seq.SolveResilient(h)
		require.NoError(t, err)
		rb, err := par.SolveResilient(h)
		require.NoError(t, err)
		assert.Equal(t, ra.Candidate, rb.Candidate)
	}
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive cross-check")
	}

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 6; n++ {
		perm := rng.Perm(20)
		var nums [6]int
		copy(nums[:], perm[:6])
		goal := rng.Intn(400)

		h := game.MustHand(nums[:], goal)
		t.Run(h.String(), func(t *testing.T) {
			plain, resilient, ok := bruteForce(nums, goal)
			require.True(t, ok)

			sol := SolvePlain(h)
			assert.Equal(t, plain, sol.Score)
			checkChain(t, h, sol.Candidate)

			rsol, err := SolveResilient(h)
			require.NoError(t, err)
			assert.Equal(t, resilient, rsol.Score)
		})
	}
}

func TestSolvePlain_UnreachableGoal(t *testing.T) {
	// far beyond any product of the hand: the best chain multiplies everything
	h := game.MustHand([]int{2, 3, 4, 5, 6, 7}, 1000000)
	sol := SolvePlain(h)

	assert.Equal(t, 5040, sol.Candidate.Value)
	assert.Equal(t, 1000000-5040, sol.Distance())
	assert.Equal(t, 6, sol.Used())
}

func TestSolvePlain_GoalInHand(t *testing.T) {
	h := game.MustHand([]int{1, 3, 5, 8, 10, 50}, 8)
	sol := SolvePlain(h)

	assert.Equal(t, Score{Primary: 0, Used: 1}, sol.Score)
	assert.Equal(t, 8, sol.Candidate.Initial())
	assert.Empty(t, sol.Candidate.Steps())
}

func TestSolve_NoAttackableSolution(t *testing.T) {
	h := game.MustHand([]int{1, 2, 3, 4, 5, 6}, 10)

	_, err := New(WithWorkers(1)).Solve(h, pickOnly{})
	assert.True(t, errors.Is(err, ErrNoAttackableSolution))
}

// pickOnly accepts nothing, like a resilient search over chains that
// never get past the initial pick.
type pickOnly struct{}

func (pickOnly) Name() string { return "pick-only" }

func (pickOnly) Evaluate(*game.Hand, []game.Move) (Score, bool) { return Score{}, false }

// recording checks an invariant on every candidate the engine scores
type recording struct {
	t     *testing.T
	count int
}

func (r *recording) Name() string { return "recording" }

func (r *recording) Evaluate(h *game.Hand, path []game.Move) (Score, bool) {
	r.count++
	last := path[len(path)-1]
	if len(path) >= 2 && last.Number() >= AttackMin && last.Number() <= AttackMax {
		// the attacker can replay the original number, so it can only do worse
		_, worst := ResilientEvaluator{}.WorstAttack(h, last)
		if worst < h.Distance(last.Result) {
			r.t.Errorf("worst attack %d below plain distance %d for %v", worst, h.Distance(last.Result), path)
		}
	}
	return PlainEvaluator{}.Evaluate(h, path)
}

func TestResilient_WorstNotBelowPlainDistance(t *testing.T) {
	h := game.MustHand([]int{1, 2, 3, 4, 9, 10}, 97)
	rec := &recording{t: t}

	e := NewEngine(&h, rec)
	e.Run()

	assert.Positive(t, rec.count)
	assert.Equal(t, int64(rec.count), e.Stats().Candidates)
}

func TestEngine_PrunesAfterExactHit(t *testing.T) {
	h := game.MustHand([]int{1, 3, 5, 8, 10, 50}, 50)

	pruned := NewEngine(&h, PlainEvaluator{})
	pruned.Run()
	c, score, ok := pruned.Best()
	require.True(t, ok)
	assert.Equal(t, Score{Primary: 0, Used: 1}, score)
	assert.Equal(t, 50, c.Initial())

	// values are never negative, so a negative goal is never hit and
	// nothing gets pruned
	far := game.MustHand([]int{1, 3, 5, 8, 10, 50}, -1)
	full := NewEngine(&far, PlainEvaluator{})
	full.Run()
	assert.Less(t, pruned.Stats().Nodes, full.Stats().Nodes)
}

func TestSolve_ExtremeValues(t *testing.T) {
	h := game.MustHand([]int{math.MaxInt, 0, 2, 3, 4, 5}, -1)

	for _, workers := range []int{1, 4} {
		sol := New(WithWorkers(workers)).SolvePlain(h)
		assert.Equal(t, Score{Primary: 1, Used: 1}, sol.Score, "workers=%d", workers)
		assert.Equal(t, 0, sol.Candidate.Value, "workers=%d", workers)

		res, err := New(WithWorkers(workers)).SolveResilient(h)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score.Primary, 0, "workers=%d", workers)
	}

	top := game.MustHand([]int{math.MaxInt, 1, 2, 3, 4, 5}, math.MaxInt)
	sol := New(WithWorkers(1)).SolvePlain(top)
	assert.Equal(t, Score{Primary: 0, Used: 1}, sol.Score)

	res, err := New(WithWorkers(1)).SolveResilient(top)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Score.Primary, 0)
}

func TestEngine_SeedIsKeptUnlessBeaten(t *testing.T) {
	h := game.MustHand([]int{1, 3, 5, 8, 10, 50}, 462)
	seed := game.NewCandidate(examplePath(&h))

	e := NewEngine(&h, PlainEvaluator{})
	e.Seed(seed, Score{Primary: 0, Used: 4})
	e.Run()

	c, score, ok := e.Best()
	require.True(t, ok)
	assert.Equal(t, Score{Primary: 0, Used: 4}, score)
	assert.Equal(t, seed, c, "no strictly better chain exists, so the seed stays")
}

// fixedOptimizer returns a preset point without searching
type fixedOptimizer struct {
	position []float64
	err      error
	calls    int
}

func (f *fixedOptimizer) Minimize(objective func([]float64) float64, bounds opt.Bounds) (opt.Result, error) {
	f.calls++
	if f.err != nil {
		return opt.Result{}, f.err
	}
	return opt.Result{Position: f.position, Cost: objective(f.position)}, nil
}

func TestWarmStart_DoesNotChangeOptimum(t *testing.T) {
	h := game.MustHand([]int{1, 3, 5, 8, 10, 50}, 462)
	fixed := &fixedOptimizer{position: []float64{0.99, 0.99, 0.1, 0.2, 0.3, 0.4, 0.5}}

	sol := New(WithWarmStart(fixed)).SolvePlain(h)
	assert.Equal(t, 1, fixed.calls)
	assert.Equal(t, Score{Primary: 0, Used: 4}, sol.Score)

	rsol, err := New(WithWarmStart(fixed), WithWorkers(1)).SolveResilient(h)
	require.NoError(t, err)
	assert.Equal(t, Score{Primary: 5, Used: 5}, rsol.Score)
}

func TestWarmStart_FailureFallsBack(t *testing.T) {
	h := game.MustHand([]int{1, 3, 5, 8, 10, 50}, 462)
	failing := &fixedOptimizer{err: errors.New("boom")}

	sol := New(WithWarmStart(failing)).SolvePlain(h)
	assert.Equal(t, Score{Primary: 0, Used: 4}, sol.Score)
}

func TestWarmStart_Mayfly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping metaheuristic warm start")
	}
	h := game.MustHand([]int{2, 4, 7, 9, 25, 50}, 463)

	sol := New(WithWarmStart(opt.NewMayfly(30, opt.MinPopulation, 42))).SolvePlain(h)
	assert.Equal(t, Score{Primary: 0, Used: 5}, sol.Score)
}

func TestDecodeGenome_AlwaysLegal(t *testing.T) {
	h := game.MustHand([]int{0, 1, 2, 7, 11, 100}, 250)
	rng := rand.New(rand.NewSource(3))

	for n := 0; n < 200; n++ {
		x := make([]float64, genomeDim)
		for i := range x {
			x[i] = rng.Float64()
		}
		path := decodeGenome(&h, x)
		checkChain(t, h, game.NewCandidate(path))
	}

	// boundary genes must stay in range
	ones := []float64{1, 1, 1, 1, 1, 1, 1}
	path := decodeGenome(&h, ones)
	assert.Equal(t, 100, path[0].Result)
	checkChain(t, h, game.NewCandidate(path))
}
