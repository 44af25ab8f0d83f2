package search

import "github.com/cwbudde/countdown/internal/game"

// Stats counts the work done by a search
type Stats struct {
	Nodes      int64 `json:"nodes"`
	Candidates int64 `json:"candidates"`
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Candidates += o.Candidates
}

// Engine is a depth-first branch-and-bound explorer over one hand. It
// reuses a single State and per-depth move buffers, so exploring a node
// allocates nothing; only an improvement copies the current path.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	hand *game.Hand
	gen  game.MoveGenerator
	eval Evaluator

	state game.State
	path  [game.HandSize]game.Move
	bufs  [game.HandSize][game.MaxMoves]game.Move

	best      [game.HandSize]game.Move
	bestLen   int
	bestScore Score
	stats     Stats
}

// NewEngine returns an engine exploring h under eval
func NewEngine(h *game.Hand, eval Evaluator) *Engine {
	return &Engine{hand: h, gen: game.NewMoveGenerator(h), eval: eval}
}

// Seed installs c as the incumbent. Only strictly better candidates
// replace it afterwards.
func (e *Engine) Seed(c game.Candidate, score Score) {
	if e.bestLen > 0 && !score.Less(e.bestScore) {
		return
	}
	e.bestLen = copy(e.best[:], c.Moves)
	e.bestScore = score
}

// Run explores the whole tree
func (e *Engine) Run() {
	e.descend()
}

// RunFrom explores only the subtree below the initial pick of index i
func (e *Engine) RunFrom(i int) {
	m := game.PickMove(e.hand, i)
	prev := e.state.Apply(m)
	e.path[0] = m
	e.descend()
	e.state.Undo(m, prev)
}

// Best returns the incumbent, if any
func (e *Engine) Best() (game.Candidate, Score, bool) {
	if e.bestLen == 0 {
		return game.Candidate{}, Score{}, false
	}
	return game.NewCandidate(e.best[:e.bestLen]), e.bestScore, true
}

// Stats returns the counters of the work done so far
func (e *Engine) Stats() Stats { return e.stats }

func (e *Engine) descend() {
	e.stats.Nodes++
	depth := e.state.Consumed
	if depth > 0 {
		e.record(depth)
	}
	if e.state.Full() || e.bounded() {
		return
	}

	moves := e.gen.Generate(e.bufs[depth][:0], &e.state)
	for _, m := range moves {
		prev := e.state.Apply(m)
		e.path[depth] = m
		e.descend()
		e.state.Undo(m, prev)
	}
}

func (e *Engine) record(depth int) {
	score, ok := e.eval.Evaluate(e.hand, e.path[:depth])
	if !ok {
		return
	}
	e.stats.Candidates++
	if e.bestLen > 0 && !score.Less(e.bestScore) {
		return
	}
	e.bestLen = copy(e.best[:], e.path[:depth])
	e.bestScore = score
}

// bounded reports whether no descendant can beat the incumbent. Primary
// keys are never negative, so once the incumbent reaches 0 only chains
// using fewer numbers could win, and descendants always use more.
func (e *Engine) bounded() bool {
	return e.bestLen > 0 && e.bestScore.Primary == 0 && e.state.Consumed >= e.bestScore.Used
}
