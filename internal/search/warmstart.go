package search

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/countdown/internal/game"
	"github.com/cwbudde/countdown/internal/opt"
)

// A genome has one gene for the initial pick, one for the number of
// arithmetic steps and one per step choosing among the legal moves.
const genomeDim = 2 + game.HandSize - 1

// rejectCost is the objective value of a genome that decodes to a chain
// the evaluator does not accept.
const rejectCost = 1e18

// choose maps a gene in [0, 1] to an index in [0, n)
func choose(gene float64, n int) int {
	i := int(gene * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// decodeGenome turns a point of the unit box into a legal chain
func decodeGenome(h *game.Hand, x []float64) []game.Move {
	gen := game.NewMoveGenerator(h)
	path := make([]game.Move, 0, game.HandSize)
	var state game.State
	var buf [game.MaxMoves]game.Move

	m := game.PickMove(h, choose(x[0], game.HandSize))
	state.Apply(m)
	path = append(path, m)

	steps := choose(x[1], game.HandSize)
	for k := 0; k < steps; k++ {
		moves := gen.Generate(buf[:0], &state)
		if len(moves) == 0 {
			break
		}
		m := moves[choose(x[2+k], len(moves))]
		state.Apply(m)
		path = append(path, m)
	}
	return path
}

// scoreCost flattens a lexicographic score into one objective value
func scoreCost(s Score) float64 {
	return float64(s.Primary)*float64(game.HandSize+1) + float64(s.Used)
}

// warmStart runs the heuristic optimizer and returns the decoded chain
// as an incumbent for the exact search.
func warmStart(o opt.Optimizer, h *game.Hand, eval Evaluator) (game.Candidate, Score, error) {
	objective := func(x []float64) float64 {
		score, ok := eval.Evaluate(h, decodeGenome(h, x))
		if !ok {
			return rejectCost
		}
		return scoreCost(score)
	}

	res, err := o.Minimize(objective, opt.Bounds{Lower: 0, Upper: 1, Dim: genomeDim})
	if err != nil {
		return game.Candidate{}, Score{}, fmt.Errorf("warm start: %w", err)
	}
	if len(res.Position) != genomeDim {
		return game.Candidate{}, Score{}, fmt.Errorf("warm start: got %d genes, want %d", len(res.Position), genomeDim)
	}

	path := decodeGenome(h, res.Position)
	score, ok := eval.Evaluate(h, path)
	if !ok {
		return game.Candidate{}, Score{}, fmt.Errorf("warm start: no %s candidate found", eval.Name())
	}
	slog.Debug("Warm start incumbent", "mode", eval.Name(), "primary", score.Primary, "used", score.Used)
	return game.NewCandidate(path), score, nil
}
