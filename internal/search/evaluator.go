package search

import (
	"math"

	"github.com/cwbudde/countdown/internal/game"
)

// Attack range of the adversary in the resilient variant, inclusive
const (
	AttackMin = 1
	AttackMax = 10
)

// Score orders candidates lexicographically: lower Primary wins, then
// lower Used. Primary is the distance to the goal, or the worst distance
// after an attack in the resilient variant.
type Score struct {
	Primary int `json:"primary"`
	Used    int `json:"used"`
}

// Less reports whether s is strictly better than o
func (s Score) Less(o Score) bool {
	if s.Primary != o.Primary {
		return s.Primary < o.Primary
	}
	return s.Used < o.Used
}

// Evaluator scores a chain of moves. It reports false for chains that do
// not qualify as candidates under its objective.
//
// Implementations must be stateless: the engine calls Evaluate from
// several goroutines when the search is partitioned.
type Evaluator interface {
	Name() string
	Evaluate(h *game.Hand, path []game.Move) (Score, bool)
}

// PlainEvaluator minimizes the distance to the goal
type PlainEvaluator struct{}

func (PlainEvaluator) Name() string { return "plain" }

// Evaluate scores every non-empty chain by |value - goal| and its length
func (PlainEvaluator) Evaluate(h *game.Hand, path []game.Move) (Score, bool) {
	if len(path) == 0 {
		return Score{}, false
	}
	return Score{Primary: h.Distance(path[len(path)-1].Result), Used: len(path)}, true
}

// ResilientEvaluator minimizes the worst distance an adversary can force
// by replacing the hand number of the final move with a value in
// [AttackMin, AttackMax].
type ResilientEvaluator struct{}

func (ResilientEvaluator) Name() string { return "resilient" }

// Evaluate only accepts chains whose final move is an arithmetic move;
// a lone initial pick has no operand to attack.
func (r ResilientEvaluator) Evaluate(h *game.Hand, path []game.Move) (Score, bool) {
	if len(path) < 2 {
		return Score{}, false
	}
	_, worst := r.WorstAttack(h, path[len(path)-1])
	return Score{Primary: worst, Used: len(path)}, true
}

// WorstAttack returns the replacement value that maximizes the distance
// of m's result from the goal, and that distance. The replacement takes
// the place of the hand number, keeping its side of the operator.
func (ResilientEvaluator) WorstAttack(h *game.Hand, m game.Move) (attack, distance int) {
	attack, distance = AttackMin, -1
	for a := AttackMin; a <= AttackMax; a++ {
		d := math.MaxInt
		if v, ok := Attacked(m, a); ok {
			d = h.Distance(v)
		}
		if d > distance {
			attack, distance = a, d
		}
	}
	return attack, distance
}

// Attacked recomputes m with its hand number replaced by a.
func Attacked(m game.Move, a int) (int, bool) {
	if m.RunningLeft() {
		return m.Op.Eval(m.LeftValue, a)
	}
	return m.Op.Eval(a, m.RightValue)
}
