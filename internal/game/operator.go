package game

import (
	"fmt"
	"math"
)

// Operator is an arithmetic operation applied by a Move
type Operator uint8

const (
	// Pick selects the initial number of a chain; it combines nothing
	Pick Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Operators lists the arithmetic operators in generation order
var Operators = [...]Operator{Add, Subtract, Multiply, Divide}

// Symbol returns the printable symbol of the operator
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Pick:
		return "pick"
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

func (op Operator) String() string { return op.Symbol() }

// Commutative reports whether both operand orders give the same result
func (op Operator) Commutative() bool { return op == Add || op == Multiply }

// Apply computes left op right. It reports false when the result is not a
// legal intermediate value: division by zero, a negative difference, or an
// overflow of the int range.
func (op Operator) Apply(left, right int) (int, bool) {
	switch op {
	case Add:
		if right > 0 && left > math.MaxInt-right {
			return 0, false
		}
		return left + right, true
	case Subtract:
		if left < right {
			return 0, false
		}
		return left - right, true
	case Multiply:
		return mulChecked(left, right)
	case Divide:
		if right == 0 {
			return 0, false
		}
		// operands are non-negative, so truncation is floor division
		return left / right, true
	}
	return 0, false
}

// Eval computes left op right without the non-negativity rule. It is used to
// score results the player does not control, e.g. after an attack.
func (op Operator) Eval(left, right int) (int, bool) {
	switch op {
	case Subtract:
		return left - right, true
	case Divide:
		if right == 0 {
			return 0, false
		}
		return floorDiv(left, right), true
	}
	return op.Apply(left, right)
}

func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	return p, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
