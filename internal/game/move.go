package game

import "fmt"

// Source names where an operand of a Move comes from
type Source int8

const (
	// None marks the missing left operand of a Pick
	None Source = -2
	// Running is the current value of the chain
	Running Source = -1
)

// Original returns the source referring to the hand number at index i
func Original(i int) Source { return Source(i) }

// IsOriginal reports whether s refers to a hand number
func (s Source) IsOriginal() bool { return s >= 0 }

// Index returns the hand index of an original source
func (s Source) Index() int { return int(s) }

func (s Source) String() string {
	switch s {
	case None:
		return "none"
	case Running:
		return "running"
	}
	return fmt.Sprintf("original(%d)", int(s))
}

// Move is one step of a chain. The operand values and the result are
// stored so a reporter can render the step without recomputing it.
type Move struct {
	Op         Operator
	Left       Source
	Right      Source
	LeftValue  int
	RightValue int
	Result     int
}

// PickMove selects hand number i as the initial running value
func PickMove(h *Hand, i int) Move {
	n := h.Number(i)
	return Move{Op: Pick, Left: None, Right: Original(i), RightValue: n, Result: n}
}

// IsPick reports whether the move only selects the initial number
func (m Move) IsPick() bool { return m.Op == Pick }

// Operand returns the original source consumed by the move
func (m Move) Operand() Source {
	if m.Left.IsOriginal() {
		return m.Left
	}
	return m.Right
}

// Number returns the concrete hand number consumed by the move
func (m Move) Number() int {
	if m.Left.IsOriginal() {
		return m.LeftValue
	}
	return m.RightValue
}

// RunningLeft reports whether the running value is the left operand
func (m Move) RunningLeft() bool { return m.Left == Running }

func (m Move) String() string {
	if m.IsPick() {
		return fmt.Sprintf("pick %d", m.Result)
	}
	return fmt.Sprintf("%d %s %d = %d", m.LeftValue, m.Op.Symbol(), m.RightValue, m.Result)
}
