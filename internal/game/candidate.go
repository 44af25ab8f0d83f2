package game

// Candidate is a terminated chain: the moves taken from the initial pick
// to the final value.
type Candidate struct {
	// Moves starts with the Pick of the initial number
	Moves []Move
	Value int
	Used  int
}

// NewCandidate copies path into a new Candidate
func NewCandidate(path []Move) Candidate {
	moves := make([]Move, len(path))
	copy(moves, path)
	c := Candidate{Moves: moves, Used: len(moves)}
	if len(moves) > 0 {
		c.Value = moves[len(moves)-1].Result
	}
	return c
}

// Initial returns the initially picked number
func (c *Candidate) Initial() int {
	if len(c.Moves) == 0 {
		return 0
	}
	return c.Moves[0].Result
}

// Steps returns the arithmetic moves after the initial pick
func (c *Candidate) Steps() []Move {
	if len(c.Moves) == 0 {
		return nil
	}
	return c.Moves[1:]
}

// Last returns the final arithmetic move. It reports false for a
// candidate that consists of the initial pick only.
func (c *Candidate) Last() (Move, bool) {
	if len(c.Moves) < 2 {
		return Move{}, false
	}
	return c.Moves[len(c.Moves)-1], true
}

// Empty reports whether the candidate holds no moves at all
func (c *Candidate) Empty() bool { return len(c.Moves) == 0 }
