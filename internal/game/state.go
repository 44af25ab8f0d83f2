package game

// State is a search node. Used holds one bit per hand index; Consumed
// always equals the number of set bits.
type State struct {
	Value    int
	Used     uint8
	Consumed int
}

// IsUsed reports whether hand index i is already consumed
func (s *State) IsUsed(i int) bool { return s.Used&(1<<uint(i)) != 0 }

// Full reports whether every hand number is consumed
func (s *State) Full() bool { return s.Consumed == HandSize }

// Apply performs m in place and returns the previous running value,
// which Undo needs to restore the node.
func (s *State) Apply(m Move) int {
	prev := s.Value
	s.Value = m.Result
	s.Used |= 1 << uint(m.Operand().Index())
	s.Consumed++
	return prev
}

// Undo reverts a move previously performed with Apply
func (s *State) Undo(m Move, prev int) {
	s.Value = prev
	s.Used &^= 1 << uint(m.Operand().Index())
	s.Consumed--
}
