package game

// MaxMoves bounds the number of moves generated from a single state:
// every operator with every index, both orders for - and /.
const MaxMoves = HandSize * (len(Operators) + 2)

// MoveGenerator enumerates the legal moves from a State. It never
// mutates the state it inspects.
type MoveGenerator struct {
	hand *Hand
}

// NewMoveGenerator returns a generator for moves over h
func NewMoveGenerator(h *Hand) MoveGenerator {
	return MoveGenerator{hand: h}
}

// Generate appends every legal move from s to dst and returns the
// extended slice. Before a chain starts the only moves are picks; after
// that every move combines the running value with one unused number.
func (g MoveGenerator) Generate(dst []Move, s *State) []Move {
	if s.Consumed == 0 {
		for i := 0; i < HandSize; i++ {
			dst = append(dst, PickMove(g.hand, i))
		}
		return dst
	}
	if s.Full() {
		return dst
	}

	for _, op := range Operators {
		for i := 0; i < HandSize; i++ {
			if s.IsUsed(i) {
				continue
			}
			n := g.hand.Number(i)
			if r, ok := op.Apply(s.Value, n); ok {
				dst = append(dst, Move{Op: op, Left: Running, Right: Original(i), LeftValue: s.Value, RightValue: n, Result: r})
			}
			if op.Commutative() {
				continue
			}
			if r, ok := op.Apply(n, s.Value); ok {
				dst = append(dst, Move{Op: op, Left: Original(i), Right: Running, LeftValue: n, RightValue: s.Value, Result: r})
			}
		}
	}
	return dst
}
