package cubelet

import (
	"fmt"
	"sort"
	"strings"
)

// Axis identifies one of the three turning axes of a 3x3 cube.
type Axis int

const (
	AxisFB Axis = iota // front/back axis: F (depth0), S (depth1), B (depth2)
	AxisRL             // right/left axis: R (depth0), M (depth1), L (depth2)
	AxisUD             // up/down axis: U (depth0), E (depth1), D (depth2)
)

func (a Axis) String() string {
	switch a {
	case AxisFB:
		return "FB"
	case AxisRL:
		return "RL"
	case AxisUD:
		return "UD"
	default:
		return "?"
	}
}

// Rotation is the quarter-turn count of a move, in the clockwise direction
// viewed from the axis's depth-0 face.
type Rotation int

const (
	Quarter        Rotation = 1
	Half           Rotation = 2
	InverseQuarter Rotation = 3
)

// QuarterTurns returns the rotation expressed as a count in [0,4).
func (r Rotation) QuarterTurns() int { return int(r) % 4 }

// Move is a single Singmaster-style turn: an axis, a rotation amount, and an
// inclusive-exclusive depth range [StartDepth, EndDepth) of slabs it turns,
// with 0 <= StartDepth < EndDepth <= 3.
type Move struct {
	Axis       Axis
	Rotation   Rotation
	StartDepth int
	EndDepth   int
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{
		Axis:       m.Axis,
		Rotation:   Rotation((4 - m.Rotation.QuarterTurns()) % 4),
		StartDepth: m.StartDepth,
		EndDepth:   m.EndDepth,
	}
}

// combineRotation folds two rotations of the same slab into one, returning
// ok=false if the result is the identity (the moves cancel entirely).
func combineRotation(a, b Rotation) (Rotation, bool) {
	qt := (a.QuarterTurns() + b.QuarterTurns()) % 4
	if qt == 0 {
		return 0, false
	}
	return Rotation(qt), true
}

// sameSlab reports whether two moves act on the same axis and depth range.
func (m Move) sameSlab(o Move) bool {
	return m.Axis == o.Axis && m.StartDepth == o.StartDepth && m.EndDepth == o.EndDepth
}

// String renders m back to (a canonical) Singmaster notation for the
// slab it turns. Wide notations are not reconstructed here (a multi-slab
// Move prints as a depth-count prefix on the outer face it includes, e.g.
// "2R" for depths [0,2) and "2L" for [1,3), the latter with its rotation
// folded back); ParseMove's
// canonicalisation already folds those into this normal form, so printing
// and reparsing round-trips on effect, not on literal spelling. Single-slab
// moves invert the displayed rotation wherever ParseMove folded it on the
// way in (back-face letters B/L/D, and the M/E slice letters, which fold to
// the M'/E' primitives baked into the permute package), so the printed
// token denotes the same turn the solver actually applied.
func (m Move) String() string {
	base := frontLetter(m.Axis, m.StartDepth, m.EndDepth)
	rotation := m.Rotation
	if m.EndDepth-m.StartDepth == 1 && foldsOnDisplay(m.Axis, m.StartDepth) {
		rotation = Rotation((4 - rotation.QuarterTurns()) % 4)
	}
	if span := m.EndDepth - m.StartDepth; span > 1 && m.StartDepth > 0 {
		base = fmt.Sprintf("%d%s", span, frontLetter(m.Axis, 2, 3))
		rotation = Rotation((4 - rotation.QuarterTurns()) % 4)
	}
	switch rotation {
	case Quarter:
		return base
	case Half:
		return base + "2"
	case InverseQuarter:
		return base + "'"
	default:
		return base
	}
}

// foldsOnDisplay reports whether ParseMove folded a single-slab move's
// rotation at this axis/depth, so String must fold it back.
func foldsOnDisplay(axis Axis, depth int) bool {
	switch depth {
	case 1:
		return axis == AxisRL || axis == AxisUD // M, E
	case 2:
		return true // B, L, D
	default:
		return false
	}
}

func frontLetter(axis Axis, start, end int) string {
	var letters [3]string
	switch axis {
	case AxisFB:
		letters = [3]string{"F", "S", "B"}
	case AxisRL:
		letters = [3]string{"R", "M", "L"}
	case AxisUD:
		letters = [3]string{"U", "E", "D"}
	}
	if end-start == 1 {
		return letters[start]
	}
	// Wide/multi-slab move spanning [start,end): name it by its starting
	// face with a depth-count suffix, e.g. "2F" for a 2-layer wide F turn.
	return fmt.Sprintf("%d%s", end-start, letters[start])
}

// MoveSequence is an ordered list of Moves, stored in written (left-to-right)
// order. See the package doc on CubePermutation3 for the composition
// convention folding this into a group element.
type MoveSequence struct {
	Moves []Move
}

// Empty returns the empty move sequence.
func Empty() MoveSequence { return MoveSequence{} }

// Len returns the number of moves.
func (s MoveSequence) Len() int { return len(s.Moves) }

// IsEmpty reports whether the sequence has no moves.
func (s MoveSequence) IsEmpty() bool { return len(s.Moves) == 0 }

// Append returns a new sequence with other's moves appended after s's, i.e.
// written order s ++ other.
func (s MoveSequence) Append(other MoveSequence) MoveSequence {
	out := make([]Move, 0, len(s.Moves)+len(other.Moves))
	out = append(out, s.Moves...)
	out = append(out, other.Moves...)
	return MoveSequence{Moves: out}
}

// Inverse returns the sequence that undoes s: moves reversed and each
// individually inverted.
func (s MoveSequence) Inverse() MoveSequence {
	out := make([]Move, len(s.Moves))
	for i, m := range s.Moves {
		out[len(s.Moves)-1-i] = m.Inverse()
	}
	return MoveSequence{Moves: out}
}

// Equal reports whether two sequences contain the same moves in the same
// order.
func (s MoveSequence) Equal(o MoveSequence) bool {
	if len(s.Moves) != len(o.Moves) {
		return false
	}
	for i := range s.Moves {
		if s.Moves[i] != o.Moves[i] {
			return false
		}
	}
	return true
}

// String renders the sequence as space-separated Singmaster tokens.
func (s MoveSequence) String() string {
	parts := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Canonicalise folds adjacent moves on the same axis and depth range
// together (X X -> X2, X X' -> nothing, X2 X -> X', etc.), producing a
// unique, idempotent normal form under move-cancellation equivalence. This
// is the "chosen total ordering and normal form" spec.md §9 leaves open;
// callers depend only on idempotence and cost-invariance, not on the exact
// shape of the result.
func (s MoveSequence) Canonicalise() MoveSequence {
	var out []Move
	for _, m := range s.Moves {
		if len(out) > 0 && out[len(out)-1].sameSlab(m) {
			last := out[len(out)-1]
			if rot, ok := combineRotation(last.Rotation, m.Rotation); ok {
				out[len(out)-1] = Move{Axis: last.Axis, Rotation: rot, StartDepth: last.StartDepth, EndDepth: last.EndDepth}
			} else {
				out = out[:len(out)-1]
			}
			continue
		}
		out = append(out, m)
	}
	return MoveSequence{Moves: out}
}

// Less provides a total order over move sequences, used to sort and dedup
// normalised generator sets.
func (s MoveSequence) Less(o MoveSequence) bool {
	if len(s.Moves) != len(o.Moves) {
		return len(s.Moves) < len(o.Moves)
	}
	for i := range s.Moves {
		a, b := s.Moves[i], o.Moves[i]
		if a.Axis != b.Axis {
			return a.Axis < b.Axis
		}
		if a.StartDepth != b.StartDepth {
			return a.StartDepth < b.StartDepth
		}
		if a.EndDepth != b.EndDepth {
			return a.EndDepth < b.EndDepth
		}
		if a.Rotation != b.Rotation {
			return a.Rotation < b.Rotation
		}
	}
	return false
}

// SortSequences sorts a slice of MoveSequence in-place using Less.
func SortSequences(seqs []MoveSequence) {
	sort.Slice(seqs, func(i, j int) bool { return seqs[i].Less(seqs[j]) })
}

// DedupSequences removes consecutive duplicates from a sorted slice.
func DedupSequences(seqs []MoveSequence) []MoveSequence {
	out := seqs[:0]
	for i, s := range seqs {
		if i == 0 || !out[len(out)-1].Equal(s) {
			out = append(out, s)
		}
	}
	return out
}
