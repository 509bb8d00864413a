package cubelet

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMove parses a single extended-Singmaster token (e.g. "R", "Fw'", "2B2",
// "x2") into its canonical Move. Back-face-rooted tokens (B, L, D, and the
// slice letters M and E which follow them) have their rotation inverted and
// depth range flipped [start,end) -> [N-end,N-start) so that two tokens
// denoting the same permutation produce the same canonical Move.
func ParseMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, fmt.Errorf("cubelet: empty move token")
	}
	s := tok

	rotation := Quarter
	switch {
	case strings.HasSuffix(s, "2'") || strings.HasSuffix(s, "'2"):
		rotation = Half
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "'"):
		rotation = InverseQuarter
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "2"):
		rotation = Half
		s = s[:len(s)-1]
	}

	wide := false
	if strings.HasSuffix(s, "w") || strings.HasSuffix(s, "W") {
		wide = true
		s = s[:len(s)-1]
	}

	depthCount := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return Move{}, fmt.Errorf("cubelet: invalid depth prefix in token %q: %w", tok, err)
		}
		depthCount = n
		s = s[i:]
	}
	if s == "" {
		return Move{}, fmt.Errorf("cubelet: move token %q has no face letter", tok)
	}

	letter := s
	isLowerFace := len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' && letter != "x" && letter != "y" && letter != "z"
	if isLowerFace {
		wide = true
		letter = strings.ToUpper(letter)
	}

	var axis Axis
	backRooted := false
	fullCube := false
	isSlice := false
	invertSlice := false
	switch letter {
	case "F":
		axis = AxisFB
	case "B":
		axis = AxisFB
		backRooted = true
	case "R":
		axis = AxisRL
	case "L":
		axis = AxisRL
		backRooted = true
	case "U":
		axis = AxisUD
	case "D":
		axis = AxisUD
		backRooted = true
	case "S":
		axis = AxisFB
		isSlice = true
	case "M":
		// The depth-1 slab primitive baked into the permute package is M'
		// (R-sense, spec.md §4.2); a literal M token denotes the L-sense
		// turn (§6), so fold the rotation the same way a back-face letter
		// would.
		axis = AxisRL
		isSlice = true
		invertSlice = true
	case "E":
		// Same fold as M: the depth-1 primitive is E' (U-sense); a literal
		// E token is D-sense.
		axis = AxisUD
		isSlice = true
		invertSlice = true
	case "x":
		axis = AxisRL
		fullCube = true
	case "y":
		axis = AxisUD
		fullCube = true
	case "z":
		axis = AxisFB
		fullCube = true
	default:
		return Move{}, fmt.Errorf("cubelet: unrecognised move letter %q in token %q", letter, tok)
	}

	var start, end int
	switch {
	case fullCube:
		start, end = 0, 3
	case isSlice:
		start, end = 1, 2
	default:
		span := 1
		if wide {
			span = 2
		}
		if depthCount > 0 {
			span = depthCount
		}
		if span < 1 {
			span = 1
		}
		if span > 3 {
			span = 3
		}
		start, end = 0, span
	}

	if backRooted {
		start, end = 3-end, 3-start
		rotation = Rotation((4 - rotation.QuarterTurns()) % 4)
	}
	if invertSlice {
		rotation = Rotation((4 - rotation.QuarterTurns()) % 4)
	}

	if start < 0 || end > 3 || start >= end {
		return Move{}, fmt.Errorf("cubelet: move token %q has invalid depth range [%d,%d)", tok, start, end)
	}

	return Move{Axis: axis, Rotation: rotation, StartDepth: start, EndDepth: end}, nil
}

// ParseSequence parses a space-separated list of Singmaster tokens into a
// MoveSequence, in written (left-to-right) order.
func ParseSequence(text string) (MoveSequence, error) {
	fields := strings.Fields(text)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return MoveSequence{}, fmt.Errorf("cubelet: parsing sequence %q: %w", text, err)
		}
		moves = append(moves, m)
	}
	return MoveSequence{Moves: moves}, nil
}

// ParseScramble is an alias for ParseSequence, matching the naming of a
// scramble string as a sequence of moves applied from solved.
func ParseScramble(text string) (MoveSequence, error) {
	return ParseSequence(text)
}
