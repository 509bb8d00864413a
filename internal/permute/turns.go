package permute

import (
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/group"
)

// This file builds the nine primitive quarter-turn tables (six face turns,
// three slice turns) from spec.md §4.2's prose description, plus the Move
// decomposition and MoveSequence folding that sit on top of them.

func cornerRow(c cubelet.CornerType) int {
	// 0 = U-row (FUL, FUR, BUR, BUL), 1 = D-row (FDL, FDR, BDL, BDR).
	switch c {
	case cubelet.FUL, cubelet.FUR, cubelet.BUR, cubelet.BUL:
		return 0
	default:
		return 1
	}
}

// buildEdgePerm constructs an EdgePerm that applies the given 4-cycle
// (cycle[i] -> cycle[i+1], wrapping) to the listed edges, leaving all
// others fixed, optionally flipping every moved edge's orientation.
func buildEdgePerm(cycle []cubelet.EdgeType, flip bool) EdgePerm {
	pairs := make([]group.OrientedPair[cubelet.EdgeCubelet], 12)
	for i := 0; i < 12; i++ {
		pairs[i] = group.OrientedPair[cubelet.EdgeCubelet]{
			Image: cubelet.EdgeCubelet{Edge: cubelet.EdgeType(i)},
			Twist: group.NewCyclic(2, 0),
		}
	}
	n := len(cycle)
	twist := 0
	if flip {
		twist = 1
	}
	for i, from := range cycle {
		to := cycle[(i+1)%n]
		pairs[from] = group.OrientedPair[cubelet.EdgeCubelet]{
			Image: cubelet.EdgeCubelet{Edge: to},
			Twist: group.NewCyclic(2, twist),
		}
	}
	return group.NewOrientedUnchecked[cubelet.EdgeCubelet](cubelet.EdgeCarrier, 2, pairs)
}

// buildCornerPerm constructs a CornerPerm applying the given 4-cycle to the
// listed corners. Twist per transition follows spec.md §4.2: a corner
// crossing from the U row into the D row twists +1; D row into U row
// twists +2; same-row transitions twist 0.
func buildCornerPerm(cycle []cubelet.CornerType) CornerPerm {
	pairs := make([]group.OrientedPair[cubelet.CornerCubelet], 8)
	for i := 0; i < 8; i++ {
		pairs[i] = group.OrientedPair[cubelet.CornerCubelet]{
			Image: cubelet.CornerCubelet{Corner: cubelet.CornerType(i)},
			Twist: group.NewCyclic(3, 0),
		}
	}
	n := len(cycle)
	for i, from := range cycle {
		to := cycle[(i+1)%n]
		twist := 0
		switch {
		case cornerRow(from) == 0 && cornerRow(to) == 1:
			twist = 1
		case cornerRow(from) == 1 && cornerRow(to) == 0:
			twist = 2
		}
		pairs[from] = group.OrientedPair[cubelet.CornerCubelet]{
			Image: cubelet.CornerCubelet{Corner: to},
			Twist: group.NewCyclic(3, twist),
		}
	}
	return group.NewOrientedUnchecked[cubelet.CornerCubelet](cubelet.CornerCarrier, 3, pairs)
}

// buildCentrePerm constructs a CentrePerm applying the given 4-cycle to the
// listed centres, leaving the rest fixed.
func buildCentrePerm(cycle []cubelet.FaceType) CentrePerm {
	images := make([]cubelet.CentreCubelet, 6)
	for i := 0; i < 6; i++ {
		images[i] = cubelet.CentreCubelet{Face: cubelet.FaceType(i)}
	}
	n := len(cycle)
	for i, from := range cycle {
		to := cycle[(i+1)%n]
		images[from] = cubelet.CentreCubelet{Face: to}
	}
	return group.NewUnchecked[cubelet.CentreCubelet](cubelet.CentreCarrier, images)
}

func faceTurn(edges []cubelet.EdgeType, flip bool, corners []cubelet.CornerType) CubePermutation3 {
	return CubePermutation3{
		centres: group.Identity[cubelet.CentreCubelet](cubelet.CentreCarrier),
		edges:   buildEdgePerm(edges, flip),
		corners: buildCornerPerm(corners),
	}
}

func sliceTurn(edges []cubelet.EdgeType, flip bool, centres []cubelet.FaceType) CubePermutation3 {
	return CubePermutation3{
		centres: buildCentrePerm(centres),
		edges:   buildEdgePerm(edges, flip),
		corners: group.OrientedIdentity[cubelet.CornerCubelet](cubelet.CornerCarrier, 3),
	}
}

// Primitive quarter turns (clockwise, viewed from outside the named face),
// derived directly from spec.md §4.2. Of the face turns, only F and B flip
// edges; the S and M slice turns flip the edges they move, E does not.
// Corner twists follow the U-row/D-row crossing rule encoded in
// buildCornerPerm.
var (
	turnU = faceTurn(
		[]cubelet.EdgeType{cubelet.UF, cubelet.UL, cubelet.UB, cubelet.UR}, false,
		[]cubelet.CornerType{cubelet.FUR, cubelet.FUL, cubelet.BUL, cubelet.BUR},
	)
	turnD = faceTurn(
		[]cubelet.EdgeType{cubelet.DF, cubelet.DR, cubelet.DB, cubelet.DL}, false,
		[]cubelet.CornerType{cubelet.FDL, cubelet.FDR, cubelet.BDR, cubelet.BDL},
	)
	turnF = faceTurn(
		[]cubelet.EdgeType{cubelet.UF, cubelet.FR, cubelet.DF, cubelet.FL}, true,
		[]cubelet.CornerType{cubelet.FUL, cubelet.FUR, cubelet.FDR, cubelet.FDL},
	)
	turnB = faceTurn(
		[]cubelet.EdgeType{cubelet.UB, cubelet.BL, cubelet.DB, cubelet.BR}, true,
		[]cubelet.CornerType{cubelet.BUR, cubelet.BUL, cubelet.BDL, cubelet.BDR},
	)
	turnR = faceTurn(
		[]cubelet.EdgeType{cubelet.UR, cubelet.BR, cubelet.DR, cubelet.FR}, false,
		[]cubelet.CornerType{cubelet.FUR, cubelet.BUR, cubelet.BDR, cubelet.FDR},
	)
	turnL = faceTurn(
		[]cubelet.EdgeType{cubelet.UL, cubelet.FL, cubelet.DL, cubelet.BL}, false,
		[]cubelet.CornerType{cubelet.BUL, cubelet.FUL, cubelet.FDL, cubelet.BDL},
	)

	// S follows F's sense: its edges trace F's corner cycle, its centres
	// trace F's edge cycle.
	turnS = sliceTurn(
		[]cubelet.EdgeType{cubelet.UL, cubelet.UR, cubelet.DR, cubelet.DL}, true,
		[]cubelet.FaceType{cubelet.U, cubelet.R, cubelet.D, cubelet.L},
	)
	// M (the notation token, §6) follows L's sense.
	turnM = sliceTurn(
		[]cubelet.EdgeType{cubelet.UB, cubelet.UF, cubelet.DF, cubelet.DB}, true,
		[]cubelet.FaceType{cubelet.U, cubelet.F, cubelet.D, cubelet.B},
	)
	// E (the notation token, §6) follows D's sense.
	turnE = sliceTurn(
		[]cubelet.EdgeType{cubelet.FL, cubelet.FR, cubelet.BR, cubelet.BL}, false,
		[]cubelet.FaceType{cubelet.F, cubelet.R, cubelet.B, cubelet.L},
	)

	// turnMPrime and turnEPrime are the depth-1 slab primitives spec.md §4.2
	// calls M' and E': R/U-sense, the inverse of the L/D-sense notation
	// turns above, so a wide move's front-face turn and slice turn agree in
	// direction (Rw = R * M', not R * M).
	turnMPrime = turnM.Inverse()
	turnEPrime = turnE.Inverse()
)

func frontPrimitive(axis cubelet.Axis) CubePermutation3 {
	switch axis {
	case cubelet.AxisFB:
		return turnF
	case cubelet.AxisRL:
		return turnR
	default:
		return turnU
	}
}

func slicePrimitive(axis cubelet.Axis) CubePermutation3 {
	switch axis {
	case cubelet.AxisFB:
		return turnS
	case cubelet.AxisRL:
		return turnMPrime
	default:
		return turnEPrime
	}
}

func backPrimitive(axis cubelet.Axis) CubePermutation3 {
	switch axis {
	case cubelet.AxisFB:
		return turnB
	case cubelet.AxisRL:
		return turnL
	default:
		return turnD
	}
}

// power returns p raised to the n-th power (n taken mod 4), by repeated
// composition.
func power(p CubePermutation3, n int) CubePermutation3 {
	n = ((n % 4) + 4) % 4
	if n == 0 {
		return Identity()
	}
	result := p
	for i := 1; i < n; i++ {
		result = result.Compose(p)
	}
	return result
}

// FromMove converts a single canonical Move into its CubePermutation3,
// decomposing it into up to three commuting primitive turns over its depth
// slab per spec.md §4.2: depth 0 is the axis's front-face turn, depth 1 its
// slice turn, depth 2 its back-face turn at the inverted rotation (a back
// face seen from the front turns oppositely).
func FromMove(m cubelet.Move) CubePermutation3 {
	result := Identity()
	for slab := m.StartDepth; slab < m.EndDepth; slab++ {
		var prim CubePermutation3
		qt := m.Rotation.QuarterTurns()
		switch slab {
		case 0:
			prim = frontPrimitive(m.Axis)
		case 1:
			prim = slicePrimitive(m.Axis)
		case 2:
			prim = backPrimitive(m.Axis)
			qt = (4 - qt) % 4
		}
		result = result.Compose(power(prim, qt))
	}
	return result
}

// FromMoveSequence converts a MoveSequence (stored in written order) into
// its CubePermutation3, folding by iterating moves in reverse and
// right-composing each onto the accumulator. For "R F" (moves = [R, F]),
// this yields P(F).Compose(P(R)), which acts R first, then F; by induction
// every sequence acts in written order, matching spec.md §3's composition
// convention.
func FromMoveSequence(seq cubelet.MoveSequence) CubePermutation3 {
	result := Identity()
	for i := len(seq.Moves) - 1; i >= 0; i-- {
		result = result.Compose(FromMove(seq.Moves[i]))
	}
	return result
}
