// Package render turns a permute.CubePermutation3 back into a sticker-level
// cube.Cube, the display model the CLI and web layers already know how to
// print. It is the inverse of the group-theoretic model: given where every
// centre/edge/corner piece ended up (and, for edges and corners, how it is
// twisted), it places that piece's home colors onto the 54 facelets they
// now occupy.
package render

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/group"
	"github.com/ehrlich-b/cube/internal/permute"
)

func edgeZero() group.Cyclic   { return group.NewCyclic(2, 0) }
func cornerZero() group.Cyclic { return group.NewCyclic(3, 0) }

// faceColor is the solved-state sticker color of a face, carried over
// unchanged from cube.NewCube's own face/color pairing (Front/White,
// Back/Yellow, Left/Red, Right/Orange, Up/Blue, Down/Green) so a solved
// CubePermutation3 renders identically to cube.NewCube(3).
var faceColor = [6]cube.Color{
	cubelet.F: cube.White,
	cubelet.R: cube.Orange,
	cubelet.U: cube.Blue,
	cubelet.B: cube.Yellow,
	cubelet.L: cube.Red,
	cubelet.D: cube.Green,
}

func toCubeFace(f cubelet.FaceType) cube.Face {
	switch f {
	case cubelet.F:
		return cube.Front
	case cubelet.R:
		return cube.Right
	case cubelet.U:
		return cube.Up
	case cubelet.B:
		return cube.Back
	case cubelet.L:
		return cube.Left
	default:
		return cube.Down
	}
}

func fromCubeFace(f cube.Face) cubelet.FaceType {
	switch f {
	case cube.Front:
		return cubelet.F
	case cube.Right:
		return cubelet.R
	case cube.Up:
		return cubelet.U
	case cube.Back:
		return cubelet.B
	case cube.Left:
		return cubelet.L
	default:
		return cubelet.D
	}
}

// facelet names one sticker: a face plus its row/col inside that face's
// 3x3 grid.
type facelet struct {
	Face     cubelet.FaceType
	Row, Col int
}

// edgeFacelets lists, for each edge position, the two facelets it occupies,
// grounded on the teacher's Get3x3EdgeMappings table (internal/cube/piece_mapping.go),
// relabelled onto cubelet.EdgeType's position names.
var edgeFacelets = [12][2]facelet{
	cubelet.UF: {{cubelet.U, 2, 1}, {cubelet.F, 0, 1}},
	cubelet.UR: {{cubelet.U, 1, 2}, {cubelet.R, 0, 1}},
	cubelet.UB: {{cubelet.U, 0, 1}, {cubelet.B, 0, 1}},
	cubelet.UL: {{cubelet.U, 1, 0}, {cubelet.L, 0, 1}},
	cubelet.DF: {{cubelet.D, 0, 1}, {cubelet.F, 2, 1}},
	cubelet.DR: {{cubelet.D, 1, 2}, {cubelet.R, 2, 1}},
	cubelet.DB: {{cubelet.D, 2, 1}, {cubelet.B, 2, 1}},
	cubelet.DL: {{cubelet.D, 1, 0}, {cubelet.L, 2, 1}},
	cubelet.FR: {{cubelet.F, 1, 2}, {cubelet.R, 1, 0}},
	cubelet.FL: {{cubelet.F, 1, 0}, {cubelet.L, 1, 2}},
	cubelet.BR: {{cubelet.B, 1, 0}, {cubelet.R, 1, 2}},
	cubelet.BL: {{cubelet.B, 1, 2}, {cubelet.L, 1, 0}},
}

// cornerFacelets lists, for each corner position, the three facelets it
// occupies in (F/B, U/D, L/R)-independent but internally consistent order,
// grounded on Get3x3CornerMappings with the same face relabelling.
var cornerFacelets = [8][3]facelet{
	cubelet.FUL: {{cubelet.U, 2, 0}, {cubelet.F, 0, 0}, {cubelet.L, 0, 2}},
	cubelet.FUR: {{cubelet.U, 2, 2}, {cubelet.F, 0, 2}, {cubelet.R, 0, 0}},
	cubelet.BUR: {{cubelet.U, 0, 2}, {cubelet.B, 0, 0}, {cubelet.R, 0, 2}},
	cubelet.BUL: {{cubelet.U, 0, 0}, {cubelet.B, 0, 2}, {cubelet.L, 0, 0}},
	cubelet.FDL: {{cubelet.D, 0, 0}, {cubelet.F, 2, 0}, {cubelet.L, 2, 2}},
	cubelet.FDR: {{cubelet.D, 0, 2}, {cubelet.F, 2, 2}, {cubelet.R, 2, 0}},
	cubelet.BDL: {{cubelet.D, 2, 0}, {cubelet.B, 2, 2}, {cubelet.L, 2, 0}},
	cubelet.BDR: {{cubelet.D, 2, 2}, {cubelet.B, 2, 0}, {cubelet.R, 2, 2}},
}

// edgeHomeColors and cornerHomeColors are each piece's sticker colors in
// the same slot order as edgeFacelets/cornerFacelets, i.e. the colors that
// piece shows when it sits at its own home position.
var edgeHomeColors [12][2]cube.Color
var cornerHomeColors [8][3]cube.Color

var faceByColor map[cube.Color]cubelet.FaceType

func init() {
	for e := 0; e < 12; e++ {
		f := edgeFacelets[e]
		edgeHomeColors[e] = [2]cube.Color{faceColor[f[0].Face], faceColor[f[1].Face]}
	}
	for c := 0; c < 8; c++ {
		f := cornerFacelets[c]
		cornerHomeColors[c] = [3]cube.Color{faceColor[f[0].Face], faceColor[f[1].Face], faceColor[f[2].Face]}
	}
	faceByColor = make(map[cube.Color]cubelet.FaceType, 6)
	for f := cubelet.FaceType(0); f < 6; f++ {
		faceByColor[faceColor[f]] = f
	}
}

// edgePieceForColors identifies which edge piece shows the unordered color
// pair (c1, c2), and the twist shift such that home[(0+shift)%2] == c1 and
// home[(1+shift)%2] == c2.
func edgePieceForColors(c1, c2 cube.Color) (piece, shift int, ok bool) {
	for e := 0; e < 12; e++ {
		h := edgeHomeColors[e]
		if h[0] == c1 && h[1] == c2 {
			return e, 0, true
		}
		if h[0] == c2 && h[1] == c1 {
			return e, 1, true
		}
	}
	return 0, 0, false
}

// cornerPieceForColors identifies which corner piece shows the unordered
// color triple (a0, a1, a2) in that facelet-slot order, and the twist shift
// such that home[(slot+shift)%3] == a[slot] for every slot.
func cornerPieceForColors(a0, a1, a2 cube.Color) (piece, shift int, ok bool) {
	for c := 0; c < 8; c++ {
		h := cornerHomeColors[c]
		for s := 0; s < 3; s++ {
			if h[(0+s)%3] == a0 && h[(1+s)%3] == a1 && h[(2+s)%3] == a2 {
				return c, s, true
			}
		}
	}
	return 0, 0, false
}

// Render builds the 54-sticker cube.Cube a permutation implies: every
// facelet's color is the home color of whichever piece the permutation
// carried there, rotated by that piece's twist.
func Render(p permute.CubePermutation3) *cube.Cube {
	c := cube.NewCube(3)

	for f := cubelet.FaceType(0); f < 6; f++ {
		dest := p.Centres().Act(cubelet.CentreCubelet{Face: f})
		c.Faces[toCubeFace(dest.Face)][1][1] = faceColor[f]
	}

	for e := 0; e < 12; e++ {
		dest, twist := p.Edges().Act(cubelet.EdgeCubelet{Edge: cubelet.EdgeType(e)}, edgeZero())
		facelets := edgeFacelets[dest.Edge]
		home := edgeHomeColors[e]
		shift := twist.V()
		for slot := 0; slot < 2; slot++ {
			c.Faces[toCubeFace(facelets[slot].Face)][facelets[slot].Row][facelets[slot].Col] = home[(slot+shift)%2]
		}
	}

	for cnr := 0; cnr < 8; cnr++ {
		dest, twist := p.Corners().Act(cubelet.CornerCubelet{Corner: cubelet.CornerType(cnr)}, cornerZero())
		facelets := cornerFacelets[dest.Corner]
		home := cornerHomeColors[cnr]
		shift := twist.V()
		for slot := 0; slot < 3; slot++ {
			c.Faces[toCubeFace(facelets[slot].Face)][facelets[slot].Row][facelets[slot].Col] = home[(slot+shift)%3]
		}
	}

	return c
}

// ToPermutation is Render's inverse: it reads the 54 facelets of a 3x3
// cube.Cube and reconstructs the CubePermutation3 that would render to it.
// It returns an error if any facelet trio/pair doesn't match a real piece's
// color set (a malformed or non-standard-colored cube).
func ToPermutation(c *cube.Cube) (permute.CubePermutation3, error) {
	if c.Size != 3 {
		return permute.CubePermutation3{}, fmt.Errorf("render: ToPermutation requires a 3x3 cube, got size %d", c.Size)
	}

	centreImages := make([]cubelet.CentreCubelet, 6)
	for pos := cube.Face(0); pos < 6; pos++ {
		col := c.Faces[pos][1][1]
		srcFace, ok := faceByColor[col]
		if !ok {
			return permute.CubePermutation3{}, fmt.Errorf("render: center facelet has unrecognised color %v", col)
		}
		centreImages[srcFace] = cubelet.CentreCubelet{Face: fromCubeFace(pos)}
	}
	centres := group.NewUnchecked[cubelet.CentreCubelet](cubelet.CentreCarrier, centreImages)

	edgePairs := make([]group.OrientedPair[cubelet.EdgeCubelet], 12)
	for d := 0; d < 12; d++ {
		f := edgeFacelets[d]
		c1 := c.Faces[toCubeFace(f[0].Face)][f[0].Row][f[0].Col]
		c2 := c.Faces[toCubeFace(f[1].Face)][f[1].Row][f[1].Col]
		piece, shift, ok := edgePieceForColors(c1, c2)
		if !ok {
			return permute.CubePermutation3{}, fmt.Errorf("render: no edge piece matches colors %v/%v at position %d", c1, c2, d)
		}
		edgePairs[piece] = group.OrientedPair[cubelet.EdgeCubelet]{
			Image: cubelet.EdgeCubelet{Edge: cubelet.EdgeType(d)},
			Twist: group.NewCyclic(2, shift),
		}
	}
	edges := group.NewOrientedUnchecked[cubelet.EdgeCubelet](cubelet.EdgeCarrier, 2, edgePairs)

	cornerPairs := make([]group.OrientedPair[cubelet.CornerCubelet], 8)
	for d := 0; d < 8; d++ {
		f := cornerFacelets[d]
		a0 := c.Faces[toCubeFace(f[0].Face)][f[0].Row][f[0].Col]
		a1 := c.Faces[toCubeFace(f[1].Face)][f[1].Row][f[1].Col]
		a2 := c.Faces[toCubeFace(f[2].Face)][f[2].Row][f[2].Col]
		piece, shift, ok := cornerPieceForColors(a0, a1, a2)
		if !ok {
			return permute.CubePermutation3{}, fmt.Errorf("render: no corner piece matches colors %v/%v/%v at position %d", a0, a1, a2, d)
		}
		cornerPairs[piece] = group.OrientedPair[cubelet.CornerCubelet]{
			Image: cubelet.CornerCubelet{Corner: cubelet.CornerType(d)},
			Twist: group.NewCyclic(3, shift),
		}
	}
	corners := group.NewOrientedUnchecked[cubelet.CornerCubelet](cubelet.CornerCarrier, 3, cornerPairs)

	return permute.FromComponents(centres, edges, corners), nil
}
