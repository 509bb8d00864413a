package roux

import (
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/group"
	"github.com/ehrlich-b/cube/internal/permute"
)

// edgeSig identifies an edge position and the flip twist carried there.
type edgeSig struct {
	Edge  cubelet.EdgeType
	Twist group.Cyclic
}

// cornerSig identifies a corner position and the twist carried there.
type cornerSig struct {
	Corner cubelet.CornerType
	Twist  group.Cyclic
}

func edgeIdentity() group.Cyclic  { return group.NewCyclic(2, 0) }
func cornerIdentity() group.Cyclic { return group.NewCyclic(3, 0) }

func edgeAt(p permute.CubePermutation3, e cubelet.EdgeType) edgeSig {
	img, twist := p.Edges().Act(cubelet.EdgeCubelet{Edge: e}, edgeIdentity())
	return edgeSig{Edge: img.Edge, Twist: twist}
}

func edgeOrientationAt(p permute.CubePermutation3, e cubelet.EdgeType) group.Cyclic {
	_, twist := p.Edges().Unact(cubelet.EdgeCubelet{Edge: e}, edgeIdentity())
	return twist
}

func cornerAt(p permute.CubePermutation3, c cubelet.CornerType) cornerSig {
	img, twist := p.Corners().Act(cubelet.CornerCubelet{Corner: c}, cornerIdentity())
	return cornerSig{Corner: img.Corner, Twist: twist}
}

func centreAt(p permute.CubePermutation3, f cubelet.FaceType) cubelet.CentreCubelet {
	return p.Centres().Act(cubelet.CentreCubelet{Face: f})
}

// firstEdgeSig tracks where the DL edge (and its orientation) ended up.
func firstEdgeSig(p permute.CubePermutation3) edgeSig {
	return edgeAt(p, cubelet.DL)
}

// secondEdgeSig tracks the DR edge.
func secondEdgeSig(p permute.CubePermutation3) edgeSig {
	return edgeAt(p, cubelet.DR)
}

// pairSig is the combined (edge, corner) signature the four block-pair
// steps track.
type pairSig struct {
	Edge   edgeSig
	Corner cornerSig
}

func firstPairSig(p permute.CubePermutation3) pairSig {
	return pairSig{Edge: edgeAt(p, cubelet.FL), Corner: cornerAt(p, cubelet.FDL)}
}

func secondPairSig(p permute.CubePermutation3) pairSig {
	return pairSig{Edge: edgeAt(p, cubelet.BL), Corner: cornerAt(p, cubelet.BDL)}
}

func thirdPairSig(p permute.CubePermutation3) pairSig {
	return pairSig{Edge: edgeAt(p, cubelet.FR), Corner: cornerAt(p, cubelet.FDR)}
}

func fourthPairSig(p permute.CubePermutation3) pairSig {
	return pairSig{Edge: edgeAt(p, cubelet.BR), Corner: cornerAt(p, cubelet.BDR)}
}

// cmllSig is the four U-layer corners' (position, twist) state.
type cmllSig [4]cornerSig

func cmllAufSig(p permute.CubePermutation3) cmllSig {
	return cmllSig{
		cornerAt(p, cubelet.FUL),
		cornerAt(p, cubelet.FUR),
		cornerAt(p, cubelet.BUR),
		cornerAt(p, cubelet.BUL),
	}
}

// eolrSig is EOLR's tracked state: the orientation of the four M-slice
// edges (UF, UB, DB, DF), the positions of UL/UR (used to decide which M moves restore
// them), the FUL corner's position (used purely for AUF alignment), and
// whether the F centre currently faces the F/B axis.
type eolrSig struct {
	EO      [4]group.Cyclic
	ULUR    [2]edgeSig
	FUL     cubelet.CornerType
	FrontFB bool
}

func eolrSigOf(p permute.CubePermutation3) eolrSig {
	return eolrSig{
		EO: [4]group.Cyclic{
			edgeOrientationAt(p, cubelet.UF),
			edgeOrientationAt(p, cubelet.UB),
			edgeOrientationAt(p, cubelet.DB),
			edgeOrientationAt(p, cubelet.DF),
		},
		ULUR: [2]edgeSig{
			edgeAt(p, cubelet.UL),
			edgeAt(p, cubelet.UR),
		},
		FUL:     cornerAt(p, cubelet.FUL).Corner,
		FrontFB: isFrontBack(centreAt(p, cubelet.F).Face),
	}
}

func isFrontBack(f cubelet.FaceType) bool {
	return f == cubelet.F || f == cubelet.B
}

// l4eSig is the last-four-edges step's tracked state: where the four
// M-slice edges ended up, and the front centre (to detect a whole-cube
// rotation relative to F).
type l4eSig struct {
	Edges  [4]cubelet.EdgeType
	Centre cubelet.CentreCubelet
}

func l4eSigOf(p permute.CubePermutation3) l4eSig {
	return l4eSig{
		Edges: [4]cubelet.EdgeType{
			edgeAt(p, cubelet.UF).Edge,
			edgeAt(p, cubelet.UB).Edge,
			edgeAt(p, cubelet.DB).Edge,
			edgeAt(p, cubelet.DF).Edge,
		},
		Centre: centreAt(p, cubelet.F),
	}
}
