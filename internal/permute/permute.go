// Package permute implements CubePermutation3, the direct-product group
// (centre permutation x oriented edge permutation x oriented corner
// permutation) that represents any reachable (or face-turn-generated) state
// of a 3x3 cube, built on top of the generic group kit in internal/group.
package permute

import (
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/group"
)

// CentrePerm is an element of S_6 over the six centre directions.
type CentrePerm = group.SymGroup[cubelet.CentreCubelet]

// EdgePerm is an element of S_12 ≀ Z_2: a permutation of the 12 edges, each
// carrying a flip orientation.
type EdgePerm = group.OrientedSymGroup[cubelet.EdgeCubelet]

// CornerPerm is an element of S_8 ≀ Z_3: a permutation of the 8 corners,
// each carrying a twist orientation.
type CornerPerm = group.OrientedSymGroup[cubelet.CornerCubelet]

// CubePermutation3 is the componentwise direct product (CentrePerm,
// EdgePerm, CornerPerm). Identity, inverse, and composition all factor
// componentwise.
type CubePermutation3 struct {
	centres CentrePerm
	edges   EdgePerm
	corners CornerPerm
}

// FromComponents builds a CubePermutation3 directly from its three
// componentwise group elements, for callers (such as CFEN ingestion) that
// reconstruct a permutation from an external representation rather than
// from a move sequence.
func FromComponents(centres CentrePerm, edges EdgePerm, corners CornerPerm) CubePermutation3 {
	return CubePermutation3{centres: centres, edges: edges, corners: corners}
}

// Identity returns the identity element (solved cube).
func Identity() CubePermutation3 {
	return CubePermutation3{
		centres: group.Identity[cubelet.CentreCubelet](cubelet.CentreCarrier),
		edges:   group.OrientedIdentity[cubelet.EdgeCubelet](cubelet.EdgeCarrier, 2),
		corners: group.OrientedIdentity[cubelet.CornerCubelet](cubelet.CornerCarrier, 3),
	}
}

// Centres, Edges, and Corners expose read-only views of each component so
// signature functions can interrogate state without copying the whole
// permutation.
func (p CubePermutation3) Centres() CentrePerm { return p.centres }
func (p CubePermutation3) Edges() EdgePerm     { return p.edges }
func (p CubePermutation3) Corners() CornerPerm { return p.corners }

// Compose returns p · q, factoring componentwise.
func (p CubePermutation3) Compose(q CubePermutation3) CubePermutation3 {
	return CubePermutation3{
		centres: p.centres.Compose(q.centres),
		edges:   p.edges.Compose(q.edges),
		corners: p.corners.Compose(q.corners),
	}
}

// Inverse returns p^-1, factoring componentwise.
func (p CubePermutation3) Inverse() CubePermutation3 {
	return CubePermutation3{
		centres: p.centres.Inverse(),
		edges:   p.edges.Inverse(),
		corners: p.corners.Inverse(),
	}
}

// Equal reports whether p and q are the same permutation.
func (p CubePermutation3) Equal(q CubePermutation3) bool {
	return p.centres.Equal(q.centres) && p.edges.Equal(q.edges) && p.corners.Equal(q.corners)
}

// IsIdentity reports whether p is the solved state.
func (p CubePermutation3) IsIdentity() bool {
	return p.centres.IsIdentity() && p.edges.IsIdentity() && p.corners.IsIdentity()
}

// Order returns the smallest k>0 such that p^k is the identity.
func (p CubePermutation3) Order() int {
	order := 1
	cur := p
	for !cur.IsIdentity() {
		cur = cur.Compose(p)
		order++
	}
	return order
}

// Key returns a string uniquely identifying this permutation, suitable for
// use as a map key in BFS visited-sets (CubePermutation3 itself holds slices
// transitively and is not comparable).
func (p CubePermutation3) Key() string {
	return p.centres.Key() + "|" + p.edges.Key() + "|" + p.corners.Key()
}
