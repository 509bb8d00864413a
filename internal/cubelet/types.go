// Package cubelet defines the enumerable carrier sets the cube's permutation
// groups act over (centres, edges, corners), the Move/MoveSequence value
// types, and the Singmaster-notation parser that produces them.
package cubelet

import "github.com/ehrlich-b/cube/internal/group"

// FaceType names the six face directions in the canonical order F R U B L D,
// matching the ordering used throughout the reference implementation.
type FaceType int

const (
	F FaceType = iota
	R
	U
	B
	L
	D
)

var faceNames = [6]string{"F", "R", "U", "B", "L", "D"}

func (f FaceType) String() string { return faceNames[f] }

// EdgeType names the twelve edge positions.
type EdgeType int

const (
	UF EdgeType = iota
	UR
	UB
	UL
	DF
	DR
	DB
	DL
	FR
	FL
	BR
	BL
)

var edgeNames = [12]string{"UF", "UR", "UB", "UL", "DF", "DR", "DB", "DL", "FR", "FL", "BR", "BL"}

func (e EdgeType) String() string { return edgeNames[e] }

// CornerType names the eight corner positions.
type CornerType int

const (
	FUL CornerType = iota
	FUR
	BUR
	BUL
	FDL
	FDR
	BDL
	BDR
)

var cornerNames = [8]string{"FUL", "FUR", "BUR", "BUL", "FDL", "FDR", "BDL", "BDR"}

func (c CornerType) String() string { return cornerNames[c] }

// CentreCubelet wraps a face direction; it is the carrier for the centre
// permutation group (S_6).
type CentreCubelet struct{ Face FaceType }

func (c CentreCubelet) Index() int { return int(c.Face) }
func (c CentreCubelet) String() string { return c.Face.String() }

// EdgeCubelet wraps an edge position; it is the carrier for the oriented
// edge permutation group (S_12 ≀ Z_2).
type EdgeCubelet struct{ Edge EdgeType }

func (c EdgeCubelet) Index() int { return int(c.Edge) }
func (c EdgeCubelet) String() string { return c.Edge.String() }

// CornerCubelet wraps a corner position; it is the carrier for the oriented
// corner permutation group (S_8 ≀ Z_3).
type CornerCubelet struct{ Corner CornerType }

func (c CornerCubelet) Index() int { return int(c.Corner) }
func (c CornerCubelet) String() string { return c.Corner.String() }

// Carrier singletons, supplying cardinality and enumeration for each type
// since Go has no const-generics to bake N into the type itself.

type centreCarrier struct{}

func (centreCarrier) Size() int                    { return 6 }
func (centreCarrier) FromIndex(i int) CentreCubelet { return CentreCubelet{FaceType(i)} }

type edgeCarrier struct{}

func (edgeCarrier) Size() int                  { return 12 }
func (edgeCarrier) FromIndex(i int) EdgeCubelet { return EdgeCubelet{EdgeType(i)} }

type cornerCarrier struct{}

func (cornerCarrier) Size() int                    { return 8 }
func (cornerCarrier) FromIndex(i int) CornerCubelet { return CornerCubelet{CornerType(i)} }

// CentreCarrier, EdgeCarrier, and CornerCarrier are the package-level
// carrier instances passed to group.Identity / group.OrientedIdentity etc.
var (
	CentreCarrier group.Carrier[CentreCubelet] = centreCarrier{}
	EdgeCarrier   group.Carrier[EdgeCubelet]   = edgeCarrier{}
	CornerCarrier group.Carrier[CornerCubelet] = cornerCarrier{}
)
