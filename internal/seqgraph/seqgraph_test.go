package seqgraph

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/group"
	"github.com/ehrlich-b/cube/internal/permute"
)

func mustParse(t *testing.T, s string) cubelet.MoveSequence {
	t.Helper()
	seq, err := cubelet.ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", s, err)
	}
	return seq
}

// cornerTwistSignature signatures a permutation by the twist each corner
// position carries, a small quotient reachable from identity by R and U
// quarter turns.
func cornerTwistSignature(p permute.CubePermutation3) [8]int {
	var out [8]int
	corners := p.Corners()
	for i := 0; i < 8; i++ {
		_, twist := corners.Act(cubelet.CornerCubelet{Corner: cubelet.CornerType(i)}, group.NewCyclic(3, 0))
		out[i] = twist.V()
	}
	return out
}

func TestBuildReachesIdentityNode(t *testing.T) {
	gens := []cubelet.MoveSequence{mustParse(t, "R"), mustParse(t, "U")}
	g := Build("r-u-corner-twist", gens, cornerTwistSignature)

	id := permute.Identity()
	s0 := cornerTwistSignature(id)
	if !g.HasSignature(s0) {
		t.Fatalf("identity signature not present in graph")
	}
}

func TestBuildDiscoversNonTrivialSignature(t *testing.T) {
	gens := []cubelet.MoveSequence{mustParse(t, "R"), mustParse(t, "U")}
	g := Build("r-u-corner-twist", gens, cornerTwistSignature)

	r := permute.FromMoveSequence(mustParse(t, "R"))
	sR := cornerTwistSignature(r)
	if !g.HasSignature(sR) {
		t.Fatalf("signature reached by a single R was not discovered")
	}
}

func TestSolveRoundTrip(t *testing.T) {
	gens := []cubelet.MoveSequence{mustParse(t, "R"), mustParse(t, "U")}
	g := Build("r-u-corner-twist", gens, cornerTwistSignature)

	target := cornerTwistSignature(permute.Identity())
	sv := Solve(g, target, MoveCount)

	r := permute.FromMoveSequence(mustParse(t, "R"))
	sR := cornerTwistSignature(r)
	seq, ok := sv.Lookup(sR)
	if !ok {
		t.Fatalf("no solution recorded for R's signature")
	}
	result := permute.FromMoveSequence(seq).Compose(r)
	if cornerTwistSignature(result) != target {
		t.Errorf("solved sequence %v did not restore the target signature", seq)
	}
}

func TestSolveUnknownTargetIsEmpty(t *testing.T) {
	gens := []cubelet.MoveSequence{mustParse(t, "R")}
	g := Build("r-only", gens, cornerTwistSignature)
	sv := Solve(g, [8]int{9, 9, 9, 9, 9, 9, 9, 9}, MoveCount)
	if _, ok := sv.Lookup(cornerTwistSignature(permute.Identity())); ok {
		t.Errorf("solver built against an absent target should yield no entries")
	}
}
