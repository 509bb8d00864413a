package algsolver

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cubelet"
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

func moveCount(s cubelet.MoveSequence) int { return s.Len() }

func cornerSig(p permute.CubePermutation3) bool { return p.Corners().IsIdentity() }

func TestSolvesIdentityWithEmptySequence(t *testing.T) {
	algs := []cubelet.MoveSequence{mustParse(t, "R U R' U'"), cubelet.Empty()}
	pre := []cubelet.MoveSequence{mustParse(t, "U")}
	post := []cubelet.MoveSequence{mustParse(t, "U")}

	sv := New(algs, pre, post, cornerSig, moveCount)
	seq, ok := sv.Solve(true)
	if !ok {
		t.Fatalf("no entry recorded for the already-solved corner signature")
	}
	// Applying the recorded sequence to the identity corner state must stay
	// an identity corner state (the consumer contract spec.md §4.5 names).
	result := permute.FromMoveSequence(seq)
	if !result.Corners().IsIdentity() {
		t.Errorf("sequence %v for the solved signature disturbs corners", seq)
	}
}

func TestCollisionKeepsLowestCost(t *testing.T) {
	// alg = R', post = {R}, pre = {} (so pre/post closures are {Empty} and
	// {R',R2,R,Empty} respectively). Three of the four post choices land on a
	// disturbed-corners signature with costs 1, 2, and 2; the solver must
	// keep the cost-1 entry.
	algs := []cubelet.MoveSequence{mustParse(t, "R'")}
	post := []cubelet.MoveSequence{mustParse(t, "R")}
	var pre []cubelet.MoveSequence

	sv := New(algs, pre, post, cornerSig, moveCount)

	disturbed, ok := sv.Solve(false)
	if !ok {
		t.Fatalf("expected an entry for the disturbed-corners signature")
	}
	if moveCount(disturbed) != 1 {
		t.Errorf("expected the cost-1 candidate to win, got %v (cost %d)", disturbed, moveCount(disturbed))
	}

	solved, ok := sv.Solve(true)
	if !ok {
		t.Fatalf("expected an entry for the solved-corners signature")
	}
	result := permute.FromMoveSequence(solved)
	if !result.Corners().IsIdentity() {
		t.Errorf("applying %v to identity should keep corners solved", solved)
	}
}
