package roux

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

func TestFirstEdgeInsertsBadlyOrientedEdge(t *testing.T) {
	flipped := group.NewCyclic(2, 1)
	sig := edgeSig{Edge: cubelet.DF, Twist: flipped}

	seq, ok := firstEdgeStep.solve(sig)
	if !ok {
		t.Fatalf("no solution recorded for a flipped DF edge")
	}
	result := permute.FromMoveSequence(seq)
	got, twist := result.Edges().Act(cubelet.EdgeCubelet{Edge: cubelet.DF}, flipped)
	if got.Edge != cubelet.DL || twist.V() != 0 {
		t.Errorf("flipped DF edge landed at %v/%d, want DL/0", got.Edge, twist.V())
	}
}

func TestFirstEdgeAlreadySolvedYieldsEmpty(t *testing.T) {
	seq, ok := firstEdgeStep.solve(edgeSig{Edge: cubelet.DL, Twist: edgeIdentity()})
	if !ok {
		t.Fatalf("expected the identity edge signature to be solvable")
	}
	if !seq.IsEmpty() {
		t.Errorf("expected an empty sequence for an already-solved DL edge, got %v", seq)
	}
}

func TestRouxTwoBlocksFullPipeline(t *testing.T) {
	scramble := mustParse(t, "B R2 U2 F R' U' B2 F U R2 U2 L' D' R2 D L R' F' R F2 B2 U D' R L2")
	start := permute.FromMoveSequence(scramble)

	result, err := Solve(start)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	final := permute.FromMoveSequence(result.MoveSequence()).Compose(start)
	if !final.IsIdentity() {
		t.Errorf("Roux pipeline did not solve the scramble; final permutation is not identity")
	}
}

func TestBuildTablesCoversEveryStep(t *testing.T) {
	stats := BuildTables()
	if len(stats) != 9 {
		t.Fatalf("BuildTables: got %d steps, want 9", len(stats))
	}
	for _, s := range stats {
		if s.Name == "" {
			t.Errorf("step with empty name in table stats: %+v", s)
		}
		if s.Signatures <= 0 {
			t.Errorf("step %q: got %d signatures, want > 0", s.Name, s.Signatures)
		}
	}
}
