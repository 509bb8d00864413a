package cfen

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
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

func TestFromPermutationToPermutationRoundTrip(t *testing.T) {
	orientation := CFENOrientation{Up: cube.Yellow, Front: cube.Blue}
	scramble := mustParse(t, "R U2 L' D F R2 B'")
	want := permute.FromMoveSequence(scramble)

	str, err := FromPermutation(want, orientation)
	if err != nil {
		t.Fatalf("FromPermutation: %v", err)
	}

	got, err := ToPermutation(str)
	if err != nil {
		t.Fatalf("ToPermutation(%q): %v", str, err)
	}
	if !got.Equal(want) {
		t.Errorf("CFEN round trip did not preserve the permutation")
	}
}

func TestSolvedCubeCFEN(t *testing.T) {
	orientation := CFENOrientation{Up: cube.Yellow, Front: cube.Blue}
	str, err := FromPermutation(permute.Identity(), orientation)
	if err != nil {
		t.Fatalf("FromPermutation: %v", err)
	}
	if err := ValidateCFEN(str); err != nil {
		t.Errorf("ValidateCFEN(%q): %v", str, err)
	}
}
