package render

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

func TestRenderSolvedMatchesNewCube(t *testing.T) {
	got := Render(permute.Identity())
	want := cube.NewCube(3)
	for f := 0; f < 6; f++ {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if got.Faces[f][r][c] != want.Faces[f][r][c] {
					t.Fatalf("face %d [%d][%d] = %v, want %v", f, r, c, got.Faces[f][r][c], want.Faces[f][r][c])
				}
			}
		}
	}
}

func TestRenderQuarterTurnChangesFace(t *testing.T) {
	p := permute.FromMoveSequence(mustParse(t, "R"))
	got := Render(p)
	solved := Render(permute.Identity())
	if sameCube(got, solved) {
		t.Fatalf("R turn should change the rendered cube")
	}
}

func sameCube(a, b *cube.Cube) bool {
	for f := 0; f < 6; f++ {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if a.Faces[f][r][c] != b.Faces[f][r][c] {
					return false
				}
			}
		}
	}
	return true
}

func TestRenderToPermutationRoundTrip(t *testing.T) {
	scramble := mustParse(t, "R U R' U' F2 L D2 B R2")
	want := permute.FromMoveSequence(scramble)

	rendered := Render(want)
	got, err := ToPermutation(rendered)
	if err != nil {
		t.Fatalf("ToPermutation: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("ToPermutation(Render(p)) != p")
	}
}

func TestRenderFourQuarterTurnsRestoresSolved(t *testing.T) {
	p := permute.FromMoveSequence(mustParse(t, "R R R R"))
	got := Render(p)
	want := Render(permute.Identity())
	for f := 0; f < 6; f++ {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if got.Faces[f][r][c] != want.Faces[f][r][c] {
					t.Fatalf("R R R R should restore the solved rendering")
				}
			}
		}
	}
}
