package permute

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cubelet"
)

func mustParse(t *testing.T, s string) cubelet.MoveSequence {
	t.Helper()
	seq, err := cubelet.ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", s, err)
	}
	return seq
}

func TestGroupLaws(t *testing.T) {
	scrambles := []string{"R U R' U'", "F2 B2 L2 D2", "M2 E2 S2"}
	for _, sc := range scrambles {
		p := FromMoveSequence(mustParse(t, sc))
		id := Identity()
		if !p.Compose(id).Equal(p) {
			t.Errorf("%s: P*id != P", sc)
		}
		if !id.Compose(p).Equal(p) {
			t.Errorf("%s: id*P != P", sc)
		}
		inv := p.Inverse()
		if !p.Compose(inv).Equal(id) {
			t.Errorf("%s: P*P^-1 != id", sc)
		}
		if !inv.Compose(p).Equal(id) {
			t.Errorf("%s: P^-1*P != id", sc)
		}
	}

	a := FromMoveSequence(mustParse(t, "R"))
	b := FromMoveSequence(mustParse(t, "U"))
	g := FromMoveSequence(mustParse(t, "F"))
	left := a.Compose(b).Compose(g)
	right := a.Compose(b.Compose(g))
	if !left.Equal(right) {
		t.Errorf("composition is not associative")
	}
}

func TestQuarterTurnOrderFour(t *testing.T) {
	for _, tok := range []string{"R", "U", "F", "B", "L", "D", "M", "E", "S"} {
		p := FromMoveSequence(mustParse(t, tok))
		if got := p.Order(); got != 4 {
			t.Errorf("%s: order = %d, want 4", tok, got)
		}
	}
}

func TestCompositionConventionEdgesOrderSeven(t *testing.T) {
	// "R F" (R applied first, then F; the group product F·R, a conjugate of
	// the R·F in spec.md's convention test case, so of the same order) must
	// act on edges with order 7.
	p := FromMoveSequence(mustParse(t, "R F"))
	if got := p.Edges().Order(); got != 7 {
		t.Errorf("R F edges order = %d, want 7", got)
	}
}

func TestSuperflipOrderTwo(t *testing.T) {
	p := FromMoveSequence(mustParse(t, "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"))
	if !p.Compose(p).IsIdentity() {
		t.Errorf("superflip squared is not identity")
	}
	if got := p.Order(); got != 2 {
		t.Errorf("superflip order = %d, want 2", got)
	}
}

func TestUPermOrderThree(t *testing.T) {
	p := FromMoveSequence(mustParse(t, "R' U R' U' R' U' R' U R U R2"))
	if got := p.Edges().Order(); got != 3 {
		t.Errorf("U-perm edges order = %d, want 3", got)
	}
	if !p.Corners().IsIdentity() {
		t.Errorf("U-perm should leave corners untouched")
	}
}

func TestAPermOrderThree(t *testing.T) {
	p := FromMoveSequence(mustParse(t, "L2 D2 L' U' L D2 L' U L'"))
	if got := p.Corners().Order(); got != 3 {
		t.Errorf("A-perm corners order = %d, want 3", got)
	}
}

func TestHPermOrderTwo(t *testing.T) {
	p := FromMoveSequence(mustParse(t, "M2 U M2 U2 M2 U M2"))
	if got := p.Order(); got != 2 {
		t.Errorf("H-perm order = %d, want 2", got)
	}
}

// TestWideMoveMatchesFaceTimesSlice pins spec.md §6's wide-move
// decomposition against the textbook identity for each axis. M follows L's
// sense and E follows D's sense (§6), so a wide turn rooted on the *other*
// face of the axis (R, U) needs the slice turn's inverse to agree in
// direction, while one rooted on the following face (L, D) needs the slice
// turn unchanged; S already follows F's sense, so F needs it plain and B
// needs it inverted.
func TestWideMoveMatchesFaceTimesSlice(t *testing.T) {
	cases := []struct {
		wide, face, slice string
		primed            bool
	}{
		{"r", "R", "M", true},
		{"Rw", "R", "M", true},
		{"l", "L", "M", false},
		{"Lw", "L", "M", false},
		{"u", "U", "E", true},
		{"Uw", "U", "E", true},
		{"d", "D", "E", false},
		{"Dw", "D", "E", false},
		{"f", "F", "S", false},
		{"Fw", "F", "S", false},
		{"b", "B", "S", true},
		{"Bw", "B", "S", true},
	}
	for _, c := range cases {
		wide := FromMoveSequence(mustParse(t, c.wide))
		face := FromMoveSequence(mustParse(t, c.face))
		slice := FromMoveSequence(mustParse(t, c.slice))
		if c.primed {
			slice = slice.Inverse()
		}
		want := face.Compose(slice)
		if !wide.Equal(want) {
			sense := ""
			if c.primed {
				sense = "'"
			}
			t.Errorf("%s: does not equal %s * %s%s", c.wide, c.face, c.slice, sense)
		}
	}
}
