package cubelet

import "testing"

func TestParseMoveBasicFaces(t *testing.T) {
	cases := []struct {
		tok   string
		axis  Axis
		start int
		end   int
		rot   Rotation
	}{
		{"F", AxisFB, 0, 1, Quarter},
		{"R'", AxisRL, 0, 1, InverseQuarter},
		{"U2", AxisUD, 0, 1, Half},
		{"M", AxisRL, 1, 2, InverseQuarter}, // depth-1 primitive is M' (R-sense); M itself folds to its inverse
		{"S", AxisFB, 1, 2, Quarter},
	}
	for _, c := range cases {
		m, err := ParseMove(c.tok)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", c.tok, err)
		}
		if m.Axis != c.axis || m.StartDepth != c.start || m.EndDepth != c.end || m.Rotation != c.rot {
			t.Errorf("ParseMove(%q) = %+v, want axis=%v start=%d end=%d rot=%v", c.tok, m, c.axis, c.start, c.end, c.rot)
		}
	}
}

func TestBackFaceFoldMatchesFrontEquivalent(t *testing.T) {
	// "B" should canonicalise to the same depth-2 slab a wide-back turn on
	// the FB axis would, with inverted rotation relative to a naive F read.
	b, err := ParseMove("B")
	if err != nil {
		t.Fatal(err)
	}
	if b.StartDepth != 2 || b.EndDepth != 3 {
		t.Errorf("B depth = [%d,%d), want [2,3)", b.StartDepth, b.EndDepth)
	}
	if b.Rotation != InverseQuarter {
		t.Errorf("B rotation = %v, want InverseQuarter (back face inverts)", b.Rotation)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	if _, err := ParseMove(""); err == nil {
		t.Errorf("expected error for empty token")
	}
	if _, err := ParseMove("Q"); err == nil {
		t.Errorf("expected error for unrecognised letter")
	}
}

func TestMoveInverseRoundTrip(t *testing.T) {
	m, _ := ParseMove("R")
	inv := m.Inverse()
	if inv.Rotation != InverseQuarter {
		t.Errorf("inverse of quarter R = %v, want InverseQuarter", inv.Rotation)
	}
	if inv.Inverse() != m {
		t.Errorf("double inverse did not return original move")
	}
}

func TestCanonicaliseIdempotent(t *testing.T) {
	seq, err := ParseSequence("M2 U2 M2 U2 M2 U2 M2 U2")
	if err != nil {
		t.Fatal(err)
	}
	once := seq.Canonicalise()
	twice := once.Canonicalise()
	if !once.Equal(twice) {
		t.Errorf("Canonicalise is not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestCanonicaliseCancelsInverses(t *testing.T) {
	seq, err := ParseSequence("R R'")
	if err != nil {
		t.Fatal(err)
	}
	c := seq.Canonicalise()
	if !c.IsEmpty() {
		t.Errorf("R R' should cancel to empty, got %v", c)
	}
}

func TestMoveStringRoundTripsOnEffect(t *testing.T) {
	// A move's printed notation, reparsed, must denote the same turn as
	// the original token - even for the letters ParseMove folds on the way
	// in (B/L/D invert at the back face, M/E invert to the M'/E' depth-1
	// primitives).
	for _, tok := range []string{"R", "R'", "B", "B2", "L'", "D", "M", "M'", "M2", "E", "E2", "S'"} {
		m, err := ParseMove(tok)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", tok, err)
		}
		reprinted := m.String()
		again, err := ParseMove(reprinted)
		if err != nil {
			t.Fatalf("ParseMove(%q) (reprint of %q): %v", reprinted, tok, err)
		}
		if again != m {
			t.Errorf("%s -> %q -> %+v, want %+v", tok, reprinted, again, m)
		}
	}
}

func TestCanonicaliseCombinesDoubles(t *testing.T) {
	seq, err := ParseSequence("R R")
	if err != nil {
		t.Fatal(err)
	}
	c := seq.Canonicalise()
	if c.Len() != 1 || c.Moves[0].Rotation != Half {
		t.Errorf("R R should combine to a single half turn, got %v", c)
	}
}
