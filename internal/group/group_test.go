package group

import "testing"

// trit is a tiny 3-element Enumerable carrier used to exercise SymGroup and
// OrientedSymGroup without depending on the cube-specific cubelet types.
type trit int

func (t trit) Index() int { return int(t) }

type tritCarrier struct{}

func (tritCarrier) Size() int           { return 3 }
func (tritCarrier) FromIndex(i int) trit { return trit(i) }

func TestCyclicAddAndInverse(t *testing.T) {
	a := NewCyclic(3, 2)
	b := NewCyclic(3, 2)
	got := a.Add(b)
	if got.V() != 1 {
		t.Errorf("2+2 mod 3 = %d, want 1", got.V())
	}
	inv := a.Inverse()
	if inv.V() != 1 {
		t.Errorf("inverse of 2 mod 3 = %d, want 1", inv.V())
	}
	if !a.Add(inv).IsIdentity() {
		t.Errorf("a + a.Inverse() should be identity")
	}
}

func TestSymGroupIdentityAndInverse(t *testing.T) {
	c := tritCarrier{}
	id := Identity[trit](c)
	if !id.IsIdentity() {
		t.Fatalf("Identity() is not identity")
	}

	// 3-cycle: 0->1->2->0
	cyc := NewUnchecked[trit](c, []trit{1, 2, 0})
	if cyc.IsIdentity() {
		t.Fatalf("3-cycle reported as identity")
	}
	if cyc.Order() != 3 {
		t.Errorf("3-cycle order = %d, want 3", cyc.Order())
	}

	inv := cyc.Inverse()
	prod := cyc.Compose(inv)
	if !prod.Equal(id) {
		t.Errorf("cyc * cyc^-1 != identity")
	}
	prod2 := inv.Compose(cyc)
	if !prod2.Equal(id) {
		t.Errorf("cyc^-1 * cyc != identity")
	}
}

func TestSymGroupAssociativity(t *testing.T) {
	c := tritCarrier{}
	a := NewUnchecked[trit](c, []trit{1, 0, 2})
	b := NewUnchecked[trit](c, []trit{0, 2, 1})
	g := NewUnchecked[trit](c, []trit{2, 1, 0})

	left := a.Compose(b).Compose(g)
	right := a.Compose(b.Compose(g))
	if !left.Equal(right) {
		t.Errorf("composition is not associative")
	}
}

func TestOrientedSymGroupComposeAndInverse(t *testing.T) {
	c := tritCarrier{}
	id := OrientedIdentity[trit](c, 3)
	if !id.IsIdentity() {
		t.Fatalf("OrientedIdentity() is not identity")
	}

	a := NewOrientedUnchecked[trit](c, 3, []OrientedPair[trit]{
		{Image: 1, Twist: NewCyclic(3, 1)},
		{Image: 2, Twist: NewCyclic(3, 2)},
		{Image: 0, Twist: NewCyclic(3, 0)},
	})

	inv := a.Inverse()
	prod := a.Compose(inv)
	if !prod.Equal(id) {
		t.Errorf("a * a^-1 != identity")
	}

	x, r := a.Act(trit(0), NewCyclic(3, 0))
	if x.Index() != 1 || r.V() != 1 {
		t.Errorf("Act(0,0) = (%d,%d), want (1,1)", x.Index(), r.V())
	}
	x2, r2 := a.Unact(x, r)
	if x2.Index() != 0 || r2.V() != 0 {
		t.Errorf("Unact(Act(0,0)) = (%d,%d), want (0,0)", x2.Index(), r2.V())
	}
}
