package group

import (
	"strconv"
	"strings"
)

// OrientedPair is a carrier element paired with an orientation twist: the
// image half of S_T ≀ Z_K.
type OrientedPair[T Enumerable] struct {
	Image T
	Twist Cyclic
}

// OrientedSymGroup is the wreath product S_T ≀ Z_K: a permutation of T with
// a Z_K twist carried at every position. Composition multiplies twists in
// the positional image order (see spec.md §4.1).
type OrientedSymGroup[T Enumerable] struct {
	carrier Carrier[T]
	k       int
	f       []OrientedPair[T]
}

// OrientedIdentity returns the identity element: every position maps to
// itself with twist 0.
func OrientedIdentity[T Enumerable](c Carrier[T], k int) OrientedSymGroup[T] {
	n := c.Size()
	f := make([]OrientedPair[T], n)
	for i := 0; i < n; i++ {
		f[i] = OrientedPair[T]{Image: c.FromIndex(i), Twist: NewCyclic(k, 0)}
	}
	return OrientedSymGroup[T]{carrier: c, k: k, f: f}
}

// NewOrientedUnchecked builds an OrientedSymGroup directly from a pair
// array. Unchecked primitive, used only by trusted turn-table code.
func NewOrientedUnchecked[T Enumerable](c Carrier[T], k int, f []OrientedPair[T]) OrientedSymGroup[T] {
	if len(f) != c.Size() {
		panic("group: oriented image array length does not match carrier size")
	}
	cp := make([]OrientedPair[T], len(f))
	copy(cp, f)
	return OrientedSymGroup[T]{carrier: c, k: k, f: cp}
}

// Compose returns a · b:
//
//	(a·b).f[i] = (a.f[b.f[i].Image.Index()].Image,
//	              b.f[i].Twist + a.f[b.f[i].Image.Index()].Twist)
func (a OrientedSymGroup[T]) Compose(b OrientedSymGroup[T]) OrientedSymGroup[T] {
	n := len(a.f)
	f := make([]OrientedPair[T], n)
	for i := 0; i < n; i++ {
		bi := b.f[i]
		ai := a.f[bi.Image.Index()]
		f[i] = OrientedPair[T]{Image: ai.Image, Twist: bi.Twist.Add(ai.Twist)}
	}
	return OrientedSymGroup[T]{carrier: a.carrier, k: a.k, f: f}
}

// Inverse returns a^-1: at f[i].Image.Index() store (FromIndex(i), -f[i].Twist).
func (a OrientedSymGroup[T]) Inverse() OrientedSymGroup[T] {
	n := len(a.f)
	f := make([]OrientedPair[T], n)
	for i := 0; i < n; i++ {
		ai := a.f[i]
		f[ai.Image.Index()] = OrientedPair[T]{Image: a.carrier.FromIndex(i), Twist: ai.Twist.Inverse()}
	}
	return OrientedSymGroup[T]{carrier: a.carrier, k: a.k, f: f}
}

// Act computes the left action on (x, r) in T x Z_K: let (y,s) = f[x.Index()];
// return (y, r+s).
func (a OrientedSymGroup[T]) Act(x T, r Cyclic) (T, Cyclic) {
	p := a.f[x.Index()]
	return p.Image, r.Add(p.Twist)
}

// Unact acts by the inverse of a.
func (a OrientedSymGroup[T]) Unact(x T, r Cyclic) (T, Cyclic) {
	return a.Inverse().Act(x, r)
}

// Equal reports whether a and b are the same element.
func (a OrientedSymGroup[T]) Equal(b OrientedSymGroup[T]) bool {
	if len(a.f) != len(b.f) {
		return false
	}
	for i := range a.f {
		if a.f[i].Image.Index() != b.f[i].Image.Index() {
			return false
		}
		if a.f[i].Twist.V() != b.f[i].Twist.V() {
			return false
		}
	}
	return true
}

// IsIdentity reports whether a fixes every position with zero twist.
func (a OrientedSymGroup[T]) IsIdentity() bool {
	for i, p := range a.f {
		if p.Image.Index() != i || !p.Twist.IsIdentity() {
			return false
		}
	}
	return true
}

// Order returns the smallest k>0 such that a^k is the identity.
func (a OrientedSymGroup[T]) Order() int {
	order := 1
	cur := a
	for !cur.IsIdentity() {
		cur = cur.Compose(a)
		order++
	}
	return order
}

// Key returns a string uniquely identifying this element, encoding both the
// image and the twist at every position.
func (a OrientedSymGroup[T]) Key() string {
	var b strings.Builder
	for i, p := range a.f {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p.Image.Index()))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.Twist.V()))
	}
	return b.String()
}
