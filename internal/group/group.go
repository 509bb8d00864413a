// Package group implements the generic finite-group kit the cube algebra is
// built on: a cyclic group of integers mod K, a finite symmetric group over
// any enumerable carrier set, and (in oriented.go) the wreath product of a
// symmetric group with a cyclic group.
package group

import (
	"strconv"
	"strings"
)

// Enumerable is a finite, totally ordered carrier set. Index returns a value
// in [0, N) unique to that element; FromIndex on the matching Carrier is its
// inverse.
type Enumerable interface {
	comparable
	Index() int
}

// Carrier describes the cardinality and enumeration of a concrete
// Enumerable type T. Go has no const-generics, so the carrier size is
// supplied at runtime by whichever singleton implements this interface for
// T, rather than baked into the type itself.
type Carrier[T Enumerable] interface {
	Size() int
	FromIndex(i int) T
}

// Cyclic is an element of Z/KZ: integers mod K under addition.
type Cyclic struct {
	k int
	v int
}

// NewCyclic builds the element v mod k, normalising v into [0, k).
func NewCyclic(k, v int) Cyclic {
	v %= k
	if v < 0 {
		v += k
	}
	return Cyclic{k: k, v: v}
}

// K returns the modulus.
func (c Cyclic) K() int { return c.k }

// V returns the stored value in [0, K).
func (c Cyclic) V() int { return c.v }

// Add returns c + other mod K. Panics if the moduli differ.
func (c Cyclic) Add(other Cyclic) Cyclic {
	if c.k != other.k {
		panic("group: cyclic addition across differing moduli")
	}
	return NewCyclic(c.k, c.v+other.v)
}

// Inverse returns -c mod K.
func (c Cyclic) Inverse() Cyclic {
	return NewCyclic(c.k, -c.v)
}

// IsIdentity reports whether c is the zero element.
func (c Cyclic) IsIdentity() bool { return c.v == 0 }

// SymGroup is an element of S_N, the symmetric group over carrier T: an
// image array f where f[i] is the image of the i-th carrier element.
type SymGroup[T Enumerable] struct {
	carrier Carrier[T]
	f       []T
}

// Identity returns the identity permutation over c: f[i] = c.FromIndex(i).
func Identity[T Enumerable](c Carrier[T]) SymGroup[T] {
	n := c.Size()
	f := make([]T, n)
	for i := 0; i < n; i++ {
		f[i] = c.FromIndex(i)
	}
	return SymGroup[T]{carrier: c, f: f}
}

// NewUnchecked builds a SymGroup directly from an image array. This is the
// unchecked primitive spec.md §4.1 calls out: trusted callers (turn tables)
// provide a genuine permutation; the constructor does not verify bijectivity.
func NewUnchecked[T Enumerable](c Carrier[T], f []T) SymGroup[T] {
	if len(f) != c.Size() {
		panic("group: image array length does not match carrier size")
	}
	cp := make([]T, len(f))
	copy(cp, f)
	return SymGroup[T]{carrier: c, f: cp}
}

// Compose returns a · b, defined so that (a·b)[i] = a[b[i].Index()].
func (a SymGroup[T]) Compose(b SymGroup[T]) SymGroup[T] {
	n := len(a.f)
	f := make([]T, n)
	for i := 0; i < n; i++ {
		f[i] = a.f[b.f[i].Index()]
	}
	return SymGroup[T]{carrier: a.carrier, f: f}
}

// Inverse returns a^-1, filling inv[a.f[i].Index()] = FromIndex(i).
func (a SymGroup[T]) Inverse() SymGroup[T] {
	n := len(a.f)
	f := make([]T, n)
	for i := 0; i < n; i++ {
		f[a.f[i].Index()] = a.carrier.FromIndex(i)
	}
	return SymGroup[T]{carrier: a.carrier, f: f}
}

// Act returns the image of t under this permutation.
func (a SymGroup[T]) Act(t T) T {
	return a.f[t.Index()]
}

// Unact returns the image of t under the inverse permutation.
func (a SymGroup[T]) Unact(t T) T {
	return a.Inverse().Act(t)
}

// Equal reports whether a and b are the same permutation.
func (a SymGroup[T]) Equal(b SymGroup[T]) bool {
	if len(a.f) != len(b.f) {
		return false
	}
	for i := range a.f {
		if a.f[i].Index() != b.f[i].Index() {
			return false
		}
	}
	return true
}

// IsIdentity reports whether a fixes every carrier element.
func (a SymGroup[T]) IsIdentity() bool {
	for i, x := range a.f {
		if x.Index() != i {
			return false
		}
	}
	return true
}

// Order returns the smallest k>0 such that a^k is the identity.
func (a SymGroup[T]) Order() int {
	order := 1
	cur := a
	for !cur.IsIdentity() {
		cur = cur.Compose(a)
		order++
	}
	return order
}

// Key returns a string uniquely identifying this permutation, for use as a
// map key by callers that need to dedup raw group elements (SymGroup itself
// is not comparable since it holds a slice).
func (a SymGroup[T]) Key() string {
	var b strings.Builder
	for i, x := range a.f {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x.Index()))
	}
	return b.String()
}
