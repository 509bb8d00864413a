// Package seqgraph implements the signature-quotient exploration and
// Dijkstra solving described by spec.md §4.3/§4.4: given a generator set of
// move sequences and a signature function over CubePermutation3, it
// BFS-explores the reachable signatures from the solved state and then
// solves shortest sequences back to a target signature.
package seqgraph

import (
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
)

// Edge is a labelled transition out of a signature node: applying Generator
// to any permutation with the owning signature yields one with signature To.
type Edge[S comparable] struct {
	Generator cubelet.MoveSequence
	To        S
}

// Graph is the σ-quotient of the cube state graph, reachable from identity
// under a normalised generator set. It is built once and treated as
// read-only afterward.
type Graph[S comparable] struct {
	Name  string
	edges map[S][]Edge[S]
	order []S
}

// Signatures returns every node discovered during exploration, in the order
// first reached by BFS.
func (g *Graph[S]) Signatures() []S {
	out := make([]S, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns the outgoing edges recorded for signature s (nil if s was
// never visited).
func (g *Graph[S]) Edges(s S) []Edge[S] {
	return g.edges[s]
}

// HasSignature reports whether s was reached during exploration.
func (g *Graph[S]) HasSignature(s S) bool {
	_, ok := g.edges[s]
	return ok
}

// normalizeGenerators implements spec.md §4.3's generator-set normalization:
// single-move generators expand to {g, g⁻¹, g·g}; multi-move "algorithm"
// generators are kept as-is. The expanded list is canonicalised, sorted,
// deduplicated, and empty sequences dropped.
func normalizeGenerators(generators []cubelet.MoveSequence) []cubelet.MoveSequence {
	expanded := make([]cubelet.MoveSequence, 0, len(generators)*3)
	for _, g := range generators {
		if g.Len() == 1 {
			expanded = append(expanded, g, g.Inverse(), g.Append(g))
		} else {
			expanded = append(expanded, g)
		}
	}
	canon := make([]cubelet.MoveSequence, 0, len(expanded))
	for _, g := range expanded {
		c := g.Canonicalise()
		if !c.IsEmpty() {
			canon = append(canon, c)
		}
	}
	cubelet.SortSequences(canon)
	return cubelet.DedupSequences(canon)
}

type queueItem[S comparable] struct {
	perm permute.CubePermutation3
	sig  S
}

// Build explores the σ-quotient from the identity permutation using the
// normalised generator set, recording one node per distinct signature and
// the labelled edges discovered between them.
func Build[S comparable](name string, generators []cubelet.MoveSequence, sig func(permute.CubePermutation3) S) *Graph[S] {
	gens := normalizeGenerators(generators)
	g := &Graph[S]{Name: name, edges: make(map[S][]Edge[S])}

	start := permute.Identity()
	s0 := sig(start)
	g.edges[s0] = nil
	g.order = append(g.order, s0)

	visited := map[string]bool{start.Key(): true}
	queue := []queueItem[S]{{perm: start, sig: s0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, gen := range gens {
			p2 := permute.FromMoveSequence(gen).Compose(item.perm)
			s2 := sig(p2)
			if s2 == item.sig {
				continue
			}
			if _, ok := g.edges[s2]; !ok {
				g.edges[s2] = nil
				g.order = append(g.order, s2)
			}
			g.edges[item.sig] = append(g.edges[item.sig], Edge[S]{Generator: gen, To: s2})

			key := p2.Key()
			if !visited[key] {
				visited[key] = true
				queue = append(queue, queueItem[S]{perm: p2, sig: s2})
			}
		}
	}
	return g
}
