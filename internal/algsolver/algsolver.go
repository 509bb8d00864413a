// Package algsolver implements AlgorithmicSolver (spec.md §4.5): a flat,
// enumeration-based solver for last-layer-style steps where a small library
// of pre-authored algorithms is applied, optionally bracketed by an
// alignment turn before and after.
package algsolver

import (
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
)

// CostFunc scores a move sequence; lower is better.
type CostFunc func(cubelet.MoveSequence) int

// Solver maps a signature to the lowest-cost sequence that resolves it,
// built once from a flat algorithm library and a set of pre/post alignment
// moves.
type Solver[S comparable] struct {
	nodeInfo map[S]cubelet.MoveSequence
}

// ExpandClosure implements the {m⁻¹, m·m, m} ∪ {empty} expansion spec.md
// §4.5 applies to both the pre-move and post-move sets, then canonicalises,
// sorts, and deduplicates. Exported so callers that need to know which
// concrete alignment turn produced a given signature (case-recognition code,
// say) can reproduce the same enumeration New uses internally.
func ExpandClosure(moves []cubelet.MoveSequence) []cubelet.MoveSequence {
	expanded := make([]cubelet.MoveSequence, 0, len(moves)*3+1)
	for _, m := range moves {
		expanded = append(expanded, m.Inverse(), m.Append(m), m)
	}
	expanded = append(expanded, cubelet.Empty())

	canon := make([]cubelet.MoveSequence, 0, len(expanded))
	for _, m := range expanded {
		canon = append(canon, m.Canonicalise())
	}
	cubelet.SortSequences(canon)
	return cubelet.DedupSequences(canon)
}

// New builds a Solver by enumerating every (algorithm, pre-move, post-move)
// combination in algs x pre_expanded x post_expanded. For each, it computes
// the permutation of the composite sequence q.a.p (post, then algorithm,
// then pre), takes its signature, and records (q.a)^-1 for that signature,
// keeping the lowest-cost entry on collision.
func New[S comparable](algs, preMoves, postMoves []cubelet.MoveSequence, sig func(permute.CubePermutation3) S, cost CostFunc) *Solver[S] {
	realPre := ExpandClosure(preMoves)
	realPost := ExpandClosure(postMoves)

	nodeInfo := make(map[S]cubelet.MoveSequence)
	for _, alg := range algs {
		for _, p := range realPre {
			for _, q := range realPost {
				movesNoPre := q.Append(alg)
				movesNoPreInverse := movesNoPre.Inverse()
				moves := movesNoPre.Append(p)
				s := sig(permute.FromMoveSequence(moves))

				if existing, ok := nodeInfo[s]; ok {
					if cost(movesNoPreInverse) < cost(existing) {
						nodeInfo[s] = movesNoPreInverse
					}
					continue
				}
				nodeInfo[s] = movesNoPreInverse
			}
		}
	}
	return &Solver[S]{nodeInfo: nodeInfo}
}

// Solve returns the recorded sequence for signature s, if any. Consumers
// that chain this step into the next one should trim a trailing U-axis
// move when the next step begins with a free AUF anyway (spec.md §4.5).
func (s *Solver[S]) Solve(sig S) (cubelet.MoveSequence, bool) {
	m, ok := s.nodeInfo[sig]
	return m, ok
}

// Len reports how many distinct signatures the solver resolved.
func (s *Solver[S]) Len() int { return len(s.nodeInfo) }
