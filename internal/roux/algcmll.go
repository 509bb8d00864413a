package roux

import (
	"fmt"
	"sync"

	"github.com/ehrlich-b/cube/internal/algsolver"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
)

var (
	cmllAlgSolverOnce sync.Once
	cmllAlgSolverV    *algsolver.Solver[cmllSig]
)

// cmllAlgSolver builds (once) the AlgorithmicSolver spec.md §4.5 describes:
// the catalogued CMLL algorithm library bracketed by a free U turn on either
// side, as an alternative to cmllAufStep's free-move SequenceGraph.
func cmllAlgSolver() *algsolver.Solver[cmllSig] {
	cmllAlgSolverOnce.Do(func() {
		cmllAlgSolverV = algsolver.New(
			cmllAlgorithmSequences(),
			mustParseAll("U"),
			mustParseAll("U"),
			cmllAufSig,
			func(m cubelet.MoveSequence) int { return m.Len() },
		)
	})
	return cmllAlgSolverV
}

var identityCMLLSig = cmllSig{
	{Corner: cubelet.FUL, Twist: cornerIdentity()},
	{Corner: cubelet.FUR, Twist: cornerIdentity()},
	{Corner: cubelet.BUR, Twist: cornerIdentity()},
	{Corner: cubelet.BUL, Twist: cornerIdentity()},
}

// SolveCMLLWithAlgorithms solves corners-of-the-last-layer on cur using the
// catalogued algorithm library directly, the AlgorithmicSolver pattern
// spec.md §4.5 describes, rather than cmllAufStep's SequenceGraph. The
// enumeration absorbs a post-alignment AUF into the returned moves but may
// leave a pre-alignment turn unresolved (the "Consumer contract" documented
// on algsolver.Solver.Solve); this closes that residual itself by trying
// each of the four possible AUF turns until the corners land on the exact
// solved signature, so callers always get a fully solving sequence.
func SolveCMLLWithAlgorithms(cur permute.CubePermutation3) (cubelet.MoveSequence, CMLLAlgorithm, error) {
	sig := cmllAufSig(cur)
	seq, ok := cmllAlgSolver().Solve(sig)
	if !ok {
		return cubelet.MoveSequence{}, CMLLAlgorithm{}, fmt.Errorf("roux: no catalogued algorithm resolves this CMLL case")
	}
	alg, _ := recognizeCMLLCase(sig)

	next := permute.FromMoveSequence(seq).Compose(cur)
	for _, fix := range []string{"", "U", "U2", "U'"} {
		fixSeq := cubelet.Empty()
		if fix != "" {
			fixSeq = mustParseAll(fix)[0]
		}
		candidate := permute.FromMoveSequence(fixSeq).Compose(next)
		if cmllAufSig(candidate) == identityCMLLSig {
			return seq.Append(fixSeq), alg, nil
		}
	}
	return cubelet.MoveSequence{}, alg, fmt.Errorf("roux: algorithmic CMLL solve left an unresolved residual turn")
}
