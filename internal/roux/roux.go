// Package roux implements the nine-step Roux method pipeline (spec.md
// §4.6/§7): first edge, first pair, second pair, second edge, third pair,
// fourth pair, CMLL+AUF, EOLR, and the last four edges, each backed by a
// precomputed SequenceGraph/SequenceSolver pair over its own generator set
// and signature.
package roux

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ehrlich-b/cube/internal/action"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/group"
	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/seqgraph"
)

func mustParseAll(toks ...string) []cubelet.MoveSequence {
	out := make([]cubelet.MoveSequence, len(toks))
	for i, tok := range toks {
		seq, err := cubelet.ParseSequence(tok)
		if err != nil {
			panic(fmt.Sprintf("roux: bad built-in generator %q: %v", tok, err))
		}
		out[i] = seq
	}
	return out
}

// step bundles a graph and its Dijkstra-derived solver over one signature
// type, mirroring the process-wide precomputed-table pattern spec.md §9
// calls for: build once, keep read-only for the process lifetime.
type step[S comparable] struct {
	once   sync.Once
	graph  *seqgraph.Graph[S]
	solver *seqgraph.Solver[S]
	name   string
	gens   []cubelet.MoveSequence
	sig    func(permute.CubePermutation3) S
	target S
	built  time.Duration
}

func (s *step[S]) ensure() {
	s.once.Do(func() {
		start := time.Now()
		s.graph = seqgraph.Build(s.name, s.gens, s.sig)
		s.solver = seqgraph.Solve(s.graph, s.target, seqgraph.MoveCount)
		s.built = time.Since(start)
		log.Printf("built %s solver: %d signatures in %s", s.name, len(s.graph.Signatures()), s.built)
	})
}

// TableStats describes one step's precomputed signature table, for CLI/TUI
// code that wants to build and inspect the tables directly (`cube table`)
// rather than just solving.
type TableStats struct {
	Name       string        `json:"name"`
	Signatures int           `json:"signatures"`
	BuildTime  time.Duration `json:"build_time"`
}

// Stats forces this step's table to be built (if not already) and returns
// its size and build time.
func (s *step[S]) Stats() TableStats {
	s.ensure()
	return TableStats{Name: s.name, Signatures: len(s.graph.Signatures()), BuildTime: s.built}
}

func (s *step[S]) solve(sig S) (cubelet.MoveSequence, bool) {
	s.ensure()
	return s.solver.Lookup(sig)
}

var firstEdgeStep = &step[edgeSig]{
	name:   "roux_first_edge",
	gens:   mustParseAll("F", "R", "U", "B", "L", "D", "M"),
	sig:    firstEdgeSig,
	target: edgeSig{Edge: cubelet.DL, Twist: edgeIdentity()},
}

var firstPairStep = &step[pairSig]{
	name:   "roux_first_pair",
	gens:   mustParseAll("F", "R", "U", "B", "M"),
	sig:    firstPairSig,
	target: pairSig{Edge: edgeSig{Edge: cubelet.FL, Twist: edgeIdentity()}, Corner: cornerSig{Corner: cubelet.FDL, Twist: cornerIdentity()}},
}

var secondPairStep = &step[pairSig]{
	name:   "roux_second_pair",
	gens:   mustParseAll("R", "U", "B", "M"),
	sig:    secondPairSig,
	target: pairSig{Edge: edgeSig{Edge: cubelet.BL, Twist: edgeIdentity()}, Corner: cornerSig{Corner: cubelet.BDL, Twist: cornerIdentity()}},
}

var secondEdgeStep = &step[edgeSig]{
	name:   "roux_second_edge",
	gens:   mustParseAll("R", "U", "M"),
	sig:    secondEdgeSig,
	target: edgeSig{Edge: cubelet.DR, Twist: edgeIdentity()},
}

var thirdPairStep = &step[pairSig]{
	name: "roux_third_pair",
	gens: mustParseAll(
		"U", "M",
		"R U R'", "R U2 R'", "R U' R'",
		"R' U R", "R' U2 R", "R' U' R",
	),
	sig:    thirdPairSig,
	target: pairSig{Edge: edgeSig{Edge: cubelet.FR, Twist: edgeIdentity()}, Corner: cornerSig{Corner: cubelet.FDR, Twist: cornerIdentity()}},
}

var fourthPairStep = &step[pairSig]{
	name: "roux_fourth_pair",
	gens: mustParseAll(
		"U", "M",
		"R' U R", "R' U2 R", "R' U' R",
	),
	sig:    fourthPairSig,
	target: pairSig{Edge: edgeSig{Edge: cubelet.BR, Twist: edgeIdentity()}, Corner: cornerSig{Corner: cubelet.BDR, Twist: cornerIdentity()}},
}

var cmllAufStep = &step[cmllSig]{
	name: "cmll_auf",
	gens: cmllGenerators(),
	sig:  cmllAufSig,
	target: cmllSig{
		{Corner: cubelet.FUL, Twist: cornerIdentity()},
		{Corner: cubelet.FUR, Twist: cornerIdentity()},
		{Corner: cubelet.BUR, Twist: cornerIdentity()},
		{Corner: cubelet.BUL, Twist: cornerIdentity()},
	},
}

var eolrStep = &step[eolrSig]{
	name: "eolr",
	gens: mustParseAll("U", "M"),
	sig:  eolrSigOf,
	target: eolrSig{
		EO:      [4]group.Cyclic{edgeIdentity(), edgeIdentity(), edgeIdentity(), edgeIdentity()},
		ULUR:    [2]edgeSig{{Edge: cubelet.UL, Twist: edgeIdentity()}, {Edge: cubelet.UR, Twist: edgeIdentity()}},
		FUL:     cubelet.FUL,
		FrontFB: true,
	},
}

var l4eStep = &step[l4eSig]{
	name: "l4e",
	gens: mustParseAll(
		"U2 M U2 M",
		"U2 M' U2 M",
		"U2 M U2 M'",
		"U2 M' U2 M'",
		"U2 M2 U2",
		"M' U2 M2 U2 M",
		"M' U2 M2 U2 M'",
		"E2 M E2 M",
		"E2 M E2 M'",
		"M2",
	),
	sig: l4eSigOf,
	target: l4eSig{
		Edges:  [4]cubelet.EdgeType{cubelet.UF, cubelet.UB, cubelet.DB, cubelet.DF},
		Centre: cubelet.CentreCubelet{Face: cubelet.F},
	},
}

// tableBuilder erases the signature type parameter so the nine steps (each
// parameterised over a different signature struct) can be collected into a
// single slice for BuildTables.
type tableBuilder interface {
	Stats() TableStats
}

var allSteps = []tableBuilder{
	firstEdgeStep,
	firstPairStep,
	secondPairStep,
	secondEdgeStep,
	thirdPairStep,
	fourthPairStep,
	cmllAufStep,
	eolrStep,
	l4eStep,
}

// BuildTables forces every named step's signature table to be built (if not
// already) and returns stats for each, in pipeline order. Intended for
// `cube table`, which reports table sizes and build times without running a
// solve.
func BuildTables() []TableStats {
	out := make([]TableStats, len(allSteps))
	for i, s := range allSteps {
		out[i] = s.Stats()
	}
	return out
}

// stepAction runs one step's solver against the current permutation and
// wraps the result (or a Nothing action, if the cube already satisfies the
// step's target signature) as a named Action.
func stepAction[S comparable](sig func(permute.CubePermutation3) S, solve func(S) (cubelet.MoveSequence, bool), name string, cur permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
	seq, ok := solve(sig(cur))
	if !ok {
		return action.Action{}, cur, fmt.Errorf("roux: %s: no solution recorded for this signature", name)
	}
	next := permute.FromMoveSequence(seq).Compose(cur)
	if seq.IsEmpty() {
		return action.Action{Reason: action.SolveStepReason(name), Steps: action.NothingStep()}, next, nil
	}
	moveActions := make([]action.Action, seq.Len())
	for i, m := range seq.Moves {
		moveActions[i] = action.Move(m)
	}
	return action.Named(name, moveActions), next, nil
}

// cmllAufStepAction is stepAction specialised for the CMLL+AUF step: it also
// tags the resulting Action with the recognised catalogued case name, since
// that description can't be derived generically from the solved signature.
func cmllAufStepAction(cur permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
	act, next, err := stepAction(cmllAufStep.sig, cmllAufStep.solve, "CMLL + AUF", cur)
	if err != nil {
		return act, next, err
	}
	if alg, ok := recognizeCMLL(act.MoveSequence()); ok {
		act = act.WithDescription(fmt.Sprintf("%s (%s): %s", alg.Name, alg.CaseID, alg.Description))
	}
	return act, next, nil
}

// recognizeCMLL strips a leading AUF turn (if any) and checks whether the
// remainder matches a catalogued CMLL algorithm, so the Action tree can
// report the recognised case name instead of raw moves.
func recognizeCMLL(seq cubelet.MoveSequence) (CMLLAlgorithm, bool) {
	if seq.IsEmpty() {
		return CMLLAlgorithm{}, false
	}
	if alg, ok := lookupCMLLAlgorithm(seq.String()); ok {
		return alg, true
	}
	rest := cubelet.MoveSequence{Moves: seq.Moves[1:]}
	return lookupCMLLAlgorithm(rest.String())
}

// Solve runs the full Roux pipeline against start, returning the top-level
// Action (reason Solve, steps the nine named sub-actions in order) that
// brings the cube to the identity permutation.
func Solve(start permute.CubePermutation3) (action.Action, error) {
	cur := start
	var steps []action.Action

	type namedStep struct {
		name string
		run  func(permute.CubePermutation3) (action.Action, permute.CubePermutation3, error)
	}
	pipeline := []namedStep{
		{"first edge", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(firstEdgeStep.sig, firstEdgeStep.solve, "first edge", p)
		}},
		{"first pair", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(firstPairStep.sig, firstPairStep.solve, "first pair", p)
		}},
		{"second pair", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(secondPairStep.sig, secondPairStep.solve, "second pair", p)
		}},
		{"second edge", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(secondEdgeStep.sig, secondEdgeStep.solve, "second edge", p)
		}},
		{"third pair", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(thirdPairStep.sig, thirdPairStep.solve, "third pair", p)
		}},
		{"fourth pair", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(fourthPairStep.sig, fourthPairStep.solve, "fourth pair", p)
		}},
		{"CMLL + AUF", cmllAufStepAction},
		{"EOLR", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(eolrStep.sig, eolrStep.solve, "EOLR", p)
		}},
		{"last four edges", func(p permute.CubePermutation3) (action.Action, permute.CubePermutation3, error) {
			return stepAction(l4eStep.sig, l4eStep.solve, "last four edges", p)
		}},
	}

	for _, s := range pipeline {
		act, next, err := s.run(cur)
		if err != nil {
			return action.Action{}, err
		}
		steps = append(steps, act)
		cur = next
	}

	if !cur.IsIdentity() {
		return action.Action{}, fmt.Errorf("roux: pipeline completed but cube is not solved")
	}

	return action.Action{Reason: action.SolveReason(), Steps: action.SequenceStep(steps)}, nil
}
