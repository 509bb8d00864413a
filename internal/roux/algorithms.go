package roux

import (
	"strings"
	"sync"

	"github.com/ehrlich-b/cube/internal/algsolver"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
)

// CMLLAlgorithm names one corners-of-the-last-layer case: the moves that
// solve it, a human name, and a one-line description for the Action tree's
// descriptions (action.Action.WithDescription).
type CMLLAlgorithm struct {
	Name        string
	CaseID      string
	Moves       string
	Description string
}

// cmllAlgorithms is the named catalogue backing cmllAufStep's generator set,
// folded into the teacher's richer Algorithm shape (internal/cube/algorithms.go)
// rather than left as eight bare move strings.
var cmllAlgorithms = []CMLLAlgorithm{
	{
		Name:        "J",
		CaseID:      "CMLL-J",
		Moves:       "R U R' F' R U R' U' R' F R2 U' R'",
		Description: "Adjacent corner swap with all corners already oriented the wrong way round",
	},
	{
		Name:        "Y",
		CaseID:      "CMLL-Y",
		Moves:       "F R U' R' U' R U R' F' R U R' U' R' F R F'",
		Description: "Diagonal corner swap case",
	},
	{
		Name:        "Antisune",
		CaseID:      "CMLL-Antisune",
		Moves:       "R' U' R U' R' U2 R",
		Description: "One corner already oriented, headlights on the right",
	},
	{
		Name:        "Sune",
		CaseID:      "CMLL-Sune",
		Moves:       "R U R' U R U2 R'",
		Description: "One corner already oriented, headlights on the left",
	},
	{
		Name:        "L",
		CaseID:      "CMLL-L",
		Moves:       "R' F2 R' U' R F2 R' U R2",
		Description: "No corners oriented, L-shaped headlight pattern",
	},
	{
		Name:        "Sexy-1",
		CaseID:      "CMLL-Sexy-1",
		Moves:       "F R U R' U' F'",
		Description: "Single sexy-move sandwich case",
	},
	{
		Name:        "Sexy-2",
		CaseID:      "CMLL-Sexy-2",
		Moves:       "F R U R' U' R U R' U' F'",
		Description: "Double sexy-move sandwich case",
	},
	{
		Name:        "Sexy-3",
		CaseID:      "CMLL-Sexy-3",
		Moves:       "F R U R' U' R U R' U' R U R' U' F'",
		Description: "Triple sexy-move sandwich case",
	},
}

// cmllGenerators builds the full roux_cmll_auf generator set: AUF plus every
// catalogued algorithm, parsed once at package init.
func cmllGenerators() []cubelet.MoveSequence {
	gens := mustParseAll("U")
	for _, alg := range cmllAlgorithms {
		gens = append(gens, mustParseAll(alg.Moves)...)
	}
	return gens
}

// lookupCMLLAlgorithm finds the catalogue entry for a move string, for
// presentation code that wants the recognised case's name rather than raw
// moves. Returns ok=false for AUF-only moves (plain U turns).
func lookupCMLLAlgorithm(moves string) (CMLLAlgorithm, bool) {
	for _, alg := range cmllAlgorithms {
		if alg.Moves == moves {
			return alg, true
		}
	}
	return CMLLAlgorithm{}, false
}

// cmllAlgorithmSequences is the algs input for SolveCMLLWithAlgorithms'
// AlgorithmicSolver (spec.md §4.5): an explicit empty entry standing in for
// "already solved", followed by every catalogued algorithm, parsed once.
func cmllAlgorithmSequences() []cubelet.MoveSequence {
	out := make([]cubelet.MoveSequence, 0, len(cmllAlgorithms)+1)
	out = append(out, cubelet.Empty())
	for _, alg := range cmllAlgorithms {
		out = append(out, mustParseAll(alg.Moves)[0])
	}
	return out
}

var (
	cmllCaseTableOnce sync.Once
	cmllCaseTable     map[cmllSig]CMLLAlgorithm
)

// buildCMLLCaseTable reproduces the same (alg, pre, post) enumeration
// algsolver.New runs internally, so presentation code can recognise which
// catalogued case a scrambled signature belongs to even though the solver
// itself only hands back a move sequence.
func buildCMLLCaseTable() {
	pre := algsolver.ExpandClosure(mustParseAll("U"))
	post := algsolver.ExpandClosure(mustParseAll("U"))

	cmllCaseTable = make(map[cmllSig]CMLLAlgorithm)
	for _, alg := range cmllAlgorithms {
		moves := mustParseAll(alg.Moves)[0]
		for _, p := range pre {
			for _, q := range post {
				composite := q.Append(moves).Append(p)
				s := cmllAufSig(permute.FromMoveSequence(composite))
				if _, exists := cmllCaseTable[s]; !exists {
					cmllCaseTable[s] = alg
				}
			}
		}
	}
}

// recognizeCMLLCase looks up which catalogued algorithm (if any) solves a
// cube already in signature sig, for Action descriptions. The already-solved
// signature and pure-AUF signatures are deliberately absent from the table.
func recognizeCMLLCase(sig cmllSig) (CMLLAlgorithm, bool) {
	cmllCaseTableOnce.Do(buildCMLLCaseTable)
	alg, ok := cmllCaseTable[sig]
	return alg, ok
}

// CMLLAlgorithms returns the full named CMLL catalogue, for CLI/TUI code
// that wants to list or search it directly.
func CMLLAlgorithms() []CMLLAlgorithm {
	return append([]CMLLAlgorithm(nil), cmllAlgorithms...)
}

// LookupCMLL searches the catalogue by name or case ID, case-insensitively.
func LookupCMLL(query string) []CMLLAlgorithm {
	q := strings.ToLower(query)
	var out []CMLLAlgorithm
	for _, alg := range cmllAlgorithms {
		if strings.Contains(strings.ToLower(alg.Name), q) || strings.Contains(strings.ToLower(alg.CaseID), q) {
			out = append(out, alg)
		}
	}
	return out
}
