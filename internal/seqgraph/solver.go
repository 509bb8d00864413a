package seqgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"

	"github.com/ehrlich-b/cube/internal/cubelet"
)

// CostFunc scores a move sequence; lower is better. The canonical choice
// (spec.md §4.4) is raw move count.
type CostFunc func(cubelet.MoveSequence) int

// MoveCount is the canonical CostFunc: the number of moves in the sequence.
func MoveCount(s cubelet.MoveSequence) int { return s.Len() }

// Solver is a precomputed map from any signature reachable in a Graph to
// the shortest move sequence (under a caller-supplied cost metric) that
// takes a permutation with that signature back to the solver's Target.
type Solver[S comparable] struct {
	Target S
	table  map[S]cubelet.MoveSequence
}

// Lookup returns the move sequence for signature s and whether one exists.
func (sv *Solver[S]) Lookup(s S) (cubelet.MoveSequence, bool) {
	m, ok := sv.table[s]
	return m, ok
}

// Solve runs Dijkstra over g, rooted at target, per spec.md §4.4: walking
// forward from target accumulates, for every reachable signature s, the
// sequence that takes target out to s; the solver inverts that sequence so
// callers get the forward sequence that takes s back to target.
//
// If target is not present in g, Solve returns a Solver with an empty
// table (every query then reports "no solution").
func Solve[S comparable](g *Graph[S], target S, cost CostFunc) *Solver[S] {
	sv := &Solver[S]{Target: target, table: make(map[S]cubelet.MoveSequence)}
	if !g.HasSignature(target) {
		return sv
	}

	// Assign every node a string ID for the lvlath graph; lvlath's core
	// package is string-keyed.
	id := make(map[S]string, len(g.order))
	for i, s := range g.order {
		id[s] = fmt.Sprintf("n%d", i)
	}

	coreGraph := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	for _, s := range g.order {
		_ = coreGraph.AddVertex(id[s])
	}

	// Reduce parallel edges between the same pair down to their
	// lowest-cost generator, and remember which generator that was so the
	// solved path can be reconstructed with its actual move sequence.
	bestGen := make(map[[2]string]cubelet.MoveSequence)
	bestCost := make(map[[2]string]int)
	for _, s := range g.order {
		from := id[s]
		for _, e := range g.Edges(s) {
			to := id[e.To]
			key := [2]string{from, to}
			c := cost(e.Generator)
			if existing, ok := bestCost[key]; !ok || c < existing {
				bestCost[key] = c
				bestGen[key] = e.Generator
			}
		}
	}
	for key, c := range bestCost {
		_, _ = coreGraph.AddEdge(key[0], key[1], int64(c))
	}

	dist, prev, err := dijkstra.Dijkstra(coreGraph, dijkstra.Source(id[target]), dijkstra.WithReturnPath())
	if err != nil {
		return sv
	}

	for _, s := range g.order {
		nodeID := id[s]
		d, reachable := dist[nodeID]
		if !reachable || d == math.MaxInt64 {
			continue
		}
		if s == target {
			sv.table[s] = cubelet.Empty()
			continue
		}
		// Walk the predecessor chain from s back to target, then replay
		// the edges in target->s order to assemble the forward sequence.
		var chain []string
		for v := nodeID; v != id[target]; {
			p, ok := prev[v]
			if !ok || p == "" {
				chain = nil
				break
			}
			chain = append(chain, v)
			v = p
		}
		if chain == nil {
			continue
		}
		chain = append(chain, id[target])
		// chain is currently [s, ..., target]; reverse to [target, ..., s].
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}

		seq := cubelet.Empty()
		ok := true
		for i := 0; i+1 < len(chain); i++ {
			gen, found := bestGen[[2]string{chain[i], chain[i+1]}]
			if !found {
				ok = false
				break
			}
			seq = seq.Append(gen)
		}
		if !ok {
			continue
		}
		sv.table[s] = seq.Inverse()
	}

	return sv
}
