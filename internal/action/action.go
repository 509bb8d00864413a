// Package action implements the step composer/driver tree (spec.md §4.6):
// a recursive record of a solve's moves, grouped by why they were applied,
// that flattens to a single MoveSequence.
package action

import "github.com/ehrlich-b/cube/internal/cubelet"

// ReasonKind classifies why an Action was taken.
type ReasonKind int

const (
	// Solve marks the top-level action for an entire solve.
	Solve ReasonKind = iota
	// SolveStep marks one named step of a solve method (e.g. "first pair").
	SolveStep
	// Intuitive marks a step worked out on the fly rather than looked up.
	Intuitive
	// Shuffle marks a scramble rather than a solving action.
	Shuffle
)

// Reason is why an Action was taken: a kind, plus the step name when the
// kind is SolveStep.
type Reason struct {
	Kind     ReasonKind
	StepName string
}

// SolveReason builds a top-level Solve reason.
func SolveReason() Reason { return Reason{Kind: Solve} }

// SolveStepReason builds a named-step reason.
func SolveStepReason(name string) Reason { return Reason{Kind: SolveStep, StepName: name} }

// IntuitiveReason builds an Intuitive reason.
func IntuitiveReason() Reason { return Reason{Kind: Intuitive} }

// ShuffleReason builds a Shuffle reason.
func ShuffleReason() Reason { return Reason{Kind: Shuffle} }

// Action is something done to a cube, together with why it was done.
type Action struct {
	Reason         Reason
	Description    string
	HasDescription bool
	Steps          Steps
}

// Steps is the sum type of what an Action actually does: a single move, an
// ordered sequence of sub-actions, or nothing at all.
type Steps struct {
	kind     stepsKind
	move     cubelet.Move
	sequence []Action
}

type stepsKind int

const (
	stepsNothing stepsKind = iota
	stepsMove
	stepsSequence
)

// MoveStep wraps a single move.
func MoveStep(m cubelet.Move) Steps {
	return Steps{kind: stepsMove, move: m}
}

// SequenceStep wraps an ordered list of sub-actions.
func SequenceStep(actions []Action) Steps {
	return Steps{kind: stepsSequence, sequence: actions}
}

// NothingStep represents a no-op action, used when a step finds the cube
// already satisfies its target signature.
func NothingStep() Steps {
	return Steps{kind: stepsNothing}
}

// IsNothing reports whether these steps perform no moves.
func (s Steps) IsNothing() bool { return s.kind == stepsNothing }

// Children returns the sub-actions of a SequenceStep, or nil for a move or
// nothing step, for callers that want to walk one level of the tree (e.g.
// solve-history persistence recording each named sub-step).
func (s Steps) Children() []Action {
	if s.kind != stepsSequence {
		return nil
	}
	return s.sequence
}

// Move builds a plain Action with an Intuitive reason and no description,
// the common case for a single recorded turn.
func Move(m cubelet.Move) Action {
	return Action{Reason: IntuitiveReason(), Steps: MoveStep(m)}
}

// Named builds a SolveStep Action wrapping a sequence of sub-actions.
func Named(stepName string, actions []Action) Action {
	return Action{Reason: SolveStepReason(stepName), Steps: SequenceStep(actions)}
}

// Shuffled builds a Shuffle Action wrapping a scramble's moves, so a caller
// that reports a scramble's Action tree can be told apart from one
// reporting a solve's.
func Shuffled(seq cubelet.MoveSequence) Action {
	moves := make([]Action, seq.Len())
	for i, m := range seq.Moves {
		moves[i] = Move(m)
	}
	return Action{Reason: ShuffleReason(), Steps: SequenceStep(moves)}
}

// WithDescription attaches free-text description to an Action.
func (a Action) WithDescription(desc string) Action {
	a.Description = desc
	a.HasDescription = true
	return a
}

// MoveSequence flattens an Action to the concatenation of its leaf moves,
// in order.
func (a Action) MoveSequence() cubelet.MoveSequence {
	return a.Steps.MoveSequence()
}

// MoveSequence flattens Steps to the concatenation of its leaf moves.
func (s Steps) MoveSequence() cubelet.MoveSequence {
	switch s.kind {
	case stepsMove:
		return cubelet.MoveSequence{Moves: []cubelet.Move{s.move}}
	case stepsSequence:
		out := cubelet.Empty()
		for _, sub := range s.sequence {
			out = out.Append(sub.MoveSequence())
		}
		return out
	default:
		return cubelet.Empty()
	}
}
