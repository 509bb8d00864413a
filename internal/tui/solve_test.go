package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ehrlich-b/cube/internal/action"
	"github.com/ehrlich-b/cube/internal/cubelet"
)

func sampleSolve(t *testing.T) action.Action {
	t.Helper()
	m := func(s string) cubelet.Move {
		seq, err := cubelet.ParseSequence(s)
		if err != nil || seq.Len() != 1 {
			t.Fatalf("ParseSequence(%q): %v", s, err)
		}
		return seq.Moves[0]
	}
	return action.Action{
		Reason: action.SolveReason(),
		Steps: action.SequenceStep([]action.Action{
			action.Named("first edge", []action.Action{action.Move(m("R"))}),
			{Reason: action.SolveStepReason("first pair"), Steps: action.NothingStep()},
		}),
	}
}

func TestNewSolveModelFlattensNamedSteps(t *testing.T) {
	m := newSolveModel("R U", sampleSolve(t))
	if len(m.steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(m.steps))
	}
	if m.steps[0].name != "first edge" || m.steps[0].moves.Len() != 1 {
		t.Errorf("step 0 = %+v, want first edge with 1 move", m.steps[0])
	}
	if m.steps[1].name != "first pair" || !m.steps[1].moves.IsEmpty() {
		t.Errorf("step 1 = %+v, want first pair with no moves", m.steps[1])
	}
}

func TestUpdateAdvancesAndQuitsAtEnd(t *testing.T) {
	m := newSolveModel("", sampleSolve(t))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	sm := next.(solveModel)
	if sm.idx != 1 {
		t.Fatalf("after one advance idx = %d, want 1", sm.idx)
	}
	if cmd != nil {
		t.Errorf("expected no quit command mid-sequence, got one")
	}

	next, cmd = sm.Update(tea.KeyMsg{Type: tea.KeySpace})
	sm = next.(solveModel)
	if !sm.quitting {
		t.Errorf("expected quitting once past the last step")
	}
	if cmd == nil {
		t.Errorf("expected a quit command once past the last step")
	}
}

func TestUpdateStepsBackward(t *testing.T) {
	m := newSolveModel("", sampleSolve(t))
	m.idx = 1
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	sm := next.(solveModel)
	if sm.idx != 0 {
		t.Errorf("after 'p' idx = %d, want 0", sm.idx)
	}
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m := newSolveModel("R U R' U'", sampleSolve(t))
	if out := m.View(); out == "" {
		t.Errorf("expected non-empty view output")
	}
}
