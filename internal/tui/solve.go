// Package tui implements the interactive solve walkthrough (`cube solve
// --interactive`), a small bubbletea program that steps through a solved
// Action tree one named Roux step at a time.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ehrlich-b/cube/internal/action"
	"github.com/ehrlich-b/cube/internal/cubelet"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type stepView struct {
	name  string
	moves cubelet.MoveSequence
	desc  string
}

type solveModel struct {
	scramble string
	steps    []stepView
	idx      int
	quitting bool
}

// RunInteractiveSolve walks solved step by step in a terminal UI: space/enter
// advances to the next named step, p goes back, q/esc quits.
func RunInteractiveSolve(scramble string, solved action.Action) error {
	m := newSolveModel(scramble, solved)
	_, err := tea.NewProgram(m).Run()
	return err
}

func newSolveModel(scramble string, solved action.Action) solveModel {
	var steps []stepView
	for _, child := range solved.Steps.Children() {
		steps = append(steps, stepView{
			name:  child.Reason.StepName,
			moves: child.MoveSequence(),
			desc:  child.Description,
		})
	}
	return solveModel{scramble: scramble, steps: steps}
}

func (m solveModel) Init() tea.Cmd {
	return nil
}

func (m solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case " ", "enter", "n", "right":
		if m.idx < len(m.steps) {
			m.idx++
		}
		if m.idx >= len(m.steps) {
			m.quitting = true
			return m, tea.Quit
		}
	case "p", "left":
		if m.idx > 0 {
			m.idx--
		}
	}
	return m, nil
}

func (m solveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Roux solve walkthrough"))
	b.WriteString("\n")
	if m.scramble != "" {
		b.WriteString(statusStyle.Render("Scramble: " + m.scramble))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, s := range m.steps {
		marker := "  "
		name := s.name
		switch {
		case i < m.idx:
			marker = doneStyle.Render("✓ ")
			name = doneStyle.Render(name)
		case i == m.idx:
			marker = "▶ "
			name = phaseStyle.Render(name)
		default:
			name = statusStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s", marker, name))
		if i == m.idx {
			if s.moves.IsEmpty() {
				b.WriteString(doneStyle.Render("  (already solved)"))
			} else {
				b.WriteString("  " + moveStyle.Render(s.moves.String()))
			}
			if s.desc != "" {
				b.WriteString("\n    " + statusStyle.Render(s.desc))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	shown := m.idx + 1
	if shown > len(m.steps) {
		shown = len(m.steps)
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("step %d/%d — space/enter: next, p: back, q: quit", shown, len(m.steps))))
	b.WriteString("\n")
	return b.String()
}
