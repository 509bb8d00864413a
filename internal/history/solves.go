package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ehrlich-b/cube/internal/action"
	"github.com/ehrlich-b/cube/internal/cubelet"
)

// Solve is one recorded solve: the scramble that produced it, the full STM
// solution, and the per-step breakdown of the Action tree that solved it.
type Solve struct {
	SolveID   string
	CreatedAt time.Time
	Scramble  string
	Solution  string
	MoveCount int
	Steps     []SolveStep
}

// SolveStep is one named step of a recorded solve (e.g. "first pair").
type SolveStep struct {
	Index     int
	Name      string
	Moves     string
	MoveCount int
}

// SolveRepository provides CRUD operations for solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record persists a completed Roux solve: the scrambling sequence and the
// top-level Action the pipeline produced, flattened into one solution move
// sequence and one row per named sub-step.
func (r *SolveRepository) Record(scramble cubelet.MoveSequence, solved action.Action) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()
	solution := solved.MoveSequence()

	steps := flattenSteps(solved)

	err := r.db.Transaction(func(insert execer) error {
		if _, err := insert.Exec(`
			INSERT INTO solves (solve_id, created_at, scramble, solution, move_count)
			VALUES (?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339), scramble.String(), solution.String(), solution.Len()); err != nil {
			return err
		}
		for i, st := range steps {
			if _, err := insert.Exec(`
				INSERT INTO solve_steps (solve_id, step_index, step_name, moves, move_count)
				VALUES (?, ?, ?, ?, ?)
			`, id, i, st.Name, st.Moves, st.MoveCount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("history: failed to record solve: %w", err)
	}

	return id, nil
}

// flattenSteps walks the Action tree one level deep (the nine named Roux
// steps) and records each as a history row, skipping Nothing steps.
func flattenSteps(solved action.Action) []SolveStep {
	var steps []SolveStep
	for _, child := range solved.Steps.Children() {
		if child.Steps.IsNothing() {
			continue
		}
		moves := child.MoveSequence()
		steps = append(steps, SolveStep{
			Name:      child.Reason.StepName,
			Moves:     moves.String(),
			MoveCount: moves.Len(),
		})
	}
	for i := range steps {
		steps[i].Index = i
	}
	return steps
}

// List retrieves recent solves, most recent first, without their step
// breakdown (use Get for the full record).
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, move_count
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: failed to list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string
		if err := rows.Scan(&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution, &s.MoveCount); err != nil {
			return nil, fmt.Errorf("history: failed to scan solve: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		out = append(out, s)
	}
	return out, nil
}

// Get retrieves one solve by ID, with its full step breakdown.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string
	err := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, move_count
		FROM solves WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution, &s.MoveCount)
	if err != nil {
		return nil, fmt.Errorf("history: failed to get solve %s: %w", solveID, err)
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

	rows, err := r.db.Query(`
		SELECT step_index, step_name, moves, move_count
		FROM solve_steps WHERE solve_id = ? ORDER BY step_index
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("history: failed to get steps for solve %s: %w", solveID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var st SolveStep
		if err := rows.Scan(&st.Index, &st.Name, &st.Moves, &st.MoveCount); err != nil {
			return nil, fmt.Errorf("history: failed to scan solve step: %w", err)
		}
		s.Steps = append(s.Steps, st)
	}

	return &s, nil
}

// Delete removes a solve and its steps (cascading).
func (r *SolveRepository) Delete(solveID string) error {
	if _, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID); err != nil {
		return fmt.Errorf("history: failed to delete solve %s: %w", solveID, err)
	}
	return nil
}
