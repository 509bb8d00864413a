package history

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/action"
	"github.com/ehrlich-b/cube/internal/cubelet"
)

func mustParse(t *testing.T, s string) cubelet.MoveSequence {
	t.Helper()
	seq, err := cubelet.ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", s, err)
	}
	return seq
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestRecordAndGetSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	rSeq := mustParse(t, "R")
	uSeq := mustParse(t, "U")
	solved := action.Action{
		Reason: action.SolveReason(),
		Steps: action.SequenceStep([]action.Action{
			action.Named("first edge", []action.Action{action.Move(rSeq.Moves[0])}),
			action.Named("first pair", []action.Action{action.Move(uSeq.Moves[0])}),
		}),
	}

	scramble := mustParse(t, "R U R' U'")
	id, err := repo.Record(scramble, solved)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Scramble != scramble.String() {
		t.Errorf("Scramble = %q, want %q", got.Scramble, scramble.String())
	}
	if got.MoveCount != 2 {
		t.Errorf("MoveCount = %d, want 2", got.MoveCount)
	}
	if len(got.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(got.Steps))
	}
	if got.Steps[0].Name != "first edge" || got.Steps[1].Name != "first pair" {
		t.Errorf("unexpected step names: %+v", got.Steps)
	}
}

func TestListReturnsRecordedSolves(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	empty := action.Action{Reason: action.SolveReason(), Steps: action.SequenceStep(nil)}
	if _, err := repo.Record(mustParse(t, "R"), empty); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := repo.Record(mustParse(t, "U"), empty); err != nil {
		t.Fatalf("Record: %v", err)
	}

	list, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(list))
	}
}
