package action

import (
	"testing"

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

func TestMoveSequenceFlattensNestedActions(t *testing.T) {
	rSeq := mustParse(t, "R")
	uSeq := mustParse(t, "U")

	inner := Named("first pair", []Action{
		Move(rSeq.Moves[0]),
		Move(uSeq.Moves[0]),
	})
	outer := Action{Reason: SolveReason(), Steps: SequenceStep([]Action{inner, Move(rSeq.Moves[0])})}

	got := outer.MoveSequence()
	want := mustParse(t, "R U R")
	if !got.Equal(want) {
		t.Errorf("MoveSequence() = %v, want %v", got, want)
	}
}

func TestNothingStepFlattensEmpty(t *testing.T) {
	a := Action{Reason: SolveStepReason("EOLR"), Steps: NothingStep()}
	if !a.MoveSequence().IsEmpty() {
		t.Errorf("Nothing action should flatten to an empty sequence")
	}
	if !a.Steps.IsNothing() {
		t.Errorf("IsNothing() should report true for a NothingStep")
	}
}

func TestShuffleReasonRoundTrips(t *testing.T) {
	a := Move(mustParse(t, "R2").Moves[0])
	a.Reason = ShuffleReason()
	if a.Reason.Kind != Shuffle {
		t.Errorf("expected Shuffle reason kind")
	}
}
