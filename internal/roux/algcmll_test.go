package roux

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/permute"
)

func TestSolveCMLLWithAlgorithmsAlreadySolvedYieldsEmpty(t *testing.T) {
	seq, _, err := SolveCMLLWithAlgorithms(permute.Identity())
	if err != nil {
		t.Fatalf("SolveCMLLWithAlgorithms(identity): %v", err)
	}
	if !seq.IsEmpty() {
		t.Errorf("expected an empty sequence for already-solved corners, got %v", seq)
	}
}

func TestSolveCMLLWithAlgorithmsRecognisesACatalogueCase(t *testing.T) {
	sune := mustParse(t, "R U R' U R U2 R'")
	scrambled := permute.FromMoveSequence(sune)

	seq, alg, err := SolveCMLLWithAlgorithms(scrambled)
	if err != nil {
		t.Fatalf("SolveCMLLWithAlgorithms: %v", err)
	}
	if alg.Name == "" {
		t.Errorf("expected a recognised catalogue case, got none")
	}

	final := permute.FromMoveSequence(seq).Compose(scrambled)
	if cmllAufSig(final) != identityCMLLSig {
		t.Errorf("applying %v did not solve CMLL corners", seq)
	}
}

func TestSolveCMLLWithAlgorithmsResolvesEveryCatalogueEntry(t *testing.T) {
	for _, alg := range cmllAlgorithms {
		scrambled := permute.FromMoveSequence(mustParse(t, alg.Moves))
		seq, _, err := SolveCMLLWithAlgorithms(scrambled)
		if err != nil {
			t.Fatalf("%s: SolveCMLLWithAlgorithms: %v", alg.Name, err)
		}
		final := permute.FromMoveSequence(seq).Compose(scrambled)
		if cmllAufSig(final) != identityCMLLSig {
			t.Errorf("%s: applying %v left corners unsolved", alg.Name, seq)
		}
	}
}
