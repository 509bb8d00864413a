package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cubelet"
)

// parseMovesOrPrintError parses a move string, printing a user-facing error
// (rather than returning a wrapped one) for commands that just want to bail
// out of a sub-step without aborting the whole command.
func parseMovesOrPrintError(moves string) (cubelet.MoveSequence, error) {
	seq, err := cubelet.ParseSequence(moves)
	if err != nil {
		fmt.Printf("Error parsing moves: %v\n", err)
		return cubelet.MoveSequence{}, err
	}
	return seq, nil
}
