package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [moves]",
	Short: "Optimize a sequence of moves",
	Long: `Optimize a sequence of moves by folding consecutive turns on the same
axis together and cancelling turns that undo each other.

Examples:
  cube optimize "R R"           # Outputs: R2
  cube optimize "R R'"          # Outputs: (empty - moves cancel)
  cube optimize "R U R' U'"     # Outputs: R U R' U' (no optimization possible)
  cube optimize "R R R"         # Outputs: R'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves := args[0]

		parsed, err := parseMovesOrPrintError(moves)
		if err != nil {
			return fmt.Errorf("error parsing moves: %w", err)
		}
		originalCount := parsed.Len()

		optimized := parsed.Canonicalise()
		optimizedCount := optimized.Len()

		fmt.Printf("Original:  %s (%d moves)\n", moves, originalCount)
		if optimizedCount == 0 {
			fmt.Println("Optimized: (empty - all moves cancel out)")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", optimized.String(), optimizedCount)
		}

		if originalCount != optimizedCount {
			fmt.Printf("Saved %d move(s)\n", originalCount-optimizedCount)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
