package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/roux"
	"github.com/spf13/cobra"
)

var cmllCmd = &cobra.Command{
	Use:   "cmll [scramble]",
	Short: "Solve corners-of-the-last-layer directly from the catalogued algorithm library",
	Long: `Cmll applies the scramble, then solves just the four U-layer corners using
the catalogued CMLL algorithm library (see show-alg), rather than running the
full Roux pipeline. Useful for drilling case recognition against a known
corner state without first building first-edge-through-fourth-pair blocks.`,
	Example: `  cube cmll "R U R' U' R' F R2 U' R' U' R U R' F'"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := parseMovesOrPrintError(args[0])
		if err != nil {
			return err
		}
		start := permute.FromMoveSequence(moves)

		seq, alg, err := roux.SolveCMLLWithAlgorithms(start)
		if err != nil {
			return err
		}

		if seq.IsEmpty() {
			fmt.Println("Corners already solved.")
			return nil
		}
		if alg.Name != "" {
			fmt.Printf("Recognised case: %s (%s): %s\n", alg.Name, alg.CaseID, alg.Description)
		}
		fmt.Printf("Solution: %s\n", seq.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cmllCmd)
}
