package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/render"
	"github.com/ehrlich-b/cube/internal/roux"
	"github.com/spf13/cobra"
)

var showAlgCmd = &cobra.Command{
	Use:   "show-alg [algorithm-name]",
	Short: "Display a CMLL algorithm's effect on a solved cube",
	Long: `Look up a CMLL algorithm in the catalogue and show the cube state
before and after applying it, for learning purposes.`,
	Example: `  cube show-alg Sune
  cube show-alg cmll-j --animate
  cube show-alg Antisune --color`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		color, _ := cmd.Flags().GetBool("color")
		animate, _ := cmd.Flags().GetBool("animate")

		results := roux.LookupCMLL(name)
		if len(results) == 0 {
			return fmt.Errorf("algorithm %q not found in CMLL catalogue", name)
		}
		alg := results[0]

		fmt.Printf("=== %s (%s) ===\n", alg.Name, alg.CaseID)
		if alg.Description != "" {
			fmt.Printf("Description: %s\n", alg.Description)
		}
		fmt.Printf("Moves: %s\n\n", alg.Moves)

		moves, err := parseMovesOrPrintError(alg.Moves)
		if err != nil {
			return err
		}

		if animate {
			return showAlgorithmAnimated(moves, color)
		}

		after := render.Render(permute.FromMoveSequence(moves))
		fmt.Println("Final state:")
		fmt.Println(after.StringWithColor(color))
		return nil
	},
}

// showAlgorithmAnimated steps through moves one at a time, pausing for
// Enter between each, so a learner can watch a CMLL algorithm unfold.
func showAlgorithmAnimated(moves cubelet.MoveSequence, color bool) error {
	fmt.Println("Stepping through the algorithm. Press Enter between moves...")

	reader := bufio.NewReader(os.Stdin)
	state := permute.Identity()
	for i, m := range moves.Moves {
		state = permute.FromMove(m).Compose(state)
		fmt.Printf("\nStep %d/%d: %s\n", i+1, len(moves.Moves), m.String())
		fmt.Println(render.Render(state).StringWithColor(color))

		if i < len(moves.Moves)-1 {
			fmt.Print("Press Enter to continue...")
			reader.ReadString('\n')
		}
	}

	fmt.Println("\nAlgorithm execution complete.")
	return nil
}

func init() {
	showAlgCmd.Flags().BoolP("color", "c", false, "Use colored output")
	showAlgCmd.Flags().Bool("animate", false, "Show step-by-step animation")
	rootCmd.AddCommand(showAlgCmd)
}
