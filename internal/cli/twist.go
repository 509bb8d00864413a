package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/render"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a 3x3x3 cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result. Perfect for learning algorithms, exploring patterns, and visualization.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		movesStr := args[0]
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		var state permute.CubePermutation3
		if startCfen != "" {
			p, err := cfen.ToPermutation(startCfen)
			if err != nil {
				fmt.Printf("Error parsing starting CFEN: %v\n", err)
				os.Exit(1)
			}
			state = p
		} else {
			state = permute.Identity()
		}

		if !useCfenOutput {
			fmt.Printf("Applying moves to 3x3x3 cube: %s\n", movesStr)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		moves, err := cubelet.ParseSequence(movesStr)
		if err != nil {
			if !useCfenOutput {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}

		state = permute.FromMoveSequence(moves).Compose(state)

		if useCfenOutput {
			cfenStr, err := cfen.FromPermutation(state, defaultOrientation)
			if err != nil {
				fmt.Printf("Error generating CFEN: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(cfenStr)
			return
		}

		useColor, _ := cmd.Flags().GetBool("color")
		c := render.Render(state)

		fmt.Printf("\nCube state after applying moves:\n%s\n", c.StringWithColor(useColor))
		fmt.Printf("Moves applied: %d\n", moves.Len())

		if c.IsSolved() {
			fmt.Println("Status: SOLVED")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output")
	twistCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string")
	twistCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
}
