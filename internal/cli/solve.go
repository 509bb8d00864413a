package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/render"
	"github.com/ehrlich-b/cube/internal/roux"
	"github.com/ehrlich-b/cube/internal/tui"
	"github.com/spf13/cobra"
)

// defaultOrientation mirrors cube.NewCube's own Up/Blue, Front/White
// pairing, so a solved cube renders the same CFEN regardless of whether
// it came from the sticker-grid or the group-theoretic model.
var defaultOrientation = cfen.CFENOrientation{Up: cube.Blue, Front: cube.White}

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube with the Roux method",
	Long: `Solve a scrambled 3x3x3 cube using the Roux method.
The scramble should be provided as a string of Singmaster moves.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scrambleStr := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		useColor, _ := cmd.Flags().GetBool("color")
		interactive, _ := cmd.Flags().GetBool("interactive")

		var start permute.CubePermutation3
		if startCfen != "" {
			p, err := cfen.ToPermutation(startCfen)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			start = p
		} else {
			start = permute.Identity()
		}

		scramble, err := cubelet.ParseSequence(scrambleStr)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing scramble: %v\n", err)
			}
			os.Exit(1)
		}
		start = permute.FromMoveSequence(scramble).Compose(start)

		if !headless {
			fmt.Printf("Solving 3x3x3 cube with scramble: %s\n", scrambleStr)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
			fmt.Printf("\nCube state after scramble:\n%s\n", render.Render(start).StringWithColor(useColor))
		}

		solved, err := roux.Solve(start)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}

		if interactive {
			if err := tui.RunInteractiveSolve(scrambleStr, solved); err != nil {
				fmt.Printf("Error running interactive solve: %v\n", err)
				os.Exit(1)
			}
			return
		}

		solution := solved.MoveSequence()
		final := permute.FromMoveSequence(solution).Compose(start)

		switch {
		case useCfenOutput:
			cfenStr, err := cfen.FromPermutation(final, defaultOrientation)
			if err != nil {
				if !headless {
					fmt.Printf("Error generating CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			fmt.Print(cfenStr)
		case headless:
			fmt.Print(solution.String())
		default:
			fmt.Printf("Solution: %s\n", solution.String())
			fmt.Printf("Moves: %d\n", solution.Len())
		}
	},
}

func init() {
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
	solveCmd.Flags().Bool("interactive", false, "Walk the solution step by step in a terminal UI")
}
