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

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms start state to target state",
	Long: `Verify that an algorithm correctly transforms a cube from a start state to a target state.
Both states are specified using CFEN notation with wildcard support.

Examples:
  # Verify Sune from the state its inverse leaves on a solved cube
  cube verify "R U R' U R U2 R'" \
    --start "BW|B9/RYRO6/YWYW6/G9/O3R6/WRWY6" \
    --target "BW|B9/?9/?9/?9/?9/?9"

  # Verify simple inverse (defaults to solved start/target)
  cube verify "R U R' U' U R U' R'"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]

		startCFEN, _ := cmd.Flags().GetString("start")
		targetCFEN, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")
		useColor, _ := cmd.Flags().GetBool("color")

		if startCFEN == "" {
			startCFEN = "BW|B9/O9/W9/G9/R9/Y9"
		}
		if targetCFEN == "" {
			targetCFEN = "BW|B9/O9/W9/G9/R9/Y9"
		}

		start, err := cfen.ToPermutation(startCFEN)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing start CFEN: %v\n", err)
			}
			os.Exit(1)
		}

		targetState, err := cfen.ParseCFEN(targetCFEN)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing target CFEN: %v\n", err)
			}
			os.Exit(1)
		}

		c := render.Render(start)
		if verbose && !headless {
			fmt.Printf("Start state (from CFEN):\n")
			fmt.Println(c.StringWithColor(useColor))
		}

		moves, err := cubelet.ParseSequence(algorithm)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing algorithm: %v\n", err)
			}
			os.Exit(1)
		}

		result := permute.FromMoveSequence(moves).Compose(start)
		c = render.Render(result)

		if verbose && !headless {
			fmt.Printf("\nAfter algorithm (%s):\n", algorithm)
			fmt.Println(c.StringWithColor(useColor))
		}

		matches, err := targetState.MatchesCube(c)
		if err != nil {
			if !headless {
				fmt.Printf("Error matching result to target: %v\n", err)
			}
			os.Exit(1)
		}

		if matches {
			if !headless {
				fmt.Printf("PASS: algorithm correctly transforms start to target state\n")
				fmt.Printf("Algorithm: %s\n", algorithm)
				fmt.Printf("Move count: %d\n", moves.Len())
				if verbose {
					fmt.Printf("Start:  %s\n", startCFEN)
					fmt.Printf("Target: %s\n", targetCFEN)
					actualCFEN, _ := cfen.FromPermutation(result, defaultOrientation)
					fmt.Printf("Actual: %s\n", actualCFEN)
				}
			}
			os.Exit(0)
		} else {
			if !headless {
				fmt.Printf("FAIL: algorithm does not achieve target state\n")
				fmt.Printf("Algorithm: %s\n", algorithm)
				if !verbose {
					fmt.Printf("\nTip: use --verbose to see the cube states\n")
				} else {
					fmt.Printf("Start:  %s\n", startCFEN)
					fmt.Printf("Target: %s\n", targetCFEN)
					actualCFEN, _ := cfen.FromPermutation(result, defaultOrientation)
					fmt.Printf("Actual: %s\n", actualCFEN)
				}
			}
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting CFEN state (defaults to solved)")
	verifyCmd.Flags().String("target", "", "Target CFEN state (defaults to solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states and transformations")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
	verifyCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
