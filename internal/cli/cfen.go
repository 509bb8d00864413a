package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/render"
	"github.com/spf13/cobra"
)

var parseCfenCmd = &cobra.Command{
	Use:   "parse-cfen <cfen-string>",
	Short: "Parse and display a CFEN string as a cube state",
	Long: `Parse a CFEN (Cube Forsyth-Edwards Notation) string and display the
resulting 3x3x3 cube state.

Examples:
  cube parse-cfen "WG|W9/R9/G9/Y9/O9/B9"        # Solved
  cube parse-cfen "WG|?W?WWW?W?/?9/?9/?9/?9/?9" # White cross only`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfenStr := args[0]

		cfenState, err := cfen.ParseCFEN(cfenStr)
		if err != nil {
			return fmt.Errorf("failed to parse CFEN: %w", err)
		}

		c, err := cfenState.ToCube()
		if err != nil {
			return fmt.Errorf("failed to convert CFEN to cube: %w", err)
		}

		useColor, _ := cmd.Flags().GetBool("color")

		fmt.Printf("CFEN: %s\n", cfenStr)
		fmt.Printf("Orientation: %s up, %s front\n",
			cfenState.Orientation.Up.String(),
			cfenState.Orientation.Front.String())
		fmt.Printf("Solved: %t\n\n", c.IsSolved())
		fmt.Print(c.StringWithColor(useColor))

		return nil
	},
}

var generateCfenCmd = &cobra.Command{
	Use:   "generate-cfen <scramble>",
	Short: "Apply scramble moves and output the resulting CFEN string",
	Long: `Apply a scramble sequence to a cube and output the resulting state as a
CFEN string.

Examples:
  cube generate-cfen "R U R' U'"
  cube generate-cfen "R U R' U'" --start "WG|..."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scrambleStr := args[0]
		startCfen, _ := cmd.Flags().GetString("start")

		var start permute.CubePermutation3
		if startCfen != "" {
			p, err := cfen.ToPermutation(startCfen)
			if err != nil {
				return fmt.Errorf("invalid starting CFEN: %w", err)
			}
			start = p
		} else {
			start = permute.Identity()
		}

		if scrambleStr != "" {
			moves, err := parseMovesOrPrintError(scrambleStr)
			if err != nil {
				return fmt.Errorf("invalid scramble: %w", err)
			}
			start = permute.FromMoveSequence(moves).Compose(start)
		}

		cfenStr, err := cfen.FromPermutation(start, defaultOrientation)
		if err != nil {
			return fmt.Errorf("failed to generate CFEN: %w", err)
		}
		fmt.Println(cfenStr)
		return nil
	},
}

var verifyCfenCmd = &cobra.Command{
	Use:   "verify-cfen <scramble> <solution> --target <cfen>",
	Short: "Verify that a solution reaches the target CFEN state",
	Long: `Apply a scramble and solution, then verify the result matches the target
CFEN pattern. Supports wildcard matching where '?' positions are ignored.

Examples:
  cube verify-cfen "R U R' U'" "U R U' R'" --target "BW|B9/O9/W9/G9/R9/Y9"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := args[0]
		solution := args[1]

		targetCfen, _ := cmd.Flags().GetString("target")
		if targetCfen == "" {
			return fmt.Errorf("--target flag is required")
		}

		targetState, err := cfen.ParseCFEN(targetCfen)
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %w", err)
		}

		state := permute.Identity()
		if scramble != "" {
			moves, err := parseMovesOrPrintError(scramble)
			if err != nil {
				return fmt.Errorf("invalid scramble: %w", err)
			}
			state = permute.FromMoveSequence(moves).Compose(state)
		}
		if solution != "" {
			moves, err := parseMovesOrPrintError(solution)
			if err != nil {
				return fmt.Errorf("invalid solution: %w", err)
			}
			state = permute.FromMoveSequence(moves).Compose(state)
		}

		c := render.Render(state)
		matches, err := targetState.MatchesCube(c)
		if err != nil {
			return fmt.Errorf("failed to match against target: %w", err)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if matches {
			fmt.Println("PASS: solution matches target CFEN pattern")
		} else {
			fmt.Println("FAIL: solution does not match target CFEN pattern")
		}
		if verbose || !matches {
			actualCfen, _ := cfen.FromPermutation(state, defaultOrientation)
			fmt.Printf("Target: %s\n", targetCfen)
			fmt.Printf("Actual: %s\n", actualCfen)
		}
		if !matches {
			return fmt.Errorf("verification failed")
		}
		return nil
	},
}

var matchCfenCmd = &cobra.Command{
	Use:   "match-cfen <current-cfen> <target-cfen>",
	Short: "Compare two CFEN strings and show whether they match",
	Long: `Compare two CFEN strings and report whether the current state matches the
target pattern. Supports wildcard matching where '?' positions are ignored.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		currentCfen := args[0]
		targetCfen := args[1]

		currentState, err := cfen.ParseCFEN(currentCfen)
		if err != nil {
			return fmt.Errorf("invalid current CFEN: %w", err)
		}
		targetState, err := cfen.ParseCFEN(targetCfen)
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %w", err)
		}

		currentCube, err := currentState.ToCube()
		if err != nil {
			return fmt.Errorf("failed to convert current CFEN to cube: %w", err)
		}

		matches, err := targetState.MatchesCube(currentCube)
		if err != nil {
			return fmt.Errorf("failed to match: %w", err)
		}

		if matches {
			fmt.Println("MATCH: current state matches target pattern")
		} else {
			fmt.Println("NO MATCH: current state does not match target pattern")
		}
		fmt.Printf("Current: %s\n", currentCfen)
		fmt.Printf("Target:  %s\n", targetCfen)

		return nil
	},
}

func init() {
	parseCfenCmd.Flags().Bool("color", false, "Use colored output")

	generateCfenCmd.Flags().String("start", "", "Starting CFEN state (default: solved)")

	verifyCfenCmd.Flags().String("target", "", "Target CFEN pattern (required)")
	verifyCfenCmd.Flags().Bool("verbose", false, "Show detailed comparison")
	verifyCfenCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(parseCfenCmd)
	rootCmd.AddCommand(generateCfenCmd)
	rootCmd.AddCommand(verifyCfenCmd)
	rootCmd.AddCommand(matchCfenCmd)
}
