package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/render"
	"github.com/ehrlich-b/cube/internal/roux"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [scramble]",
	Short: "Analyze a cube state and report Roux solving progress",
	Long: `Analyze runs the Roux solver against a scramble and reports how many
moves each named step contributed, revealing which parts of the solve were
already satisfied going in.

Examples:
  cube analyze ""                # Analyze a solved cube
  cube analyze "R U R' U'"       # Analyze after a scramble
  cube analyze "M' U M"          # A scramble that leaves some steps free`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		verbose, _ := cmd.Flags().GetBool("verbose")

		start := permute.Identity()
		if scramble != "" {
			moves, err := parseMovesOrPrintError(scramble)
			if err != nil {
				return fmt.Errorf("failed to parse scramble: %w", err)
			}
			start = permute.FromMoveSequence(moves)
			fmt.Printf("Analyzing cube after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Analyzing solved cube state:")
		}

		if verbose {
			fmt.Println(render.Render(start).StringWithColor(true))
		}

		solved, err := roux.Solve(start)
		if err != nil {
			return fmt.Errorf("failed to solve: %w", err)
		}

		fmt.Println("ROUX PROGRESS:")
		for _, step := range solved.Steps.Children() {
			moves := step.MoveSequence()
			status := "solved"
			if moves.Len() > 0 {
				status = fmt.Sprintf("%d moves", moves.Len())
			}
			fmt.Printf("  %-16s %s\n", step.Reason.StepName, status)
			if verbose && moves.Len() > 0 {
				fmt.Printf("    %s\n", moves.String())
			}
		}

		total := solved.MoveSequence()
		fmt.Printf("\nTotal solution: %d moves\n", total.Len())

		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolP("verbose", "v", false, "Show cube state and per-step moves")
	rootCmd.AddCommand(analyzeCmd)
}
