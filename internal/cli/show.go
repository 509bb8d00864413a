package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show the cube state after applying a scramble",
	Long: `Show displays the cube state after applying a scramble.

Examples:
  cube show "R U R' U'"
  cube show "R U R' U'" --color`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		useColor, _ := cmd.Flags().GetBool("color")

		start := permute.Identity()
		if scramble != "" {
			moves, err := parseMovesOrPrintError(scramble)
			if err != nil {
				return fmt.Errorf("error parsing scramble: %w", err)
			}
			start = permute.FromMoveSequence(moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		fmt.Print(render.Render(start).StringWithColor(useColor))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use colored output")
	rootCmd.AddCommand(showCmd)
}
