package cli

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cube/internal/permute"
	"github.com/ehrlich-b/cube/internal/render"
	"github.com/ehrlich-b/cube/internal/roux"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Look up CMLL algorithms by name or case ID",
	Long: `Look up entries in the CMLL (corners of the last layer) algorithm
catalogue by name or case ID.

Examples:
  cube lookup sune
  cube lookup cmll-j
  cube lookup --all`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		listAll, _ := cmd.Flags().GetBool("all")
		preview, _ := cmd.Flags().GetBool("preview")
		useColor, _ := cmd.Flags().GetBool("color")

		var results []roux.CMLLAlgorithm
		if listAll {
			results = roux.CMLLAlgorithms()
			fmt.Println("All CMLL algorithms in the catalogue:")
		} else if query != "" {
			results = roux.LookupCMLL(query)
			fmt.Printf("CMLL algorithms matching %q:\n\n", query)
		} else {
			fmt.Println("Please provide a query or use --all")
			fmt.Println("\nExample: cube lookup sune")
			fmt.Println("         cube lookup --all")
			return
		}

		if len(results) == 0 {
			fmt.Println("No algorithms found.")
			return
		}

		for i, alg := range results {
			if i > 0 {
				fmt.Println(strings.Repeat("-", 50))
			}
			fmt.Printf("%s - %s\n", alg.CaseID, alg.Name)
			fmt.Printf("Moves: %s\n", alg.Moves)
			fmt.Printf("Description: %s\n", alg.Description)

			if preview {
				fmt.Println("\nPreview (applied to solved cube):")
				previewAlgorithm(alg.Moves, useColor)
			}
		}

		if len(results) > 1 {
			fmt.Printf("\nFound %d algorithms.\n", len(results))
		}
	},
}

func previewAlgorithm(moves string, useColor bool) {
	seq, err := parseMovesOrPrintError(moves)
	if err != nil {
		return
	}
	result := permute.FromMoveSequence(seq)
	c := render.Render(result)

	fmt.Println("Up face after algorithm:")
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			color := c.Faces[4][row][col]
			if useColor {
				fmt.Print(color.ColoredString())
			} else {
				fmt.Print(color.String())
			}
			fmt.Print(" ")
		}
		fmt.Println()
	}
}

func init() {
	lookupCmd.Flags().BoolP("all", "a", false, "List all CMLL algorithms")
	lookupCmd.Flags().Bool("color", false, "Use colored output")
	lookupCmd.Flags().Bool("preview", false, "Show preview of algorithm effect")
}
