package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ehrlich-b/cube/internal/roux"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Build and inspect the Roux solver's precomputed signature tables",
	Long: `Table forces every named Roux step's signature graph and Dijkstra solver
to build, then reports how many signatures each table holds and how long it
took to build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		stats := roux.BuildTables()

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		total := 0
		for _, s := range stats {
			fmt.Printf("%-16s %6d signatures   %s\n", s.Name, s.Signatures, s.BuildTime)
			total += s.Signatures
		}
		fmt.Printf("\n%d tables, %d signatures total\n", len(stats), total)
		return nil
	},
}

func init() {
	tableCmd.Flags().Bool("json", false, "Output stats as JSON")
	rootCmd.AddCommand(tableCmd)
}
