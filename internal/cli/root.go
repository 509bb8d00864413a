package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A flexible Rubik's cube solver",
	Long: `Cube is a Rubik's cube solver that solves a scrambled 3x3x3 cube step by
step with the Roux method.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(serveCmd)
}
