package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/action"
	"github.com/ehrlich-b/cube/internal/cubelet"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long:  `Generate a random scramble, never repeating the same face turn twice in a row.`,
	Run: func(cmd *cobra.Command, args []string) {
		length, _ := cmd.Flags().GetInt("length")
		act := action.Shuffled(cubelet.RandomSequence(length))
		fmt.Println(act.MoveSequence().String())
	},
}

func init() {
	scrambleCmd.Flags().IntP("length", "l", 25, "Number of turns to generate")
}
