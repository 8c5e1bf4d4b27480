package calorie

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "caloriebuilder",
	Short: "caloriebuilder tracks food, macros, and calorie targets from your terminal",
	Long:  "caloriebuilder is a local-first food diary: set up a profile, look up foods in the USDA database, log them against meal slots, and follow daily totals, weekly averages, and your logging streak.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the diary database")
}
