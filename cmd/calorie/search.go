package calorie

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramasheshasai/Calorie-Builder/internal/model"
	"github.com/ramasheshasai/Calorie-Builder/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the USDA food database",
	Long:  "Searches the USDA FoodData Central database and prints up to 10 matches with nutrients per 100 g.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		searcher := search.New(usdaClient(cfg))
		records, err := searcher.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printSearchResults(cmd, records)
		return nil
	},
}

func printSearchResults(cmd *cobra.Command, records []model.FoodRecord) {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No foods found matching your search")
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "#\tNAME\tKCAL\tP\tC\tF (per 100g)")
	for i, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
			i+1, foodLabel(rec), rec.Calories, rec.Protein, rec.Carbs, rec.Fats)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
