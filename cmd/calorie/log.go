package calorie

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramasheshasai/Calorie-Builder/internal/diary"
	"github.com/ramasheshasai/Calorie-Builder/internal/model"
	"github.com/ramasheshasai/Calorie-Builder/internal/search"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage food diary entries",
}

var (
	logQuery string
	logGrams float64
	logMeal  string
	logDate  string
	logPick  int
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Look up a food and add it to a day's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseMealSlot(logMeal)
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		if logPick < 1 {
			return fmt.Errorf("--pick must be >= 1")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		searcher := search.New(usdaClient(cfg))
		records, err := searcher.Search(cmd.Context(), logQuery)
		if err != nil {
			// Lookup failures abandon the action: nothing is written.
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No foods found matching your search; nothing logged")
			return nil
		}
		if logPick > len(records) {
			return fmt.Errorf("--pick %d is out of range; the search returned %d result(s)", logPick, len(records))
		}
		rec := records[logPick-1]

		return withDiaryConfig(cfg, func(d *diary.Diary) error {
			entry, err := d.AddEntry(date, slot, rec, logGrams)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.0fg of %s (%.0f kcal)\n", entry.Meal, entry.QuantityG, foodLabel(rec), entry.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Entry ID: %s\n", entry.ID)
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove an entry from a day's log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withDiary(func(d *diary.Diary) error {
			d.RemoveEntry(date, strings.TrimSpace(args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s from %s (if it existed)\n", args[0], date)
			return nil
		})
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's log grouped by meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withDiary(func(d *diary.Diary) error {
			state := d.Store()
			log := state.Log(date)
			if log == nil || len(log.Foods) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries for %s\n", date)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", date)
			for _, slot := range model.MealSlots {
				printMealSection(cmd, log, slot)
			}

			totals := diary.DayTotals(log)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
				totals.Calories, totals.Protein, totals.Carbs, totals.Fats)
			if log.TargetCalories > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Target: %d kcal (%.0f%%)\n", log.TargetCalories, diary.Progress(log))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Target: not set for this day")
			}
			return nil
		})
	},
}

func printMealSection(cmd *cobra.Command, log *model.DailyLog, slot model.MealSlot) {
	var any bool
	for _, f := range log.Foods {
		if f.Meal == slot {
			any = true
			break
		}
	}
	if !any {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%.0f kcal):\n", titleSlot(slot), diary.MealTotals(log, slot))
	for _, f := range log.Foods {
		if f.Meal != slot {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\t%.0fg\t%.0f kcal\tP %.1f\tC %.1f\tF %.1f\t%s\n",
			f.ID, f.Name, f.QuantityG, f.Calories, f.Protein, f.Carbs, f.Fats,
			f.Timestamp.Local().Format("15:04"))
	}
}

func titleSlot(slot model.MealSlot) string {
	s := string(slot)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logRemoveCmd, logShowCmd)

	logAddCmd.Flags().StringVar(&logQuery, "query", "", "Food to search for")
	logAddCmd.Flags().Float64Var(&logGrams, "grams", 0, "Quantity consumed in grams")
	logAddCmd.Flags().StringVar(&logMeal, "meal", "", "Meal slot: breakfast, lunch, snack, or dinner")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logAddCmd.Flags().IntVar(&logPick, "pick", 1, "Which search result to log (1 = top match)")
	_ = logAddCmd.MarkFlagRequired("query")
	_ = logAddCmd.MarkFlagRequired("grams")
	_ = logAddCmd.MarkFlagRequired("meal")

	logRemoveCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logShowCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
}
