package calorie

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramasheshasai/Calorie-Builder/internal/diary"
)

var statsDate string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show daily totals, weekly averages, and the logging streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(statsDate)
		if err != nil {
			return err
		}
		today, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", statsDate)
		}

		return withDiary(func(d *diary.Diary) error {
			state := d.Store()
			log := state.Log(date)

			totals := diary.DayTotals(log)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", date)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
				totals.Calories, totals.Protein, totals.Carbs, totals.Fats)
			if log != nil && log.TargetCalories > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Progress: %.0f%% of %d kcal target\n", diary.Progress(log), log.TargetCalories)
			}

			weekly := diary.Weekly(state.Logs, today)
			fmt.Fprintf(cmd.OutOrStdout(), "Last 7 days: %d/7 days logged\n", weekly.DaysLogged)
			if weekly.DaysLogged > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Averages: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
					weekly.AvgCalories, weekly.AvgProtein, weekly.AvgCarbs, weekly.AvgFats)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s)\n", diary.Streak(state.Logs, today))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsDate, "date", "", "Date YYYY-MM-DD (default today)")
}
