package calorie

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramasheshasai/Calorie-Builder/internal/diary"
	"github.com/ramasheshasai/Calorie-Builder/internal/model"
	"github.com/ramasheshasai/Calorie-Builder/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile and calorie target",
}

var (
	profileAge      string
	profileHeight   string
	profileWeight   string
	profileSex      string
	profileActivity string
	profileGoal     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateProfileFlags(cmd); err != nil {
			return err
		}
		fields := map[string]string{
			"age":      profileAge,
			"height":   profileHeight,
			"weight":   profileWeight,
			"sex":      profileSex,
			"activity": profileActivity,
			"goal":     profileGoal,
		}
		return withDiary(func(d *diary.Diary) error {
			changed := 0
			for _, field := range []string{"age", "height", "weight", "sex", "activity", "goal"} {
				if !cmd.Flags().Changed(field) {
					continue
				}
				if err := d.SetProfileField(field, fields[field]); err != nil {
					return err
				}
				changed++
			}
			if changed == 0 {
				return fmt.Errorf("nothing to set; pass at least one of --age/--height/--weight/--sex/--activity/--goal")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d profile field(s)\n", changed)
			printTarget(cmd, d)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and computed daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDiary(func(d *diary.Diary) error {
			p := d.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %s\n", orUnset(p.Age))
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %s cm\n", orUnset(p.HeightCm))
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %s kg\n", orUnset(p.WeightKg))
			fmt.Fprintf(cmd.OutOrStdout(), "Sex: %s\n", orUnset(p.Sex))
			if p.Activity != 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s (x%.3g)\n", activityName(p.Activity), p.Activity)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Activity: (unset)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", orUnset(p.Goal))
			printTarget(cmd, d)
			return nil
		})
	},
}

func printTarget(cmd *cobra.Command, d *diary.Diary) {
	if target := d.Target(); target > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %d kcal\n", target)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Daily target: unknown (complete your profile first)")
	}
}

func validateProfileFlags(cmd *cobra.Command) error {
	if cmd.Flags().Changed("sex") {
		s := strings.ToLower(strings.TrimSpace(profileSex))
		if s != model.SexMale && s != model.SexFemale {
			return fmt.Errorf("invalid --sex %q (expected male or female)", profileSex)
		}
	}
	if cmd.Flags().Changed("activity") {
		if _, ok := profile.ActivityMultipliers[strings.ToLower(strings.TrimSpace(profileActivity))]; !ok {
			return fmt.Errorf("invalid --activity %q (expected %s)", profileActivity, activityLevels())
		}
	}
	if cmd.Flags().Changed("goal") {
		g := strings.ToLower(strings.TrimSpace(profileGoal))
		if g != model.GoalLose && g != model.GoalMaintain && g != model.GoalGain {
			return fmt.Errorf("invalid --goal %q (expected lose, maintain, or gain)", profileGoal)
		}
	}
	return nil
}

func activityLevels() string {
	names := make([]string, 0, len(profile.ActivityMultipliers))
	for name := range profile.ActivityMultipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func activityName(mult float64) string {
	for name, m := range profile.ActivityMultipliers {
		if m == mult {
			return name
		}
	}
	return "custom"
}

func orUnset(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(unset)"
	}
	return value
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileAge, "age", "", "Age in years")
	profileSetCmd.Flags().StringVar(&profileHeight, "height", "", "Height in cm")
	profileSetCmd.Flags().StringVar(&profileWeight, "weight", "", "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "Biological sex: male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary, moderate, or active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal: lose, maintain, or gain")
}
