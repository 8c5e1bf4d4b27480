package diary

import (
	"time"

	"github.com/ramasheshasai/Calorie-Builder/internal/model"
)

// streakHorizonDays bounds the backward streak walk.
const streakHorizonDays = 30

// WeeklyStats summarizes the trailing 7-day window. Averages are over
// days actually logged, not over the full week.
type WeeklyStats struct {
	AvgCalories float64
	AvgProtein  float64
	AvgCarbs    float64
	AvgFats     float64
	DaysLogged  int
}

// DayTotals sums the macro fields of every entry in log. Nil or empty
// logs total zero. The fold is order-independent: permuting entries
// changes nothing but floating-point association.
func DayTotals(log *model.DailyLog) model.Macros {
	var totals model.Macros
	if log == nil {
		return totals
	}
	for _, f := range log.Foods {
		totals = totals.Add(f.Macros())
	}
	return totals
}

// MealTotals returns the calorie subtotal of one meal slot.
func MealTotals(log *model.DailyLog, slot model.MealSlot) float64 {
	if log == nil {
		return 0
	}
	var sum float64
	for _, f := range log.Foods {
		if f.Meal == slot {
			sum += f.Calories
		}
	}
	return sum
}

// Progress returns consumed calories as a percentage of the day's
// target snapshot, 0 when no target was recorded.
func Progress(log *model.DailyLog) float64 {
	if log == nil || log.TargetCalories == 0 {
		return 0
	}
	return DayTotals(log).Calories / float64(log.TargetCalories) * 100
}

// Weekly computes averages over the 7 calendar dates ending at today
// inclusive. Only logs inside the window contribute, and the divisor is
// the count of logs found.
func Weekly(logs []model.DailyLog, today time.Time) WeeklyStats {
	window := make(map[string]bool, 7)
	for i := 0; i < 7; i++ {
		window[model.DateKey(today.AddDate(0, 0, -i))] = true
	}

	var sums model.Macros
	var days int
	for i := range logs {
		if !window[logs[i].Date] {
			continue
		}
		sums = sums.Add(DayTotals(&logs[i]))
		days++
	}
	if days == 0 {
		return WeeklyStats{}
	}
	div := float64(days)
	return WeeklyStats{
		AvgCalories: sums.Calories / div,
		AvgProtein:  sums.Protein / div,
		AvgCarbs:    sums.Carbs / div,
		AvgFats:     sums.Fats / div,
		DaysLogged:  days,
	}
}

// Streak walks backward from today for up to 30 days, counting
// consecutive days that have a log with at least one entry. A missing
// today does not break the chain on the first step; any later gap ends
// the walk.
func Streak(logs []model.DailyLog, today time.Time) int {
	byDate := make(map[string]*model.DailyLog, len(logs))
	for i := range logs {
		byDate[logs[i].Date] = &logs[i]
	}

	todayKey := model.DateKey(today)
	streak := 0
	for i := 0; i < streakHorizonDays; i++ {
		key := model.DateKey(today.AddDate(0, 0, -i))
		if log, ok := byDate[key]; ok && len(log.Foods) > 0 {
			streak++
		} else if key != todayKey {
			break
		}
	}
	return streak
}
