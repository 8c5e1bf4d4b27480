package diary_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/ramasheshasai/Calorie-Builder/internal/diary"
	"github.com/ramasheshasai/Calorie-Builder/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func entry(id string, slot model.MealSlot, m model.Macros) model.FoodEntry {
	return model.FoodEntry{
		ID:       id,
		Name:     id,
		Meal:     slot,
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fats:     m.Fats,
	}
}

func TestDayTotalsEmptyLog(t *testing.T) {
	t.Parallel()

	if got := diary.DayTotals(nil); got != (model.Macros{}) {
		t.Fatalf("expected zero totals for nil log, got %+v", got)
	}
	if got := diary.DayTotals(&model.DailyLog{Date: "2026-08-29"}); got != (model.Macros{}) {
		t.Fatalf("expected zero totals for empty log, got %+v", got)
	}
}

func TestDayTotalsOrderIndependent(t *testing.T) {
	t.Parallel()

	log := &model.DailyLog{Date: "2026-08-29", Foods: []model.FoodEntry{
		entry("a", model.MealBreakfast, model.Macros{Calories: 155.6, Protein: 5.3, Carbs: 27.1, Fats: 2.6}),
		entry("b", model.MealLunch, model.Macros{Calories: 247.5, Protein: 46.5, Carbs: 0, Fats: 5.4}),
		entry("c", model.MealDinner, model.Macros{Calories: 612.2, Protein: 30.9, Carbs: 55.5, Fats: 28.1}),
		entry("d", model.MealSnack, model.Macros{Calories: 89, Protein: 1.1, Carbs: 22.8, Fats: 0.3}),
	}}
	want := diary.DayTotals(log)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := &model.DailyLog{Date: log.Date, Foods: append([]model.FoodEntry(nil), log.Foods...)}
		r.Shuffle(len(shuffled.Foods), func(a, b int) {
			shuffled.Foods[a], shuffled.Foods[b] = shuffled.Foods[b], shuffled.Foods[a]
		})
		got := diary.DayTotals(shuffled)
		if !almostEqual(got.Calories, want.Calories) || !almostEqual(got.Protein, want.Protein) ||
			!almostEqual(got.Carbs, want.Carbs) || !almostEqual(got.Fats, want.Fats) {
			t.Fatalf("permuted totals diverged: got %+v want %+v", got, want)
		}
	}
}

func TestDayTotalsAdditiveUnderInsertion(t *testing.T) {
	t.Parallel()

	log := &model.DailyLog{Date: "2026-08-29", Foods: []model.FoodEntry{
		entry("a", model.MealBreakfast, model.Macros{Calories: 100, Protein: 10, Carbs: 20, Fats: 5}),
	}}
	before := diary.DayTotals(log)

	extra := entry("b", model.MealSnack, model.Macros{Calories: 89, Protein: 1.1, Carbs: 22.8, Fats: 0.3})
	log.Foods = append(log.Foods, extra)
	after := diary.DayTotals(log)

	want := before.Add(extra.Macros())
	if !almostEqual(after.Calories, want.Calories) || !almostEqual(after.Protein, want.Protein) ||
		!almostEqual(after.Carbs, want.Carbs) || !almostEqual(after.Fats, want.Fats) {
		t.Fatalf("totals not additive: got %+v want %+v", after, want)
	}
}

func TestMealTotals(t *testing.T) {
	t.Parallel()

	log := &model.DailyLog{Date: "2026-08-29", Foods: []model.FoodEntry{
		entry("a", model.MealBreakfast, model.Macros{Calories: 150}),
		entry("b", model.MealBreakfast, model.Macros{Calories: 90}),
		entry("c", model.MealDinner, model.Macros{Calories: 600}),
	}}
	if got := diary.MealTotals(log, model.MealBreakfast); !almostEqual(got, 240) {
		t.Fatalf("expected breakfast total 240, got %v", got)
	}
	if got := diary.MealTotals(log, model.MealLunch); got != 0 {
		t.Fatalf("expected lunch total 0, got %v", got)
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	log := &model.DailyLog{Date: "2026-08-29", TargetCalories: 2000, Foods: []model.FoodEntry{
		entry("a", model.MealLunch, model.Macros{Calories: 500}),
	}}
	if got := diary.Progress(log); !almostEqual(got, 25) {
		t.Fatalf("expected 25%%, got %v", got)
	}
	log.TargetCalories = 0
	if got := diary.Progress(log); got != 0 {
		t.Fatalf("expected 0%% with no target, got %v", got)
	}
}

func dayLog(date string, calories float64) model.DailyLog {
	return model.DailyLog{Date: date, Foods: []model.FoodEntry{
		entry(date, model.MealLunch, model.Macros{Calories: calories, Protein: 100, Carbs: 200, Fats: 60}),
	}}
}

func TestWeeklyAveragesOverDaysLogged(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	logs := []model.DailyLog{
		dayLog(model.DateKey(today), 2000),
		dayLog(model.DateKey(today.AddDate(0, 0, -2)), 1800),
		dayLog(model.DateKey(today.AddDate(0, 0, -5)), 2200),
		// Outside the trailing 7-day window; must not contribute.
		dayLog(model.DateKey(today.AddDate(0, 0, -7)), 9000),
	}

	stats := diary.Weekly(logs, today)
	if stats.DaysLogged != 3 {
		t.Fatalf("expected 3 days logged, got %d", stats.DaysLogged)
	}
	if !almostEqual(stats.AvgCalories, 2000) {
		t.Fatalf("expected avg calories 2000 (divided by days logged, not 7), got %v", stats.AvgCalories)
	}
	if !almostEqual(stats.AvgProtein, 100) || !almostEqual(stats.AvgCarbs, 200) || !almostEqual(stats.AvgFats, 60) {
		t.Fatalf("unexpected macro averages: %+v", stats)
	}
}

func TestWeeklyEmptyWindow(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	logs := []model.DailyLog{dayLog(model.DateKey(today.AddDate(0, 0, -10)), 2000)}
	if stats := diary.Weekly(logs, today); stats != (diary.WeeklyStats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	logs := []model.DailyLog{
		dayLog(model.DateKey(today), 2000),
		dayLog(model.DateKey(today.AddDate(0, 0, -1)), 1800),
		dayLog(model.DateKey(today.AddDate(0, 0, -2)), 2200),
		// Gap at -3 ends the walk even though -4 has a log.
		dayLog(model.DateKey(today.AddDate(0, 0, -4)), 2100),
	}
	if got := diary.Streak(logs, today); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestStreakMissingTodayDoesNotBreak(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	logs := []model.DailyLog{dayLog(model.DateKey(today.AddDate(0, 0, -1)), 1800)}
	if got := diary.Streak(logs, today); got != 1 {
		t.Fatalf("expected streak 1 when only yesterday is logged, got %d", got)
	}
}

func TestStreakGapAtYesterdayIsZero(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	logs := []model.DailyLog{dayLog(model.DateKey(today.AddDate(0, 0, -2)), 1800)}
	if got := diary.Streak(logs, today); got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestStreakEmptyLogDoesNotCount(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	logs := []model.DailyLog{
		// Today's log exists but has no foods: it neither counts nor
		// breaks the chain, so yesterday still contributes.
		{Date: model.DateKey(today), TargetCalories: 2000},
		dayLog(model.DateKey(today.AddDate(0, 0, -1)), 1800),
	}
	if got := diary.Streak(logs, today); got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}
}

func TestStreakCapsAtHorizon(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	logs := make([]model.DailyLog, 0, 40)
	for i := 0; i < 40; i++ {
		logs = append(logs, dayLog(model.DateKey(today.AddDate(0, 0, -i)), 2000))
	}
	if got := diary.Streak(logs, today); got != 30 {
		t.Fatalf("expected streak capped at 30, got %d", got)
	}
}
