package model

import "time"

// MealSlot is the fixed four-valued category a FoodEntry is logged under.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealSnack     MealSlot = "snack"
	MealDinner    MealSlot = "dinner"
)

// MealSlots lists every slot in display order.
var MealSlots = []MealSlot{MealBreakfast, MealLunch, MealSnack, MealDinner}

func (m MealSlot) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealSnack, MealDinner:
		return true
	}
	return false
}

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// UserProfile holds the biometric inputs the daily calorie target is
// derived from. Age, height, and weight stay raw strings: the persisted
// document stores them as entered, and malformed values coerce to zero
// at computation time rather than failing.
type UserProfile struct {
	Age      string  `json:"age"`
	HeightCm string  `json:"height"`
	WeightKg string  `json:"weight"`
	Sex      string  `json:"gender"`
	Activity float64 `json:"activity"`
	Goal     string  `json:"goal"`
}

// FoodRecord is a single lookup result. All nutrient values are per
// 100 g of the named food; scaling to a consumed quantity is the
// caller's job.
type FoodRecord struct {
	FDCID    int64
	Name     string
	Brand    string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// Macros is the energy/protein/carb/fat quad for some food quantity.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Add returns the component-wise sum of two macro quads.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fats:     m.Fats + o.Fats,
	}
}

// FoodEntry is one committed food quantity in a day's log. Macro values
// are already scaled to QuantityG and are never recomputed afterward.
type FoodEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Meal      MealSlot  `json:"meal"`
	QuantityG float64   `json:"quantity"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
	Timestamp time.Time `json:"timestamp"`
}

// Macros returns the entry's stored (already scaled) macro quad.
func (e FoodEntry) Macros() Macros {
	return Macros{Calories: e.Calories, Protein: e.Protein, Carbs: e.Carbs, Fats: e.Fats}
}

// DailyLog is one calendar day of entries. Date (YYYY-MM-DD) is the sole
// identity key; TargetCalories is snapshotted when the log is first
// created and never changes retroactively.
type DailyLog struct {
	Date           string      `json:"date"`
	Foods          []FoodEntry `json:"foods"`
	TargetCalories int         `json:"targetCalories"`
}

// DiaryStore is the entire durable state: the profile plus every daily
// log, unique by date. It is read and written as one document.
type DiaryStore struct {
	Profile UserProfile `json:"profile"`
	Logs    []DailyLog  `json:"logs"`
}

// Log returns the log for date, or nil when that day has none. The
// pointer aims into s.Logs' backing array, so it stays valid on a
// copied DiaryStore value.
func (s DiaryStore) Log(date string) *DailyLog {
	for i := range s.Logs {
		if s.Logs[i].Date == date {
			return &s.Logs[i]
		}
	}
	return nil
}

// DateKey formats t as the calendar-date identity key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
