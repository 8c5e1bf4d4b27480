package profile

import (
	"math"
	"strconv"
	"strings"

	"github.com/ramasheshasai/Calorie-Builder/internal/model"
)

// ActivityMultipliers maps activity level names to their TDEE
// multiplier. Single source of truth for valid levels; also used for
// CLI input validation.
var ActivityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"moderate":  1.55,
	"active":    1.725,
}

const (
	loseAdjustment = -500
	gainAdjustment = 500
)

// Number coerces a raw text field to a float. Malformed or empty input
// degrades to 0 instead of erroring.
func Number(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Complete reports whether every profile field is present. An incomplete
// profile is not an error; it just computes a target of 0.
func Complete(p model.UserProfile) bool {
	return strings.TrimSpace(p.Age) != "" &&
		strings.TrimSpace(p.HeightCm) != "" &&
		strings.TrimSpace(p.WeightKg) != "" &&
		p.Sex != "" &&
		p.Activity != 0 &&
		p.Goal != ""
}

// DailyTarget computes the daily calorie target from the profile using
// the Mifflin-St Jeor formula:
//
//	BMR = 10*weight + 6.25*height - 5*age + (5 male / -161 female)
//	target = round(BMR * activity + goal adjustment)
//
// Returns 0 for an incomplete profile. Pure; callers must re-invoke on
// every field change rather than cache the result.
func DailyTarget(p model.UserProfile) int {
	if !Complete(p) {
		return 0
	}

	bmr := 10*Number(p.WeightKg) + 6.25*Number(p.HeightCm) - 5*Number(p.Age)
	if p.Sex == model.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	target := bmr * p.Activity
	switch p.Goal {
	case model.GoalLose:
		target += loseAdjustment
	case model.GoalGain:
		target += gainAdjustment
	}
	return int(math.Round(target))
}
