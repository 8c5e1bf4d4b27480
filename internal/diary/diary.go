// Package diary owns the food-diary state: the persisted profile and
// per-day logs, the mutations over them, and the derived statistics.
package diary

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ramasheshasai/Calorie-Builder/internal/model"
	"github.com/ramasheshasai/Calorie-Builder/internal/profile"
	"github.com/ramasheshasai/Calorie-Builder/internal/store"
	"github.com/ramasheshasai/Calorie-Builder/pkg/logger"
)

// Diary is the explicit state container over the persisted DiaryStore.
// Every mutation funnels through a named operation and is followed by a
// whole-document persist. A failed persist is logged and the in-memory
// state kept; durable storage may then lag until the next save.
type Diary struct {
	repo  store.Repository
	log   *logger.Logger
	now   func() time.Time
	state model.DiaryStore
}

// Open loads the persisted document into a new Diary. A read failure is
// logged and the diary starts from an empty store.
func Open(repo store.Repository, log *logger.Logger) *Diary {
	d := &Diary{repo: repo, log: log, now: time.Now}
	state, err := repo.Load()
	if err != nil {
		log.Errorw("failed to load diary, continuing with empty state", "error", err)
		state = model.DiaryStore{}
	}
	d.state = state
	return d
}

// Store returns a snapshot of the current state. Logs share backing
// arrays with the live state; callers must treat the snapshot as
// read-only.
func (d *Diary) Store() model.DiaryStore {
	return d.state
}

// Profile returns the current user profile.
func (d *Diary) Profile() model.UserProfile {
	return d.state.Profile
}

// Target returns the daily calorie target for the current profile.
func (d *Diary) Target() int {
	return profile.DailyTarget(d.state.Profile)
}

// SetProfileField replaces one profile attribute and persists
// immediately. No cross-field validation: implausible values propagate
// into an implausible but defined calorie target.
func (d *Diary) SetProfileField(field, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "age":
		d.state.Profile.Age = value
	case "height":
		d.state.Profile.HeightCm = value
	case "weight":
		d.state.Profile.WeightKg = value
	case "sex", "gender":
		d.state.Profile.Sex = strings.ToLower(value)
	case "activity":
		if mult, ok := profile.ActivityMultipliers[strings.ToLower(value)]; ok {
			d.state.Profile.Activity = mult
		} else {
			d.state.Profile.Activity = profile.Number(value)
		}
	case "goal":
		d.state.Profile.Goal = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown profile field %q", field)
	}
	d.persist()
	return nil
}

// AddEntry scales rec's per-100g macros to grams, appends the entry to
// date's log, and persists. A new date snapshots the current daily
// target; the snapshot never changes afterward.
func (d *Diary) AddEntry(date string, slot model.MealSlot, rec model.FoodRecord, grams float64) (model.FoodEntry, error) {
	if !slot.Valid() {
		return model.FoodEntry{}, fmt.Errorf("invalid meal slot %q", slot)
	}
	if strings.TrimSpace(rec.Name) == "" {
		return model.FoodEntry{}, fmt.Errorf("food name is required")
	}

	factor := grams / 100
	entry := model.FoodEntry{
		ID:        uuid.NewString(),
		Name:      rec.Name,
		Meal:      slot,
		QuantityG: grams,
		Calories:  rec.Calories * factor,
		Protein:   rec.Protein * factor,
		Carbs:     rec.Carbs * factor,
		Fats:      rec.Fats * factor,
		Timestamp: d.now(),
	}

	log := d.state.Log(date)
	if log == nil {
		d.state.Logs = append(d.state.Logs, model.DailyLog{
			Date:           date,
			TargetCalories: profile.DailyTarget(d.state.Profile),
		})
		log = &d.state.Logs[len(d.state.Logs)-1]
	}
	log.Foods = append(log.Foods, entry)

	d.persist()
	return entry, nil
}

// RemoveEntry deletes the entry with id from date's log. Unknown date
// or id is a no-op; the store is persisted either way.
func (d *Diary) RemoveEntry(date, id string) {
	if log := d.state.Log(date); log != nil {
		kept := log.Foods[:0]
		for _, f := range log.Foods {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		log.Foods = kept
	}
	d.persist()
}

func (d *Diary) persist() {
	if err := d.repo.Save(d.state); err != nil {
		d.log.Errorw("failed to persist diary, in-memory state retained", "error", err)
	}
}
