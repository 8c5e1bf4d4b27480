package calorie

import (
	"fmt"
	"strings"
	"time"

	"github.com/ramasheshasai/Calorie-Builder/internal/app"
	"github.com/ramasheshasai/Calorie-Builder/internal/config"
	"github.com/ramasheshasai/Calorie-Builder/internal/diary"
	"github.com/ramasheshasai/Calorie-Builder/internal/model"
	"github.com/ramasheshasai/Calorie-Builder/internal/provider/usda"
	"github.com/ramasheshasai/Calorie-Builder/internal/store"
	"github.com/ramasheshasai/Calorie-Builder/pkg/logger"
)

func loadConfig() (*config.Config, error) {
	path, err := app.DefaultConfigPath()
	if err != nil {
		// Environment-only configuration still works.
		path = ""
	}
	return config.Load(path)
}

func resolveDBPath(cfg *config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

// withDiary opens the persisted diary, runs fn against it, and closes
// the database afterward.
func withDiary(fn func(d *diary.Diary) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return withDiaryConfig(cfg, fn)
}

func withDiaryConfig(cfg *config.Config, fn func(d *diary.Diary) error) error {
	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDir(path); err != nil {
		return err
	}
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.ApplyMigrations(db); err != nil {
		return err
	}
	repo := store.NewRepository(&store.SQLiteKV{DB: db})
	return fn(diary.Open(repo, logger.New(cfg.LogLevel)))
}

func usdaClient(cfg *config.Config) *usda.Client {
	return &usda.Client{APIKey: cfg.USDAAPIKey, BaseURL: cfg.USDABaseURL}
}

func parseDateOrToday(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return model.DateKey(time.Now()), nil
	}
	if _, err := time.ParseInLocation("2006-01-02", value, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

func parseMealSlot(value string) (model.MealSlot, error) {
	slot := model.MealSlot(strings.ToLower(strings.TrimSpace(value)))
	if !slot.Valid() {
		return "", fmt.Errorf("invalid --meal %q (expected breakfast, lunch, snack, or dinner)", value)
	}
	return slot, nil
}

func foodLabel(rec model.FoodRecord) string {
	if rec.Brand != "" {
		return fmt.Sprintf("%s (%s)", rec.Name, rec.Brand)
	}
	return rec.Name
}
