package calorie

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramasheshasai/Calorie-Builder/internal/app"
	"github.com/ramasheshasai/Calorie-Builder/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local diary database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
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

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized diary database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
