package cmd

import (
	"storefront/internal/database"
	"storefront/utils"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		utils.Info("schema migrated", map[string]any{"driver": cfg.DBDriver})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
