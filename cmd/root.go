package cmd

import (
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	envFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:          "storefront",
	Short:        "Auction and fixed-price storefront with wallet and on-chain settlement",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(envFile)
		if err != nil {
			return err
		}
		err = utils.ConfigureLogger(utils.LogOptions{
			Level:      loaded.LogLevel,
			Format:     loaded.LogFormat,
			File:       loaded.LogFile,
			MaxSizeMB:  loaded.LogMaxSizeMB,
			MaxBackups: loaded.LogMaxBackups,
		})
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment before configuration is read")
}

// Execute runs the command selected on the command line
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.Fatal("storefront: command failed", map[string]any{"error": err.Error()})
	}
}

func openDB() (*gorm.DB, error) {
	return database.Connect(database.Options{
		Driver:       cfg.DBDriver,
		URL:          cfg.DBURL,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
}
