package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the storefront service
type Config struct {
	HTTPAddr string `mapstructure:"HTTP_ADDR"`

	DBDriver       string `mapstructure:"DB_DRIVER"`
	DBURL          string `mapstructure:"DB_URL"`
	DBAutoMigrate  bool   `mapstructure:"DB_AUTO_MIGRATE"`
	DBSerializable bool   `mapstructure:"DB_SERIALIZABLE"`
	DBMaxTxRetries int    `mapstructure:"DB_MAX_TX_RETRIES"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	TokenSecret string        `mapstructure:"TOKEN_SECRET"`
	PendingTTL  time.Duration `mapstructure:"PENDING_TTL"`

	IndexerURL        string        `mapstructure:"INDEXER_URL"`
	ShopAddress       string        `mapstructure:"SHOP_ADDRESS"`
	AssetID           uint64        `mapstructure:"ASSET_ID"`
	AssetDecimals     int32         `mapstructure:"ASSET_DECIMALS"`
	ClaimTTL          time.Duration `mapstructure:"CLAIM_TTL"`
	WithdrawURL       string        `mapstructure:"WITHDRAW_URL"`
	HTTPClientTimeout time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`

	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`
	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
}

var defaults = map[string]any{
	"HTTP_ADDR":           ":8080",
	"DB_DRIVER":           "postgres",
	"DB_URL":              "",
	"DB_AUTO_MIGRATE":     true,
	"DB_SERIALIZABLE":     true,
	"DB_MAX_TX_RETRIES":   5,
	"DB_MAX_OPEN_CONNS":   50,
	"DB_MAX_IDLE_CONNS":   10,
	"TOKEN_SECRET":        "",
	"PENDING_TTL":         "30m",
	"INDEXER_URL":         "https://testnet-idx.4160.nodely.dev",
	"SHOP_ADDRESS":        "",
	"ASSET_ID":            732664447,
	"ASSET_DECIMALS":      2,
	"CLAIM_TTL":           "15m",
	"WITHDRAW_URL":        "http://localhost:3001",
	"HTTP_CLIENT_TIMEOUT": "10s",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "json",
	"LOG_FILE":            "",
	"LOG_MAX_SIZE_MB":     100,
	"LOG_MAX_BACKUPS":     5,
}

// LoadConfig reads the optional env file at path into the process
// environment and decodes the environment over the defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to decode configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects settings the service cannot start with
func (c Config) Validate() error {
	var problems []string

	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver))
	}
	if c.DBURL == "" {
		problems = append(problems, "DB_URL is required")
	}
	if c.DBMaxTxRetries < 1 {
		problems = append(problems, "DB_MAX_TX_RETRIES must be at least 1")
	}
	if len(c.TokenSecret) < 16 {
		problems = append(problems, "TOKEN_SECRET must be at least 16 bytes")
	}
	if c.PendingTTL <= 0 {
		problems = append(problems, "PENDING_TTL must be positive")
	}
	if c.ShopAddress == "" {
		problems = append(problems, "SHOP_ADDRESS is required")
	}
	if c.IndexerURL == "" {
		problems = append(problems, "INDEXER_URL is required")
	}
	if c.ClaimTTL <= 0 {
		problems = append(problems, "CLAIM_TTL must be positive")
	}
	if c.AssetDecimals < 0 || c.AssetDecimals > 18 {
		problems = append(problems, "ASSET_DECIMALS must be between 0 and 18")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
