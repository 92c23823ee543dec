package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server      ServerConfig
	MongoDB     MongoDBConfig
	AI          AIConfig
	Sheets      SheetsConfig
	Maintenance MaintenanceConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port     string
	LogLevel string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// AIConfig holds settings for LLM providers. The key is optional; without it
// listing extraction and commentary are disabled.
type AIConfig struct {
	AnthropicKey string
}

// SheetsConfig contains configuration for the optional spreadsheet export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// MaintenanceConfig holds settings for the nightly re-derivation sweep.
type MaintenanceConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     getenvWithDefault("APP_PORT", "8080"),
			LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "rendite"),
		},
		AI: AIConfig{
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
		},
		Maintenance: MaintenanceConfig{
			CronSchedule: getenvWithDefault("REDERIVE_CRON_SCHEDULE", "0 3 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Europe/Berlin"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. The AI
// and Sheets integrations are optional but must be configured completely when
// enabled.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when GOOGLE_SHEET_EXPORT_ID is set")
	}

	if c.Maintenance.CronSchedule == "" {
		return errors.New("REDERIVE_CRON_SCHEDULE must be provided")
	}
	if c.Maintenance.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

// SheetsEnabled reports whether the export integration is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
