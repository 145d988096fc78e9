package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Store backend selectors accepted in STORE_BACKEND.
const (
	BackendMongo     = "mongo"
	BackendRecordAPI = "recordapi"
	BackendMemory    = "memory"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	MongoDB   MongoDBConfig
	RecordAPI RecordAPIConfig
	Backup    BackupConfig
	Sheets    SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StoreConfig selects which record store backend the service runs against.
type StoreConfig struct {
	Backend string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// RecordAPIConfig holds settings for the local-first record API backend.
type RecordAPIConfig struct {
	BaseURL string
	Token   string
}

// BackupConfig holds settings for scheduled and on-demand backups.
type BackupConfig struct {
	Dir          string
	CronSchedule string
	Timezone     string
	User         string
}

// SheetsConfig contains configuration for the optional Google Sheets backup
// log. Both fields empty disables the log.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
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
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Store: StoreConfig{
			Backend: getenvWithDefault("STORE_BACKEND", BackendMongo),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "tcn_fieldbook"),
		},
		RecordAPI: RecordAPIConfig{
			BaseURL: os.Getenv("RECORD_API_URL"),
			Token:   os.Getenv("RECORD_API_TOKEN"),
		},
		Backup: BackupConfig{
			Dir:          getenvWithDefault("BACKUP_DIR", "backups"),
			CronSchedule: getenvWithDefault("BACKUP_CRON_SCHEDULE", "0 1 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Ho_Chi_Minh"),
			User:         getenvWithDefault("BACKUP_USER", "scheduler@tcn"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LOG_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Store.Backend {
	case BackendMongo:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must be provided")
		}
	case BackendRecordAPI:
		if c.RecordAPI.BaseURL == "" {
			return errors.New("RECORD_API_URL must be provided")
		}
	case BackendMemory:
		// Nothing to validate; the memory backend starts empty.
	default:
		return fmt.Errorf("STORE_BACKEND must be one of %s, %s, %s", BackendMongo, BackendRecordAPI, BackendMemory)
	}

	if c.Backup.Dir == "" {
		return errors.New("BACKUP_DIR must be provided")
	}

	if c.Backup.CronSchedule == "" {
		return errors.New("BACKUP_CRON_SCHEDULE must be provided")
	}

	if c.Backup.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when GOOGLE_SHEET_LOG_ID is set")
	}

	return nil
}

// SheetsEnabled reports whether the backup log spreadsheet is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
