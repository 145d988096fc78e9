package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendMemory)

	cfg, err := Load("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "backups", cfg.Backup.Dir)
	assert.Equal(t, "0 1 * * *", cfg.Backup.CronSchedule)
	assert.False(t, cfg.SheetsEnabled())
}

func TestValidate_Backends(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			Backup: BackupConfig{Dir: "backups", CronSchedule: "0 1 * * *", Timezone: "UTC"},
		}
	}

	cfg := base()
	cfg.Store.Backend = BackendRecordAPI
	assert.Error(t, cfg.Validate(), "record api backend needs a base url")

	cfg.RecordAPI.BaseURL = "http://localhost:8090"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Store.Backend = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Store.Backend = BackendMongo
	cfg.MongoDB = MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "tcn_fieldbook"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_SheetsNeedsCredentials(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "8080"},
		Store:  StoreConfig{Backend: BackendMemory},
		Backup: BackupConfig{Dir: "backups", CronSchedule: "0 1 * * *", Timezone: "UTC"},
		Sheets: SheetsConfig{SpreadsheetID: "sheet-id"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Sheets.CredentialsPath = "credentials.json"
	assert.NoError(t, cfg.Validate())
}
