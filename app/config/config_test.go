package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/digitalcpa/invitebot/core/config"
)

func validConfig() *Config {
	return &Config{
		Core: coreconfig.Config{
			Telegram: coreconfig.TelegramConfig{
				Token:   "123:abc",
				RunMode: coreconfig.RunModeLongpoll,
			},
		},
		Registry: RegistryConfig{Backend: BackendDisabled},
		Assets:   AssetsConfig{TemplateFile: "assets/template.png"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Registry.Backend = ""

	require.NoError(t, Normalize(cfg))
	assert.Equal(t, BackendDisabled, cfg.Registry.Backend)
}

func TestNormalizeSheetsRequiresSpreadsheet(t *testing.T) {
	cfg := validConfig()
	cfg.Registry.Backend = BackendSheets

	err := Normalize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spreadsheet_id")

	cfg.Sheets.SpreadsheetID = "sheet-id"
	err = Normalize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials_file")

	cfg.Sheets.CredentialsFile = "credentials.json"
	assert.NoError(t, Normalize(cfg))
}

func TestNormalizePostgresRequiresDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.Registry.Backend = "Postgres"

	err := Normalize(cfg)
	require.Error(t, err)

	cfg.Database.Host = "localhost"
	cfg.Database.Name = "invitebot"
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, BackendPostgres, cfg.Registry.Backend)
}

func TestNormalizeRejectsUnknownBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Registry.Backend = "redis"

	assert.Error(t, Normalize(cfg))
}

func TestNormalizeRequiresTemplate(t *testing.T) {
	cfg := validConfig()
	cfg.Assets.TemplateFile = " "

	assert.Error(t, Normalize(cfg))
}
