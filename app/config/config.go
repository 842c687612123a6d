package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/digitalcpa/invitebot/core/config"
	coredatabase "github.com/digitalcpa/invitebot/core/database"
)

// Registry backends supported by the guest registry.
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
	BackendDisabled = "disabled"
)

// RegistryConfig selects and configures the guest registry backend.
type RegistryConfig struct {
	Backend string `yaml:"backend" envconfig:"REGISTRY_BACKEND"`
}

// SheetsConfig holds Google Sheets access settings.
type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id" envconfig:"SHEETS_SPREADSHEET_ID"`
	CredentialsFile string `yaml:"credentials_file" envconfig:"SHEETS_CREDENTIALS_FILE"`
	// Sheet is the tab name rows are appended to; empty -> first sheet.
	Sheet string `yaml:"sheet" envconfig:"SHEETS_SHEET"`
}

// AssetsConfig points at the image and font files used by the invite compositor.
type AssetsConfig struct {
	TemplateFile    string `yaml:"template_file" envconfig:"ASSETS_TEMPLATE_FILE"`
	BannerFile      string `yaml:"banner_file" envconfig:"ASSETS_BANNER_FILE"`
	NameFontFile    string `yaml:"name_font_file" envconfig:"ASSETS_NAME_FONT_FILE"`
	CompanyFontFile string `yaml:"company_font_file" envconfig:"ASSETS_COMPANY_FONT_FILE"`
}

// Config is the full invitebot configuration: the reusable core section
// plus the bot's own registry, database and asset settings.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Registry RegistryConfig      `yaml:"registry"`
	Database coredatabase.Config `yaml:"database"`
	Sheets   SheetsConfig        `yaml:"sheets"`
	Assets   AssetsConfig        `yaml:"assets"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Core
}

// Load reads the bot configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates the bot configuration and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return err
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Registry.Backend))
	if backend == "" {
		backend = BackendDisabled
	}
	switch backend {
	case BackendSheets:
		if strings.TrimSpace(cfg.Sheets.SpreadsheetID) == "" {
			return fmt.Errorf("sheets.spreadsheet_id is required when registry.backend is 'sheets'")
		}
		if strings.TrimSpace(cfg.Sheets.CredentialsFile) == "" {
			return fmt.Errorf("sheets.credentials_file is required when registry.backend is 'sheets'")
		}
	case BackendPostgres:
		if strings.TrimSpace(cfg.Database.Host) == "" {
			return fmt.Errorf("database.host is required when registry.backend is 'postgres'")
		}
		if strings.TrimSpace(cfg.Database.Name) == "" {
			return fmt.Errorf("database.name is required when registry.backend is 'postgres'")
		}
	case BackendDisabled:
	default:
		return fmt.Errorf("invalid registry.backend %q; allowed: sheets, postgres, disabled", cfg.Registry.Backend)
	}
	cfg.Registry.Backend = backend

	if strings.TrimSpace(cfg.Assets.TemplateFile) == "" {
		return fmt.Errorf("assets.template_file is required")
	}

	return nil
}
