package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the process environment the app reads at start.
type Env struct {
	ConfigPath       string `env:"VV_CONFIG"`
	DataDir          string `env:"VV_DATA_DIR"`
	ReportsDir       string `env:"VV_REPORTS_DIR"`
	Locale           string `env:"VV_LOCALE"`
	Theme            string `env:"VV_THEME"`
	ExportPassphrase string `env:"VV_EXPORT_PASSPHRASE"`
	EncryptExports   bool   `env:"VV_ENCRYPT_EXPORTS" envDefault:"false"`
	LogFile          string `env:"VV_LOG_FILE"`
	Resume           bool   `env:"VV_RESUME" envDefault:"false"`
	ResumeID         string `env:"VV_RESUME_ID"`
	ImportPath       string `env:"VV_IMPORT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
