package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: nothing; the console must start on a bare machine
// - default: file location and format, log settings
// -----------------------------------------------------------------------------

type Config struct {
	Storage StorageConfig
	Log     LogConfig
}

type StorageConfig struct {
	Path     string `envconfig:"GUESTS_FILE" default:"guests.xml"`
	Format   string `envconfig:"GUESTS_FORMAT"` // xml, json, yaml; empty means infer from Path
	AutoLoad bool   `envconfig:"GUESTS_AUTOLOAD" default:"false"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Storage: StorageConfig{
			Path:   "guests_test.xml",
			Format: "xml",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
