// Package config provides configuration management for the decline-codes
// documentation tooling.
package config

import (
	"os"
	"strconv"
)

// Config holds the complete tool configuration. Environment variables set
// the defaults; command-line flags override them.
type Config struct {
	Export ExportConfig
	Site   SiteConfig
	Log    LogConfig
}

// ExportConfig controls the dataset artifact written by the export command.
type ExportConfig struct {
	Path   string
	Format string
	Pretty bool
}

// SiteConfig controls the static documentation site output.
type SiteConfig struct {
	Dir string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Export: ExportConfig{
			Path:   getEnv("DECLINEDOCS_EXPORT_PATH", "decline-codes.json"),
			Format: getEnv("DECLINEDOCS_EXPORT_FORMAT", "json"),
			Pretty: getEnvBool("DECLINEDOCS_EXPORT_PRETTY", true),
		},
		Site: SiteConfig{
			Dir: getEnv("DECLINEDOCS_SITE_DIR", "public"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
