package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "decline-codes.json", cfg.Export.Path)
		assert.Equal(t, "json", cfg.Export.Format)
		assert.True(t, cfg.Export.Pretty)
		assert.Equal(t, "public", cfg.Site.Dir)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("DECLINEDOCS_EXPORT_PATH", "out/codes.yaml")
		_ = os.Setenv("DECLINEDOCS_EXPORT_FORMAT", "yaml")
		_ = os.Setenv("DECLINEDOCS_EXPORT_PRETTY", "false")
		_ = os.Setenv("DECLINEDOCS_SITE_DIR", "dist")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "out/codes.yaml", cfg.Export.Path)
		assert.Equal(t, "yaml", cfg.Export.Format)
		assert.False(t, cfg.Export.Pretty)
		assert.Equal(t, "dist", cfg.Site.Dir)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid booleans gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("DECLINEDOCS_EXPORT_PRETTY", "invalid")
		_ = os.Setenv("LOG_PRETTY", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Export.Pretty)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("empty values fall back to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("DECLINEDOCS_EXPORT_PATH", "")
		_ = os.Setenv("LOG_LEVEL", "")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "decline-codes.json", cfg.Export.Path)
		assert.Equal(t, "info", cfg.Log.Level)
	})
}
