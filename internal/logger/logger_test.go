package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		pretty    bool
		wantLevel zerolog.Level
	}{
		{
			name:      "debug level",
			level:     "debug",
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "info level",
			level:     "info",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "warn level",
			level:     "warn",
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "error level",
			level:     "error",
			wantLevel: zerolog.ErrorLevel,
		},
		{
			name:      "invalid level defaults to info",
			level:     "invalid",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "empty level defaults to info",
			level:     "",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "pretty output",
			level:     "info",
			pretty:    true,
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestLogger(t *testing.T) {
	Init("info", false)

	logger := Logger()
	assert.NotNil(t, logger)
}
