package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/rustyeddy/egolog/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		verbose bool
		want    zapcore.Level
	}{
		{"default", config.LogConfig{}, false, zapcore.WarnLevel},
		{"configured", config.LogConfig{Level: "error"}, false, zapcore.ErrorLevel},
		{"verbose wins", config.LogConfig{Level: "error"}, true, zapcore.DebugLevel},
		{"development", config.LogConfig{Level: "info", Development: true}, false, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg, tt.verbose)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty"}, false)
	assert.Error(t, err)
}
