package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuildLevels(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		console bool
		want    zapcore.Level
	}{
		{"json info", false, false, zapcore.InfoLevel},
		{"json debug", true, false, zapcore.DebugLevel},
		{"console info", false, true, zapcore.InfoLevel},
		{"console debug", true, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := build(tt.debug, tt.console)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			assert.False(t, logger.Core().Enabled(tt.want-1))
		})
	}
}
