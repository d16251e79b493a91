package logging

import (
	"testing"

	"github.com/shigedangao/simmer/config"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		cfg     config.LoggingConfig
		enabled zapcore.Level
		wantErr bool
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel, false},
		{config.LoggingConfig{Level: "info"}, zapcore.InfoLevel, false},
		{config.LoggingConfig{Level: "loud"}, 0, true},
		{config.LoggingConfig{Level: "info", Format: "xml"}, 0, true},
	}

	for _, tt := range tests {
		logger, err := New(tt.cfg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%+v): expected an error", tt.cfg)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%+v): unexpected error: %v", tt.cfg, err)
			continue
		}
		if !logger.Core().Enabled(tt.enabled) {
			t.Errorf("New(%+v): level %v should be enabled", tt.cfg, tt.enabled)
		}
		if tt.enabled > zapcore.DebugLevel && logger.Core().Enabled(tt.enabled-1) {
			t.Errorf("New(%+v): level %v should be disabled", tt.cfg, tt.enabled-1)
		}
	}
}
