package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/japaniel/kurosu/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		cfg   config.LogConfig
		level zapcore.Level
	}{
		{config.LogConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{config.LogConfig{Level: "WARN", Format: "json"}, zapcore.WarnLevel},
		{config.LogConfig{Level: "", Format: ""}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		logger, err := New(tt.cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", tt.cfg, err)
		}
		if !logger.Core().Enabled(tt.level) {
			t.Errorf("New(%+v): level %s not enabled", tt.cfg, tt.level)
		}
		if tt.level > zapcore.DebugLevel && logger.Core().Enabled(tt.level-1) {
			t.Errorf("New(%+v): level below %s enabled", tt.cfg, tt.level)
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(config.LogConfig{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
