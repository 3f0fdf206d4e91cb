package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		enabled   zapcore.Level
		disabled  zapcore.Level
		checkBoth bool
	}{
		{name: "production_defaults_to_info", env: "production", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel, checkBoth: true},
		{name: "development_logs_debug", env: "development", enabled: zapcore.DebugLevel},
		{name: "level_override", env: "production", level: "warn", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel, checkBoth: true},
		{name: "bad_level_ignored", env: "production", level: "loud", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel, checkBoth: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := build(tt.env, tt.level).Core()
			if !core.Enabled(tt.enabled) {
				t.Errorf("expected %s to be enabled", tt.enabled)
			}
			if tt.checkBoth && core.Enabled(tt.disabled) {
				t.Errorf("expected %s to be disabled", tt.disabled)
			}
		})
	}

	t.Run("test_env_is_silent", func(t *testing.T) {
		if build("test", "").Core().Enabled(zapcore.ErrorLevel) {
			t.Error("expected the test logger to discard everything")
		}
	})
}
