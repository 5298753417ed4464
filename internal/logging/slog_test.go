package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{level: "debug", enabled: slog.LevelDebug},
		{level: "info", enabled: slog.LevelInfo},
		{level: "warn", enabled: slog.LevelWarn},
		{level: "error", enabled: slog.LevelError},
		{level: "", enabled: slog.LevelInfo},
		{level: "bogus", enabled: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			logger := New(tt.level)
			if !logger.Enabled(context.Background(), tt.enabled) {
				t.Errorf("logger with level %q should enable %v", tt.level, tt.enabled)
			}
			if tt.enabled > slog.LevelDebug && logger.Enabled(context.Background(), tt.enabled-4) {
				t.Errorf("logger with level %q should not enable %v", tt.level, tt.enabled-4)
			}
		})
	}
}

func TestErrNil(t *testing.T) {
	attr := Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) should produce an omittable group, got key %q", attr.Key)
	}
}
