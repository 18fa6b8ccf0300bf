package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
	}{
		{"basic scope", "catalog"},
		{"nested scope", "catalog.loader"},
		{"empty scope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			assert.Equal(t, "scope", attr.Key)
			assert.Equal(t, tt.scope, attr.Value.String())
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("glob failed")},
		{"nil error", nil},
		{"joined error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			assert.Equal(t, "error", attr.Key)
			assert.Equal(t, tt.err, attr.Value.Any())
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  slog.Level
		disabled *slog.Level
	}{
		{"default is info", "", slog.LevelInfo, ptr(slog.LevelDebug)},
		{"debug", "debug", slog.LevelDebug, nil},
		{"warn", "warn", slog.LevelWarn, ptr(slog.LevelInfo)},
		{"warning alias", "warning", slog.LevelWarn, ptr(slog.LevelInfo)},
		{"error", "error", slog.LevelError, ptr(slog.LevelWarn)},
		{"case insensitive", "DeBuG", slog.LevelDebug, nil},
		{"invalid falls back to info", "loud", slog.LevelInfo, ptr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			if tt.disabled != nil {
				assert.False(t, log.Enabled(ctx, *tt.disabled))
			}
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	require.NotNil(t, log)

	_, isJSON := log.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "production should log JSON")
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func ptr(l slog.Level) *slog.Level { return &l }
