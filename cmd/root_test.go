package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "Error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerFallsBackToEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	defer slog.SetDefault(slog.Default())

	require.NoError(t, setupLogger(""))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	require.NoError(t, setupLogger("error"))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))

	assert.Error(t, setupLogger("loud"))
}
