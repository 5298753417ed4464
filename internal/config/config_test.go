package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheetcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
spreadsheet_id: 1zB2Czd
calendar_id: school@group.calendar.google.com
credentials_file: service-account.json
poll: "@every 5m"
pacing_seconds: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1zB2Czd", cfg.SpreadsheetID)
	assert.Equal(t, "school@group.calendar.google.com", cfg.CalendarID)
	assert.Equal(t, "@every 5m", cfg.Poll)
	assert.Equal(t, 3*time.Second, cfg.Pacing())

	// Defaults from Normalize.
	assert.Equal(t, "Europe/Budapest", cfg.Timezone)
	assert.Equal(t, 300, cfg.RowLimit)
	assert.Equal(t, "sheetcal.db", cfg.Database)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MetricsListen)
}

func TestLoadMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing spreadsheet",
			content: "calendar_id: c\ncredentials_file: f\n",
			wantErr: "spreadsheet_id is required",
		},
		{
			name:    "missing calendar",
			content: "spreadsheet_id: s\ncredentials_file: f\n",
			wantErr: "calendar_id is required",
		},
		{
			name:    "missing credentials",
			content: "spreadsheet_id: s\ncalendar_id: c\n",
			wantErr: "credentials_file is required",
		},
		{
			name:    "bad timezone",
			content: "spreadsheet_id: s\ncalendar_id: c\ncredentials_file: f\ntimezone: Mars/Olympus\n",
			wantErr: "timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}
