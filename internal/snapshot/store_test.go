package snapshot

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsync/sheetcal/internal/schedule"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sheetcal.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLatestEmptyStore(t *testing.T) {
	s := openStore(t)

	events, err := s.Latest()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSaveAndLatest(t *testing.T) {
	s := openStore(t)

	first := []schedule.CanonicalEvent{
		{ID: "e1", SheetSource: "2025.09", EventDay: "2025.09.01", StartTime: "08:00", Title: "Megbeszélés"},
	}
	second := []schedule.CanonicalEvent{
		{ID: "e1", SheetSource: "2025.09", EventDay: "2025.09.01", StartTime: "09:00", Title: "Megbeszélés"},
		{ID: "e2", SheetSource: "2025.09", EventDay: "2025.09.02", Title: "Szülői est"},
	}

	require.NoError(t, s.Save(time.Now(), first))
	require.NoError(t, s.Save(time.Now(), second))

	events, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, second, events)
}

func TestSaveEmptySnapshot(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Save(time.Now(), nil))
	events, err := s.Latest()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLatestCorruptSnapshotDegradesToEmpty(t *testing.T) {
	s := openStore(t)

	_, err := s.db.Exec(
		`INSERT INTO snapshots (taken_at, events) VALUES (?, ?)`,
		time.Now().Format(time.RFC3339), "{definitely not json",
	)
	require.NoError(t, err)

	events, err := s.Latest()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLogChanges(t *testing.T) {
	s := openStore(t)

	ev := schedule.CanonicalEvent{ID: "e1", EventDay: "2025.09.01", Title: "Megbeszélés"}
	old := schedule.CanonicalEvent{ID: "e2", EventDay: "2025.09.02", Title: "Fórum"}
	changes := []schedule.Change{
		{Kind: schedule.ChangeCreate, New: &ev},
		{Kind: schedule.ChangeDelete, Old: &old},
	}

	require.NoError(t, s.LogChanges(time.Now(), changes))

	var raw string
	require.NoError(t, s.db.QueryRow(`SELECT changes FROM change_log ORDER BY id DESC LIMIT 1`).Scan(&raw))
	assert.Contains(t, raw, `"kind":"create"`)
	assert.Contains(t, raw, `"kind":"delete"`)
	assert.Contains(t, raw, `"eventId":"e1"`)
	assert.Contains(t, raw, `"eventId":"e2"`)
}

func TestLogChangesEmptyDiffWritesNothing(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.LogChanges(time.Now(), nil))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM change_log`).Scan(&count))
	assert.Zero(t, count)
}
