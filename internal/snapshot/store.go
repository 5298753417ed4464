package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/schedsync/sheetcal/internal/logging"
	"github.com/schedsync/sheetcal/internal/schedule"
)

const schemaVersion = 1

// Store is the SQLite-backed snapshot and change-log store.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// ChangeRecord is the audit shape one applied change is stored as.
type ChangeRecord struct {
	Kind     string `json:"kind"`
	EventID  string `json:"eventId"`
	EventDay string `json:"eventDay,omitempty"`
	Title    string `json:"title,omitempty"`
}

// Open opens (and if necessary initializes) the store at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}
	s := &Store{db: db, log: logger}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS schema_version (
			name TEXT PRIMARY KEY,
			version INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at TEXT NOT NULL,
			events TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS change_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			applied_at TEXT NOT NULL,
			changes TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("initializing snapshot schema: %w", err)
		}
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO schema_version (name, version) VALUES ('sheetcal', ?)`,
		schemaVersion,
	)
	return err
}

// Latest returns the most recently stored snapshot. No stored state yields an
// empty snapshot; unreadable state is logged and likewise degraded to empty.
func (s *Store) Latest() ([]schedule.CanonicalEvent, error) {
	var raw string
	err := s.db.QueryRow(`SELECT events FROM snapshots ORDER BY id DESC LIMIT 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading latest snapshot: %w", err)
	}

	var events []schedule.CanonicalEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.log.Warn("stored snapshot is corrupt, starting from empty", logging.Err(err))
		return nil, nil
	}
	return events, nil
}

// Save appends a complete snapshot. It is only called after a pass has fully
// applied its changes; a failed pass leaves the previous snapshot in place.
func (s *Store) Save(takenAt time.Time, events []schedule.CanonicalEvent) error {
	if events == nil {
		events = []schedule.CanonicalEvent{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (taken_at, events) VALUES (?, ?)`,
		takenAt.Format(time.RFC3339), string(raw),
	)
	if err != nil {
		return fmt.Errorf("storing snapshot: %w", err)
	}
	return nil
}

// LogChanges appends the audit record for one applied diff.
func (s *Store) LogChanges(appliedAt time.Time, changes []schedule.Change) error {
	if len(changes) == 0 {
		return nil
	}

	records := make([]ChangeRecord, 0, len(changes))
	for _, ch := range changes {
		rec := ChangeRecord{Kind: ch.Kind.String()}
		ev := ch.New
		if ev == nil {
			ev = ch.Old
		}
		if ev != nil {
			rec.EventID = ev.ID
			rec.EventDay = ev.EventDay
			rec.Title = ev.Title
		}
		records = append(records, rec)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding change log: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO change_log (applied_at, changes) VALUES (?, ?)`,
		appliedAt.Format(time.RFC3339), string(raw),
	)
	if err != nil {
		return fmt.Errorf("storing change log: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
