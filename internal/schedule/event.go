package schedule

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// RawRow is one spreadsheet row as delivered by the row source. All fields
// are free text except the provenance ones; the row source is responsible for
// isolating the columns.
type RawRow struct {
	SheetSource string // period tab title, e.g. "2025.09"
	RowIndex    int    // 1-based row number within the sheet
	DaySpec     string // day specifier cell
	Cell        string // schedule cell, possibly multi-event
	Location    string
	StableID    string // externally maintained stable row identifier
}

// CanonicalEvent is the fully normalized representation of one scheduled
// occurrence on one day, and the unit of comparison during reconciliation.
type CanonicalEvent struct {
	ID          string `json:"id"`
	SheetSource string `json:"sheetSource"`
	RowIndex    int    `json:"rowIndex"`
	PieceIndex  int    `json:"pieceIndex"`
	EventDay    string `json:"eventDay"`            // "YYYY.MM.DD"
	StartTime   string `json:"startTime,omitempty"` // "HH:MM"; empty means all-day
	EndTime     string `json:"endTime,omitempty"`   // "HH:MM"; never set without StartTime
	Title       string `json:"title"`
	Location    string `json:"location"`
}

// AllDay reports whether the event has no start time.
func (e CanonicalEvent) AllDay() bool {
	return e.StartTime == ""
}

// ContentEqual reports whether two events agree on every field that matters
// for synchronization. Provenance beyond the piece index (row number) is
// deliberately excluded: a row moving within its sheet must not cause an
// update.
func (e CanonicalEvent) ContentEqual(o CanonicalEvent) bool {
	return e.SheetSource == o.SheetSource &&
		e.EventDay == o.EventDay &&
		e.StartTime == o.StartTime &&
		e.EndTime == o.EndTime &&
		e.Title == o.Title &&
		e.Location == o.Location &&
		e.PieceIndex == o.PieceIndex
}

// EventID derives the stable calendar event identifier from the stable row
// id, the piece index within the cell and the resolved day. Identical inputs
// always yield the identical id across runs and platforms. The hex digest
// with an "e" prefix stays inside the [a-v0-9] alphabet Google Calendar
// accepts for caller-chosen event ids.
func EventID(stableID string, pieceIndex int, day string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s-%d-%s", stableID, pieceIndex, day)))
	return "e" + hex.EncodeToString(sum[:])
}
