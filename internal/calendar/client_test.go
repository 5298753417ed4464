package calendar

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/schedsync/sheetcal/internal/schedule"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Budapest")
	if err != nil {
		t.Fatal(err)
	}
	return &Client{calendarID: "cal", timezone: "Europe/Budapest", loc: loc}
}

func TestEventBodyTimed(t *testing.T) {
	c := testClient(t)
	body, err := c.eventBody(schedule.CanonicalEvent{
		ID:        "e1",
		EventDay:  "2025.09.01",
		StartTime: "08:30",
		EndTime:   "12:00",
		Title:     "Megbeszélés",
		Location:  "Díszterem",
	})
	if err != nil {
		t.Fatal(err)
	}

	if body.Summary != "Megbeszélés" || body.Location != "Díszterem" {
		t.Errorf("summary/location = %q/%q", body.Summary, body.Location)
	}
	// September in Budapest is CEST (+02:00).
	if body.Start.DateTime != "2025-09-01T08:30:00+02:00" {
		t.Errorf("start = %q", body.Start.DateTime)
	}
	if body.End.DateTime != "2025-09-01T12:00:00+02:00" {
		t.Errorf("end = %q", body.End.DateTime)
	}
	if body.Start.TimeZone != "Europe/Budapest" {
		t.Errorf("timezone = %q", body.Start.TimeZone)
	}
}

func TestEventBodyWinterOffset(t *testing.T) {
	c := testClient(t)
	body, err := c.eventBody(schedule.CanonicalEvent{
		ID: "e1", EventDay: "2025.01.15", StartTime: "08:00", Title: "Értekezlet",
	})
	if err != nil {
		t.Fatal(err)
	}
	if body.Start.DateTime != "2025-01-15T08:00:00+01:00" {
		t.Errorf("start = %q", body.Start.DateTime)
	}
}

func TestEventBodyDefaultDuration(t *testing.T) {
	c := testClient(t)
	body, err := c.eventBody(schedule.CanonicalEvent{
		ID: "e1", EventDay: "2025.09.01", StartTime: "23:30", Title: "Ügyelet",
	})
	if err != nil {
		t.Fatal(err)
	}
	// Missing end time means one hour, rolling into the next day if needed.
	if body.End.DateTime != "2025-09-02T00:30:00+02:00" {
		t.Errorf("end = %q", body.End.DateTime)
	}
}

func TestEventBodyAllDay(t *testing.T) {
	c := testClient(t)
	body, err := c.eventBody(schedule.CanonicalEvent{
		ID: "e1", EventDay: "2025.09.5", Title: "Szülői est",
	})
	if err != nil {
		t.Fatal(err)
	}
	if body.Start.Date != "2025-09-05" || body.End.Date != "2025-09-05" {
		t.Errorf("all-day dates = %q/%q", body.Start.Date, body.End.Date)
	}
	if body.Start.DateTime != "" {
		t.Errorf("all-day event must not carry a DateTime: %q", body.Start.DateTime)
	}
}

func TestEventBodyUnparsableTimeDegradesToAllDay(t *testing.T) {
	c := testClient(t)
	body, err := c.eventBody(schedule.CanonicalEvent{
		ID: "e1", EventDay: "2025.09.01", StartTime: "08:99", Title: "Zavaros",
	})
	if err != nil {
		t.Fatal(err)
	}
	if body.Start.Date != "2025-09-01" {
		t.Errorf("expected all-day fallback, got %+v", body.Start)
	}
}

func TestEventBodyUntitled(t *testing.T) {
	c := testClient(t)
	body, err := c.eventBody(schedule.CanonicalEvent{ID: "e1", EventDay: "2025.09.01"})
	if err != nil {
		t.Fatal(err)
	}
	if body.Summary != untitledSummary {
		t.Errorf("summary = %q, want placeholder", body.Summary)
	}
}

func TestEventBodyMalformedDay(t *testing.T) {
	c := testClient(t)
	if _, err := c.eventBody(schedule.CanonicalEvent{ID: "e1", EventDay: "2025.09"}); err == nil {
		t.Fatal("expected error for malformed day")
	}
}

func TestIsStatus(t *testing.T) {
	conflict := &googleapi.Error{Code: http.StatusConflict}

	if !isStatus(conflict, http.StatusConflict) {
		t.Error("direct googleapi error not matched")
	}
	if isStatus(errors.New("plain"), http.StatusConflict) {
		t.Error("plain error must not match")
	}
	if isStatus(nil, http.StatusConflict) {
		t.Error("nil error must not match")
	}
	if !isStatus(conflict, http.StatusNotFound, http.StatusConflict) {
		t.Error("multi-code match failed")
	}
}
