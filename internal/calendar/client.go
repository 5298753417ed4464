package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/schedsync/sheetcal/internal/schedule"
)

// untitledSummary is used when a piece parsed to an empty title; the Google
// Calendar UI renders id-only events confusingly otherwise.
const untitledSummary = "(Nincs cím)"

// defaultDuration is assumed when a timed event has no end time.
const defaultDuration = time.Hour

// Client wraps the Google Calendar service for one target calendar.
type Client struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
	loc        *time.Location
}

// NewClient creates a Calendar client over an authenticated HTTP client.
// Events are created with wall-clock times in the given IANA timezone.
func NewClient(ctx context.Context, httpClient *http.Client, calendarID, timezone string) (*Client, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", timezone, err)
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &Client{
		svc:        svc,
		calendarID: calendarID,
		timezone:   timezone,
		loc:        loc,
	}, nil
}

// Create inserts the event under its deterministic id. If the id already
// exists remotely the insert conflicts and the call falls back to an update;
// the id scheme is the idempotency key that makes this safe.
func (c *Client) Create(ctx context.Context, ev schedule.CanonicalEvent) error {
	body, err := c.eventBody(ev)
	if err != nil {
		return err
	}
	body.Id = ev.ID

	_, err = c.svc.Events.Insert(c.calendarID, body).Context(ctx).Do()
	if isStatus(err, http.StatusConflict) {
		return c.Update(ctx, ev)
	}
	if err != nil {
		return fmt.Errorf("failed to create event %s: %w", ev.ID, err)
	}
	return nil
}

// Update overwrites the remote event identified by the event's id.
func (c *Client) Update(ctx context.Context, ev schedule.CanonicalEvent) error {
	body, err := c.eventBody(ev)
	if err != nil {
		return err
	}

	_, err = c.svc.Events.Update(c.calendarID, ev.ID, body).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", ev.ID, err)
	}
	return nil
}

// Delete removes the remote event with the given id. A remote that no longer
// has the event is success, not failure.
func (c *Client) Delete(ctx context.Context, id string) error {
	err := c.svc.Events.Delete(c.calendarID, id).Context(ctx).Do()
	if isStatus(err, http.StatusNotFound, http.StatusGone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}

// eventBody converts a canonical event into the Calendar API shape. Events
// without a start time become all-day events on their day; a timed event
// whose time fails to parse (minute 99 and the like slip through the
// permissive grammar) degrades to all-day rather than failing the pass.
func (c *Client) eventBody(ev schedule.CanonicalEvent) (*calendar.Event, error) {
	day, err := schedule.NormalizeDate(ev.EventDay)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", ev.ID, err)
	}

	body := &calendar.Event{
		Summary:  ev.Title,
		Location: ev.Location,
	}
	if body.Summary == "" {
		body.Summary = untitledSummary
	}

	start, startErr := time.ParseInLocation("2006-01-02T15:04", day+"T"+ev.StartTime, c.loc)
	if ev.AllDay() || startErr != nil {
		body.Start = &calendar.EventDateTime{Date: day}
		body.End = &calendar.EventDateTime{Date: day}
		return body, nil
	}

	end := start.Add(defaultDuration)
	if ev.EndTime != "" {
		if e, err := time.ParseInLocation("2006-01-02T15:04", day+"T"+ev.EndTime, c.loc); err == nil {
			end = e
		}
	}

	body.Start = &calendar.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: c.timezone}
	body.End = &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: c.timezone}
	return body, nil
}

func isStatus(err error, codes ...int) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return slices.Contains(codes, gerr.Code)
}
