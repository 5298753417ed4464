package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/schedsync/sheetcal/internal/logging"
	"github.com/schedsync/sheetcal/internal/schedule"
)

// RowSource supplies the raw schedule rows, one batch per period tab.
type RowSource interface {
	ListPeriods(ctx context.Context) ([]string, error)
	FetchRows(ctx context.Context, period string) ([]schedule.RawRow, error)
}

// CalendarService applies individual change operations against the target
// calendar, keyed by the canonical event id.
type CalendarService interface {
	Create(ctx context.Context, ev schedule.CanonicalEvent) error
	Update(ctx context.Context, ev schedule.CanonicalEvent) error
	Delete(ctx context.Context, id string) error
}

// SnapshotStore persists the last-known event state and the change audit log.
type SnapshotStore interface {
	Latest() ([]schedule.CanonicalEvent, error)
	Save(takenAt time.Time, events []schedule.CanonicalEvent) error
	LogChanges(appliedAt time.Time, changes []schedule.Change) error
}

// Syncer runs synchronization passes. It holds no schedule state of its own;
// all state lives in the snapshot store.
type Syncer struct {
	rows    RowSource
	cal     CalendarService
	store   SnapshotStore
	log     *slog.Logger
	limiter *rate.Limiter

	inFlight atomic.Bool
}

// New creates a Syncer. pacing is the minimum delay between consecutive
// calendar calls.
func New(rows RowSource, cal CalendarService, store SnapshotStore, logger *slog.Logger, pacing time.Duration) *Syncer {
	if pacing <= 0 {
		pacing = time.Second
	}
	return &Syncer{
		rows:    rows,
		cal:     cal,
		store:   store,
		log:     logger,
		limiter: rate.NewLimiter(rate.Every(pacing), 1),
	}
}

// TryRun runs one pass unless another is already in flight, in which case the
// trigger is dropped. Late poll ticks are skipped, never queued.
func (s *Syncer) TryRun(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		passesSkipped.Inc()
		s.log.Info("pass skipped, previous pass still running", logging.Status(logging.StatusSkipped))
		return nil
	}
	defer s.inFlight.Store(false)

	return s.run(ctx)
}

// RunOnce runs a single pass. It is meant for one-shot invocations; the
// serve loop goes through TryRun.
func (s *Syncer) RunOnce(ctx context.Context) error {
	return s.run(ctx)
}

func (s *Syncer) run(ctx context.Context) error {
	started := time.Now()
	log := logging.WithOperation(s.log, "sync")

	prev, err := s.store.Latest()
	if err != nil {
		passesTotal.WithLabelValues(logging.StatusError).Inc()
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	curr, err := s.collect(ctx, log)
	if err != nil {
		passesTotal.WithLabelValues(logging.StatusError).Inc()
		return err
	}

	changes := schedule.Diff(prev, curr)
	log.Info("snapshot assembled",
		slog.Int("events", len(curr)),
		slog.Int("changes", len(changes)),
	)

	if err := s.apply(ctx, log, changes); err != nil {
		passesTotal.WithLabelValues(logging.StatusError).Inc()
		return err
	}

	// Only a fully applied pass reaches persistence; there is never a
	// partial snapshot on disk.
	now := time.Now()
	if err := s.store.Save(now, curr); err != nil {
		passesTotal.WithLabelValues(logging.StatusError).Inc()
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	if err := s.store.LogChanges(now, changes); err != nil {
		// Audit only; the pass itself succeeded.
		log.Warn("failed to append change log", logging.Err(err))
	}

	eventsInSnapshot.Set(float64(len(curr)))
	passesTotal.WithLabelValues(logging.StatusSuccess).Inc()
	passDuration.Observe(time.Since(started).Seconds())
	log.Info("pass complete",
		logging.Status(logging.StatusSuccess),
		slog.Duration(logging.KeyDuration, time.Since(started)),
	)
	return nil
}

// collect fetches every period tab and assembles the full current event set.
func (s *Syncer) collect(ctx context.Context, log *slog.Logger) ([]schedule.CanonicalEvent, error) {
	periods, err := s.rows.ListPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing periods: %w", err)
	}

	var events []schedule.CanonicalEvent
	for _, period := range periods {
		rows, err := s.rows.FetchRows(ctx, period)
		if err != nil {
			return nil, fmt.Errorf("fetching rows for %s: %w", period, err)
		}

		for _, row := range rows {
			built, diags := schedule.BuildEvents(row)
			for _, diag := range diags {
				segmentsSkipped.Inc()
				log.Warn("skipping day segment",
					logging.Period(period),
					slog.Int(logging.KeyRow, row.RowIndex),
					slog.String("reason", diag),
				)
			}
			events = append(events, built...)
		}
	}
	return events, nil
}

// apply executes the change operations strictly sequentially in emission
// order, pacing each calendar call. The first failure aborts the pass.
func (s *Syncer) apply(ctx context.Context, log *slog.Logger, changes []schedule.Change) error {
	for _, ch := range changes {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		var err error
		switch ch.Kind {
		case schedule.ChangeCreate:
			err = s.cal.Create(ctx, *ch.New)
		case schedule.ChangeUpdate:
			err = s.cal.Update(ctx, *ch.New)
		case schedule.ChangeDelete:
			err = s.cal.Delete(ctx, ch.Old.ID)
		}
		if err != nil {
			return fmt.Errorf("applying %s: %w", ch.Kind, err)
		}

		changesApplied.WithLabelValues(ch.Kind.String()).Inc()
		ev := ch.New
		if ev == nil {
			ev = ch.Old
		}
		log.Info("change applied",
			slog.String(logging.KeyKind, ch.Kind.String()),
			slog.String(logging.KeyEvent, ev.ID),
			slog.String("day", ev.EventDay),
			slog.String("title", ev.Title),
		)
	}
	return nil
}
