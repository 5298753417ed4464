package syncer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sheetcal_sync_passes_total",
		Help: "Completed synchronization passes by status.",
	}, []string{"status"})

	passesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sheetcal_sync_passes_skipped_total",
		Help: "Triggers skipped because a pass was already in flight.",
	})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sheetcal_sync_pass_duration_seconds",
		Help:    "Duration of completed synchronization passes.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	changesApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sheetcal_changes_applied_total",
		Help: "Calendar change operations applied, by kind.",
	}, []string{"kind"})

	segmentsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sheetcal_day_segments_skipped_total",
		Help: "Day-spec segments skipped as unparseable.",
	})

	eventsInSnapshot = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sheetcal_snapshot_events",
		Help: "Events in the most recently persisted snapshot.",
	})
)
