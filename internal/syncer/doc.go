// Package syncer drives one full synchronization pass: fetch the schedule
// rows, assemble canonical events, diff them against the stored snapshot,
// apply the resulting operations to the calendar and persist the new state.
//
// Passes never overlap: TryRun skips (rather than queues) a trigger that
// arrives while a pass is in flight. Change operations are applied strictly
// sequentially in emission order, paced by a rate limiter so the calendar
// service's limits are respected. Any upstream failure aborts the pass before
// the snapshot is persisted, so a retried pass diffs against the last good
// state.
package syncer
