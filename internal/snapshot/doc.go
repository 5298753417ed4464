// Package snapshot persists the last-known event state between runs.
//
// Snapshots and the change audit log live in a single SQLite file. Every
// successful pass appends a complete snapshot row; a pass that fails writes
// nothing, so the next run diffs against the last good state. Corrupt or
// missing persisted state degrades to an empty snapshot instead of aborting,
// at the cost of one redundant (but idempotent) full re-sync.
package snapshot
