// Package calendar applies change operations against the target Google
// Calendar.
//
// Every remote event is keyed by the deterministic CanonicalEvent id, which
// makes the operations idempotent: creating an id that already exists falls
// back to an update, and deleting an id that is already gone succeeds. The
// caller is responsible for pacing and for applying operations strictly in
// order.
package calendar
