// Package schedule turns loosely formatted, human-entered spreadsheet rows
// into a normalized set of calendar events and computes the change operations
// needed to bring a calendar in line with the latest snapshot.
//
// The package is a pure transformation layer: it performs no I/O and keeps no
// state between calls. The pipeline is:
//
//	RawRow -> ExpandDays + SplitCell/ParsePiece -> BuildEvents -> []CanonicalEvent
//	Diff(previous, current) -> []Change
//
// Event identifiers are derived deterministically from the externally supplied
// stable row id, the piece index within the cell and the resolved calendar
// day, so repeated runs over unchanged input are idempotent: re-assembling the
// same rows yields the same ids, and Diff of a snapshot against itself is
// empty.
//
// Input is free text with inconsistent delimiters and time notations. The
// parsers here are deliberately permissive; fragments that match no known
// shape are skipped and reported as diagnostics rather than failing the row.
package schedule
