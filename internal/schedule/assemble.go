package schedule

import "strings"

// BuildEvents assembles the canonical events for one spreadsheet row.
//
// Rows missing the day specifier, the schedule cell or the stable id cannot
// identify an event and are skipped without diagnostics. Otherwise the day
// spec is expanded and the cell split into pieces; every (piece, day) pair
// yields one event. Piece order is the outer loop and day order the inner
// one, so identifiers are reproducible run to run.
//
// The returned diagnostics describe day-spec segments that could not be
// expanded; they are advisory and never abort the row.
func BuildEvents(row RawRow) ([]CanonicalEvent, []string) {
	if strings.TrimSpace(row.DaySpec) == "" ||
		strings.TrimSpace(row.Cell) == "" ||
		strings.TrimSpace(row.StableID) == "" {
		return nil, nil
	}

	days, diags := ExpandDays(row.SheetSource, row.DaySpec)
	if len(days) == 0 {
		return nil, diags
	}

	location := collapseLines(row.Location)

	var events []CanonicalEvent
	for pieceIndex, piece := range SplitCell(row.Cell) {
		parsed := ParsePiece(piece)
		for _, day := range days {
			events = append(events, CanonicalEvent{
				ID:          EventID(row.StableID, pieceIndex, day),
				SheetSource: row.SheetSource,
				RowIndex:    row.RowIndex,
				PieceIndex:  pieceIndex,
				EventDay:    day,
				StartTime:   parsed.Start,
				EndTime:     parsed.End,
				Title:       parsed.Title,
				Location:    location,
			})
		}
	}

	return events, diags
}

// collapseLines folds newlines into spaces and trims, so multi-line cells
// compare stably between runs.
func collapseLines(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
