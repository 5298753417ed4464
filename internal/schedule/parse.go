package schedule

import (
	"regexp"
	"strings"
)

// EventPiece is the parse result of one schedule-cell segment. Start and End
// are canonical "HH:MM" strings; an empty Start marks an all-day entry.
type EventPiece struct {
	Start string
	End   string
	Title string
}

// The piece grammar, tried in order. Earlier patterns are deliberately more
// specific than later ones; the trial order is part of the contract.
var (
	// "8.30-12 Megbeszélés", "16.00 - 18.00:: Fórum"
	pieceRangeRe = regexp.MustCompile(`(?s)^\s*(\d{1,2}(?:[:.]\d{1,2})?)\s*[-–]\s*(\d{1,2}(?:[:.]\d{1,2})?)\s*(.*)$`)
	// "9.00: Alakuló értekezlet"
	pieceColonRe = regexp.MustCompile(`(?s)^\s*(\d{1,2}(?:[:.]\d{1,2})?)\s*:\s*(.*)$`)
	// "8.00 Megbeszélés"
	pieceStartRe = regexp.MustCompile(`(?s)^\s*(\d{1,2}(?:[:.]\d{1,2})?)\s+(.*)$`)

	leadingSepRe = regexp.MustCompile(`^[:\-\s.]+`)
)

// SplitCell breaks one schedule cell into individual piece strings. Pieces
// are separated by newlines/carriage returns and by commas, except commas
// enclosed in parentheses, which stay inside their piece. Each piece is
// trimmed, empty pieces are dropped and order is preserved: the resulting
// index feeds event identity.
func SplitCell(cell string) []string {
	var pieces []string
	var buf strings.Builder
	depth := 0

	flush := func() {
		if p := strings.TrimSpace(buf.String()); p != "" {
			pieces = append(pieces, p)
		}
		buf.Reset()
	}

	for _, r := range cell {
		switch r {
		case '(':
			depth++
			buf.WriteRune(r)
		case ')':
			if depth > 0 {
				depth--
			}
			buf.WriteRune(r)
		case '\n', '\r':
			flush()
		case ',':
			if depth == 0 {
				flush()
			} else {
				buf.WriteRune(r)
			}
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return pieces
}

// ParsePiece parses a single piece string into an EventPiece. The grammar is
// permissive by design: a title that merely begins with digits (an address,
// say) can be taken for a start time. That ambiguity is inherent to the
// free-text input and is accepted rather than guessed around.
func ParsePiece(piece string) EventPiece {
	text := strings.TrimSpace(piece)

	if m := pieceRangeRe.FindStringSubmatch(text); m != nil {
		return EventPiece{
			Start: NormalizeTime(m[1]),
			End:   NormalizeTime(m[2]),
			Title: cleanTitle(m[3]),
		}
	}

	if m := pieceColonRe.FindStringSubmatch(text); m != nil {
		return EventPiece{
			Start: NormalizeTime(m[1]),
			Title: cleanTitle(m[2]),
		}
	}

	if m := pieceStartRe.FindStringSubmatch(text); m != nil {
		return EventPiece{
			Start: NormalizeTime(m[1]),
			Title: cleanTitle(m[2]),
		}
	}

	return EventPiece{Title: cleanTitle(text)}
}

// cleanTitle strips separator leftovers (colons, dashes, dots, whitespace)
// that the time grammar leaves at the front of the title.
func cleanTitle(s string) string {
	return strings.TrimSpace(leadingSepRe.ReplaceAllString(s, ""))
}
