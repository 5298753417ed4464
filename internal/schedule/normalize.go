package schedule

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	bareDigitsRe = regexp.MustCompile(`^\d{3,4}$`)
	bareHourRe   = regexp.MustCompile(`^\d{1,2}$`)
	hourMinuteRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
)

// NormalizeTime rewrites an ad-hoc time token into canonical "HH:MM" form.
//
// Accepted shapes:
//   - "8.30" / "8:30": dot or colon separator, padded to "08:30"
//   - "830" / "0830": bare digit run, split from the right into H:MM/HH:MM
//   - "8": bare hour, becomes "08:00"
//
// Tokens that match none of these are returned unchanged so that callers can
// still carry the raw text through; empty input yields an empty string.
func NormalizeTime(token string) string {
	s := strings.TrimSpace(token)
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, ".", ":")

	if bareDigitsRe.MatchString(s) {
		// "830" or "0830": last two digits are the minutes.
		return pad2(s[:len(s)-2]) + ":" + s[len(s)-2:]
	}

	if bareHourRe.MatchString(s) {
		return pad2(s) + ":00"
	}

	if m := hourMinuteRe.FindStringSubmatch(s); m != nil {
		return pad2(m[1]) + ":" + pad2(m[2])
	}

	return s
}

// NormalizeDate converts a dot-separated "YYYY.M.D" day string into ISO
// "YYYY-MM-DD" form, padding month and day to two digits.
func NormalizeDate(day string) (string, error) {
	parts := strings.Split(day, ".")
	if len(parts) < 3 {
		return "", fmt.Errorf("malformed day %q: want YEAR.MONTH.DAY", day)
	}
	return parts[0] + "-" + pad2(parts[1]) + "-" + pad2(parts[2]), nil
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
