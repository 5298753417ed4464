package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxSegmentDays bounds how many days one day-spec segment may expand to.
// Hand-entered specs never legitimately span more than a school year; the cap
// keeps a mistyped range from flooding the event set.
const maxSegmentDays = 370

var (
	// "10.29 - 11.02", optional trailing dot: a full month.day range whose
	// year comes from the enclosing period label.
	fullDateRangeRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\s*[-–]\s*(\d{1,2})\.(\d{1,2})\.?$`)

	nonDayCharRe = regexp.MustCompile(`[^\d\-–]`)
	dayDashRe    = regexp.MustCompile(`[-–]`)
)

// ExpandDays expands a raw day specifier into concrete "YYYY.MM.DD" day
// strings. The spec may hold several comma-separated segments; each is
// expanded independently and the results concatenated in order. Recognized
// segment forms:
//
//   - "MM.DD - MM.DD": every day between the endpoints inclusive, year taken
//     from the leading "YYYY" of periodLabel; reversed endpoints are swapped.
//   - "D" or "D1-D2": day numbers within the period itself, formatted as
//     periodLabel.DD (periodLabel is the period's own "YYYY.MM" label).
//
// Segments that match neither form, name impossible calendar dates or expand
// past maxSegmentDays are skipped; a diagnostic per skipped segment is
// returned alongside the days. Duplicate days are not collapsed here;
// event identity handles that downstream.
func ExpandDays(periodLabel, rawSpec string) (days []string, skipped []string) {
	spec := strings.TrimSpace(rawSpec)
	if spec == "" {
		return nil, nil
	}

	for _, seg := range strings.Split(spec, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		if m := fullDateRangeRe.FindStringSubmatch(seg); m != nil {
			expanded, err := expandDateRange(periodLabel, m)
			if err != nil {
				skipped = append(skipped, fmt.Sprintf("day segment %q: %v", seg, err))
				continue
			}
			days = append(days, expanded...)
			continue
		}

		expanded, err := expandDayNumbers(periodLabel, seg)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("day segment %q: %v", seg, err))
			continue
		}
		days = append(days, expanded...)
	}

	return days, skipped
}

// expandDateRange expands a matched "MM.DD - MM.DD" segment.
func expandDateRange(periodLabel string, m []string) ([]string, error) {
	yearStr, _, _ := strings.Cut(periodLabel, ".")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, fmt.Errorf("period label %q has no leading year", periodLabel)
	}

	m1, _ := strconv.Atoi(m[1])
	d1, _ := strconv.Atoi(m[2])
	m2, _ := strconv.Atoi(m[3])
	d2, _ := strconv.Atoi(m[4])

	if !validDate(year, m1, d1) {
		return nil, fmt.Errorf("invalid date %d.%02d.%02d", year, m1, d1)
	}
	if !validDate(year, m2, d2) {
		return nil, fmt.Errorf("invalid date %d.%02d.%02d", year, m2, d2)
	}

	// Reversed ranges are a data-entry habit, not an error.
	if m2 < m1 || (m2 == m1 && d2 < d1) {
		m1, d1, m2, d2 = m2, d2, m1, d1
	}

	var days []string
	cm, cd := m1, d1
	for {
		days = append(days, fmt.Sprintf("%d.%02d.%02d", year, cm, cd))
		if len(days) > maxSegmentDays {
			return nil, fmt.Errorf("range expands past %d days", maxSegmentDays)
		}
		if cm == m2 && cd == d2 {
			break
		}
		cm, cd = nextDay(year, cm, cd)
	}
	return days, nil
}

// expandDayNumbers expands a bare day number or day range ("5", "5-8")
// against the period's own label. Day numbers that name no real day of the
// period's month are rejected here so they surface as a diagnosed skip
// instead of a remote failure mid-pass.
func expandDayNumbers(periodLabel, seg string) ([]string, error) {
	cleaned := nonDayCharRe.ReplaceAllString(seg, "")
	if cleaned == "" {
		return nil, nil
	}

	var nums []int
	for _, part := range dayDashRe.Split(cleaned, -1) {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 1:
		if err := checkPeriodDay(periodLabel, nums[0]); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s.%02d", periodLabel, nums[0])}, nil
	case 2:
		lo, hi := nums[0], nums[1]
		if hi < lo {
			lo, hi = hi, lo
		}
		if hi-lo+1 > maxSegmentDays {
			return nil, fmt.Errorf("range expands past %d days", maxSegmentDays)
		}
		if err := checkPeriodDay(periodLabel, lo); err != nil {
			return nil, err
		}
		if err := checkPeriodDay(periodLabel, hi); err != nil {
			return nil, err
		}
		days := make([]string, 0, hi-lo+1)
		for d := lo; d <= hi; d++ {
			days = append(days, fmt.Sprintf("%s.%02d", periodLabel, d))
		}
		return days, nil
	default:
		return nil, fmt.Errorf("unrecognized day format")
	}
}

// checkPeriodDay validates a bare day number against the period's "YYYY.MM"
// label. Labels that do not carry a parseable year and month cannot be
// checked and pass through unvalidated.
func checkPeriodDay(periodLabel string, day int) error {
	yearStr, monthStr, ok := strings.Cut(periodLabel, ".")
	if !ok {
		return nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil
	}
	if !validDate(year, month, day) {
		return fmt.Errorf("day %d outside %s", day, periodLabel)
	}
	return nil
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(year, month)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// nextDay advances one calendar day within the same year. The expander never
// crosses a year boundary because both range endpoints share the period's
// year; December 31 simply terminates the walk.
func nextDay(year, month, day int) (int, int) {
	if day < daysInMonth(year, month) {
		return month, day + 1
	}
	if month < 12 {
		return month + 1, 1
	}
	return month, day
}
