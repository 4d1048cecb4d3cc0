package schedule

import (
	"fmt"
	"regexp"
)

// Canonical time range form: "09H:00-12H:15". All minute arithmetic in
// the engine goes through this representation.
var (
	clockPattern     = regexp.MustCompile(`(\d{2})H:(\d{2})`)
	canonicalRangeRe = regexp.MustCompile(`^(\d{2})H:(\d{2})-(\d{2})H:(\d{2})$`)
)

// ClockToMinutes converts a canonical clock token like "09H:00" to
// minutes since midnight. Malformed input yields -1.
func ClockToMinutes(s string) int {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return -1
	}
	h := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	mi := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return h*60 + mi
}

// MinutesToClock formats minutes since midnight as a canonical clock
// token, e.g. 540 -> "09H:00".
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02dH:%02d", m/60, m%60)
}

// ParseRange parses a canonical range string into a (start, end) minute
// pair. ok is false for anything not in canonical form.
func ParseRange(r string) (start, end int, ok bool) {
	m := canonicalRangeRe.FindStringSubmatch(r)
	if m == nil {
		return 0, 0, false
	}
	start = atoi2(m[1])*60 + atoi2(m[2])
	end = atoi2(m[3])*60 + atoi2(m[4])
	return start, end, true
}

// FormatRange renders a (start, end) minute pair in canonical form.
func FormatRange(start, end int) string {
	return MinutesToClock(start) + "-" + MinutesToClock(end)
}

// NormalizeRange builds a canonical range from raw hour/minute fields
// as they appear in the documents ("9:00 - 12:15" pieces).
func NormalizeRange(startH, startM, endH, endM int) string {
	return FormatRange(startH*60+startM, endH*60+endM)
}

// Overlaps is the half-open interval overlap test. Touching boundaries
// ([9:00-10:30] vs [10:30-12:00]) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
