package schedule

import (
	"regexp"
	"sort"
	"strings"
)

// Day is one located day header within a class section, with the text
// span it owns. End is the offset of the next day header (or the
// section end).
type Day struct {
	Name  string
	Date  string // DD/MM/YYYY
	Key   string // "Lundi 03/11/2025"
	Start int
	End   int
	X     float64 // header center, spatial strategy only
	HasX  bool
}

// headerSkip keeps the span search from re-matching a day's own header.
const headerSkip = 10

var dayHeaderRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(DayNames))
	for _, name := range DayNames {
		res[name] = regexp.MustCompile(name + `\s+(\d{2}/\d{2})(?:/(\d{4}))?`)
	}
	return res
}()

// LocateDays finds every day header in a section and computes the text
// span each day owns. Days with no header are simply absent; the gap
// filler later synthesizes them only if the day key exists.
//
// When a day's date token carries no year, the year is taken from the
// section's date-range metadata, falling back to fallbackYear. The
// fallback is a known weak default for documents spanning a year
// boundary; it is configurable rather than fixed for that reason.
func LocateDays(section, fallbackYear string) []Day {
	year := fallbackYear
	if m := periodMetaRe.FindStringSubmatch(section); m != nil {
		parts := strings.Split(m[1], "/")
		year = parts[len(parts)-1]
	}

	var days []Day
	for _, name := range DayNames {
		m := dayHeaderRes[name].FindStringSubmatchIndex(section)
		if m == nil {
			continue
		}
		date := section[m[2]:m[3]]
		if m[4] >= 0 {
			date += "/" + section[m[4]:m[5]]
		} else {
			date += "/" + year
		}
		days = append(days, Day{
			Name:  name,
			Date:  date,
			Key:   name + " " + date,
			Start: m[0],
		})
	}

	// Spans follow document order, not week order.
	sort.Slice(days, func(i, j int) bool { return days[i].Start < days[j].Start })
	for i := range days {
		days[i].End = len(section)
		if next := nextDayStart(section, days[i].Start); next >= 0 {
			days[i].End = next
		}
	}
	// Restore week order for assignment.
	sort.Slice(days, func(i, j int) bool { return dayRank(days[i].Name) < dayRank(days[j].Name) })
	return days
}

// nextDayStart returns the offset of the first day header found past
// the given header position, or -1.
func nextDayStart(section string, from int) int {
	search := from + headerSkip
	if search >= len(section) {
		return -1
	}
	best := -1
	for _, re := range dayHeaderRes {
		if loc := re.FindStringIndex(section[search:]); loc != nil {
			pos := search + loc[0]
			if best < 0 || pos < best {
				best = pos
			}
		}
	}
	return best
}

func dayRank(name string) int {
	for i, d := range DayNames {
		if d == name {
			return i
		}
	}
	return len(DayNames)
}
