package schedule

import "strings"

// OccupancyIndex maps room -> day key -> time range -> occupying
// classes. It is derived from every non-FREE entry across the whole
// document, used once by the review pass and then discarded.
type OccupancyIndex map[string]map[string]map[string][]string

// BuildOccupancy indexes every real (and NOT-FREE/FREEWARNING, should
// the pass ever be re-run) entry by room, day and time.
func BuildOccupancy(doc *Document) OccupancyIndex {
	idx := make(OccupancyIndex)
	for _, class := range doc.Classes() {
		cs, _ := doc.Get(class)
		for dayKey, entries := range cs.Days {
			for _, e := range entries {
				if e.IsFree() {
					continue
				}
				byDay, ok := idx[e.Room]
				if !ok {
					byDay = make(map[string]map[string][]string)
					idx[e.Room] = byDay
				}
				byTime, ok := byDay[dayKey]
				if !ok {
					byTime = make(map[string][]string)
					byDay[dayKey] = byTime
				}
				byTime[e.Time] = append(byTime[e.Time], class)
			}
		}
	}
	return idx
}

// Occupied reports whether the room is in use by any class at a time
// overlapping the given range on the given day.
func (idx OccupancyIndex) Occupied(room, dayKey, timeRange string) bool {
	byTime, ok := idx[room][dayKey]
	if !ok {
		return false
	}
	start, end, ok := ParseRange(timeRange)
	if !ok {
		return false
	}
	for scheduled := range byTime {
		s, e, ok := ParseRange(scheduled)
		if !ok {
			continue
		}
		if Overlaps(start, end, s, e) {
			return true
		}
	}
	return false
}

// FREEWARNING policy prefixes. First-floor A1x rooms are always
// provisional; C0x rooms are contested on Wednesday afternoons.
const (
	warnRoomPrefix    = "A1"
	warnWedRoomPrefix = "C0"
	warnWedDayName    = "Mercredi"
)

// isFreeWarning applies the policy rules to a FREE entry that survived
// the occupancy check.
func isFreeWarning(room, dayKey, timeRange string) bool {
	if strings.HasPrefix(room, warnRoomPrefix) {
		return true
	}
	if !strings.HasPrefix(room, warnWedRoomPrefix) {
		return false
	}
	if name, _, _ := strings.Cut(dayKey, " "); name != warnWedDayName {
		return false
	}
	start, end, ok := ParseRange(timeRange)
	if !ok {
		return false
	}
	return Overlaps(start, end, AfternoonStart, AfternoonEnd)
}

// ReviewStats counts the rewrites made by the cross-validation pass.
type ReviewStats struct {
	NotFree  int
	Warnings int
}

// ReviewFreeSlots is the cross-validation pass. It must run once, after
// every class has been gap-filled; it rewrites FREE entries whose room
// is provably occupied elsewhere to NOT-FREE, then applies the
// FREEWARNING policy to the rest. NOT-FREE takes priority; an entry is
// never both.
func ReviewFreeSlots(doc *Document) ReviewStats {
	idx := BuildOccupancy(doc)
	var stats ReviewStats

	for _, class := range doc.Classes() {
		cs, _ := doc.Get(class)
		for dayKey, entries := range cs.Days {
			for i := range entries {
				if !entries[i].IsFree() {
					continue
				}
				switch {
				case idx.Occupied(entries[i].Room, dayKey, entries[i].Time):
					entries[i].Course = string(StatusNotFree)
					stats.NotFree++
				case isFreeWarning(entries[i].Room, dayKey, entries[i].Time):
					entries[i].Course = string(StatusFreeWarning)
					stats.Warnings++
				}
			}
		}
	}
	return stats
}
