package schedule

import "sort"

// slot classification for the sequential assigner.
type slotKind int

const (
	slotMorning slotKind = iota
	slotAfternoon
)

// classifySlot buckets a block by its start hour. An unparseable time
// defaults to morning, the deterministic tie-break for undecidable
// classification.
func classifySlot(timeStr string) slotKind {
	start, _, ok := ParseRange(timeStr)
	if !ok || start < 720 {
		return slotMorning
	}
	return slotAfternoon
}

// AssignSequential maps an ordered block stream onto the day grid using
// the morning/afternoon expectation state machine. The blocks arrive in
// document order (day 1 morning, day 1 afternoon, day 2 morning, ...);
// two morning blocks in a row mean the earlier day had no afternoon.
//
// The machine cannot represent two same-slot blocks on one day; the
// spatial assigner handles those documents instead.
func AssignSequential(days []Day, blocks []Block) map[string][]CourseEntry {
	type daySlots struct {
		morning   *CourseEntry
		afternoon *CourseEntry
	}
	grid := make(map[string]*daySlots, len(days))
	for _, d := range days {
		grid[d.Key] = &daySlots{}
	}

	dayIdx := 0
	expecting := slotMorning

	for _, b := range blocks {
		if dayIdx >= len(days) {
			// Malformed tail data past the last day is dropped.
			break
		}
		entry := &CourseEntry{Time: b.Time, Course: b.Course, Room: b.Room}
		kind := classifySlot(b.Time)

		switch {
		case expecting == slotMorning && kind == slotMorning:
			grid[days[dayIdx].Key].morning = entry
			expecting = slotAfternoon
		case expecting == slotMorning && kind == slotAfternoon:
			// No morning course for this day.
			grid[days[dayIdx].Key].afternoon = entry
			dayIdx++
			expecting = slotMorning
		case expecting == slotAfternoon && kind == slotAfternoon:
			grid[days[dayIdx].Key].afternoon = entry
			dayIdx++
			expecting = slotMorning
		default: // expecting afternoon, got morning: current day is done
			dayIdx++
			if dayIdx < len(days) {
				grid[days[dayIdx].Key].morning = entry
				expecting = slotAfternoon
			} else {
				expecting = slotMorning
			}
		}
	}

	out := make(map[string][]CourseEntry, len(days))
	for _, d := range days {
		var entries []CourseEntry
		if s := grid[d.Key]; s.morning != nil {
			entries = append(entries, *s.morning)
		}
		if s := grid[d.Key]; s.afternoon != nil {
			entries = append(entries, *s.afternoon)
		}
		out[d.Key] = entries
	}
	return out
}

// AssignSpatial maps blocks to day columns by horizontal position:
// each block lands in the column whose header is nearest, with midpoint
// boundaries between adjacent headers. Multiple blocks may share a
// day/slot; the per-day list is kept sorted by start time.
//
// Blocks without positional data fall back to the first column rather
// than being dropped, so a partially positioned page still degrades to
// something reviewable.
func AssignSpatial(days []Day, blocks []Block) map[string][]CourseEntry {
	out := make(map[string][]CourseEntry, len(days))
	columns := make([]Day, 0, len(days))
	for _, d := range days {
		if d.HasX {
			columns = append(columns, d)
		}
		out[d.Key] = nil
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].X < columns[j].X })
	if len(columns) == 0 {
		return out
	}

	for _, b := range blocks {
		col := columns[0]
		if b.HasX {
			col = columns[columnFor(columns, b.X)]
		}
		entry := CourseEntry{Time: b.Time, Course: b.Course, Room: b.Room}
		if containsEntry(out[col.Key], entry) {
			continue
		}
		out[col.Key] = append(out[col.Key], entry)
	}

	for key, entries := range out {
		sort.SliceStable(entries, func(i, j int) bool {
			si, _, _ := ParseRange(entries[i].Time)
			sj, _, _ := ParseRange(entries[j].Time)
			return si < sj
		})
		out[key] = entries
	}
	return out
}

// columnFor picks the column index for an x position using midpoint
// boundaries between adjacent headers.
func columnFor(columns []Day, x float64) int {
	for i := 0; i < len(columns)-1; i++ {
		mid := (columns[i].X + columns[i+1].X) / 2
		if x < mid {
			return i
		}
	}
	return len(columns) - 1
}

func containsEntry(entries []CourseEntry, e CourseEntry) bool {
	for _, have := range entries {
		if have == e {
			return true
		}
	}
	return false
}
