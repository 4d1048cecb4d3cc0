package schedule

import "sort"

// freeEntry synthesizes a FREE grid cell for the class's primary room.
func freeEntry(timeStr, room string) CourseEntry {
	return CourseEntry{Time: timeStr, Course: string(StatusFree), Room: room}
}

// FillDay is the coarse gap filler for two-slot documents: an empty day
// gets both canonical FREE slots; otherwise a FREE morning is inserted
// at the head when nothing starts before 12:30 and a FREE afternoon is
// appended when nothing ends after 13:30.
func FillDay(entries []CourseEntry, primaryRoom string) []CourseEntry {
	if len(entries) == 0 {
		return []CourseEntry{
			freeEntry(MorningSlot, primaryRoom),
			freeEntry(AfternoonSlot, primaryRoom),
		}
	}

	hasMorning, hasAfternoon := coverage(entries)
	out := make([]CourseEntry, 0, len(entries)+2)
	if !hasMorning {
		out = append(out, freeEntry(MorningSlot, primaryRoom))
	}
	out = append(out, entries...)
	if !hasAfternoon {
		out = append(out, freeEntry(AfternoonSlot, primaryRoom))
	}
	return out
}

// coverage reports whether any entry reaches into the morning span
// (starts before 12:30) and the afternoon span (ends after 13:30).
func coverage(entries []CourseEntry) (hasMorning, hasAfternoon bool) {
	for _, e := range entries {
		start, end, ok := ParseRange(e.Time)
		if !ok {
			continue
		}
		if start < MorningEnd {
			hasMorning = true
		}
		if end > AfternoonStart {
			hasAfternoon = true
		}
	}
	return hasMorning, hasAfternoon
}

// FillGaps is the fine-grained variant for multi-slot documents: every
// chronological hole between 09:00 and 16:45 becomes a FREE entry,
// except the canonical lunch window, which is never flagged.
func FillGaps(entries []CourseEntry, primaryRoom string) []CourseEntry {
	if len(entries) == 0 {
		return FillDay(entries, primaryRoom)
	}

	sorted := make([]CourseEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, _, _ := ParseRange(sorted[i].Time)
		sj, _, _ := ParseRange(sorted[j].Time)
		return si < sj
	})

	var out []CourseEntry
	cursor := MorningStart
	for _, e := range sorted {
		start, end, ok := ParseRange(e.Time)
		if !ok {
			out = append(out, e)
			continue
		}
		out = append(out, gapEntries(cursor, start, primaryRoom)...)
		out = append(out, e)
		if end > cursor {
			cursor = end
		}
	}
	out = append(out, gapEntries(cursor, AfternoonEnd, primaryRoom)...)
	return out
}

// gapEntries emits FREE entries covering [from, to), clipped around the
// lunch window. A gap fully inside lunch yields nothing.
func gapEntries(from, to int, primaryRoom string) []CourseEntry {
	var out []CourseEntry
	if from >= to {
		return nil
	}
	// Portion before lunch.
	if from < LunchStart {
		end := to
		if end > LunchStart {
			end = LunchStart
		}
		if end > from {
			out = append(out, freeEntry(FormatRange(from, end), primaryRoom))
		}
	}
	// Portion after lunch.
	if to > LunchEnd {
		start := from
		if start < LunchEnd {
			start = LunchEnd
		}
		if to > start {
			out = append(out, freeEntry(FormatRange(start, to), primaryRoom))
		}
	}
	return out
}
