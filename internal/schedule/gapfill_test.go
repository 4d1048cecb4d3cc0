package schedule

import "testing"

func TestFillDayEmpty(t *testing.T) {
	got := FillDay(nil, "B204")
	if len(got) != 2 {
		t.Fatalf("empty day filled with %d entries, want 2: %+v", len(got), got)
	}
	if got[0].Time != MorningSlot || got[0].Course != string(StatusFree) || got[0].Room != "B204" {
		t.Errorf("morning = %+v", got[0])
	}
	if got[1].Time != AfternoonSlot || got[1].Course != string(StatusFree) {
		t.Errorf("afternoon = %+v", got[1])
	}
}

func TestFillDayMorningOnly(t *testing.T) {
	entries := []CourseEntry{{Time: MorningSlot, Course: "Algo", Room: "B204"}}
	got := FillDay(entries, "B204")
	if len(got) != 2 {
		t.Fatalf("got %d entries: %+v", len(got), got)
	}
	if got[0].Course != "Algo" {
		t.Errorf("existing entry displaced: %+v", got)
	}
	if got[1].Time != AfternoonSlot || got[1].Course != string(StatusFree) {
		t.Errorf("missing FREE afternoon: %+v", got[1])
	}
}

func TestFillDayAfternoonOnly(t *testing.T) {
	entries := []CourseEntry{{Time: AfternoonSlot, Course: "Web", Room: "B204"}}
	got := FillDay(entries, "B204")
	if len(got) != 2 {
		t.Fatalf("got %d entries: %+v", len(got), got)
	}
	// The FREE morning goes at the head so the day stays chronological.
	if got[0].Time != MorningSlot || got[0].Course != string(StatusFree) {
		t.Errorf("head = %+v", got[0])
	}
	if got[1].Course != "Web" {
		t.Errorf("tail = %+v", got[1])
	}
}

func TestFillDayFullDayUntouched(t *testing.T) {
	entries := []CourseEntry{
		{Time: MorningSlot, Course: "Algo", Room: "B204"},
		{Time: AfternoonSlot, Course: "Web", Room: "B204"},
	}
	got := FillDay(entries, "B204")
	if len(got) != 2 {
		t.Errorf("full day gained entries: %+v", got)
	}
}

func TestFillGapsLeavesLunchAlone(t *testing.T) {
	// A fully booked morning and afternoon leaves only the lunch window
	// uncovered, which must never be flagged FREE.
	entries := []CourseEntry{
		{Time: "09H:00-12H:15", Course: "Algo", Room: "B204"},
		{Time: "13H:30-16H:45", Course: "Web", Room: "B204"},
	}
	got := FillGaps(entries, "B204")
	if len(got) != 2 {
		t.Errorf("lunch gap was filled: %+v", got)
	}
}

func TestFillGapsPartialMorning(t *testing.T) {
	entries := []CourseEntry{
		{Time: "10H:45-12H:15", Course: "BI", Room: "C012"},
	}
	got := FillGaps(entries, "C012")

	want := []CourseEntry{
		{Time: "09H:00-10H:45", Course: string(StatusFree), Room: "C012"},
		{Time: "10H:45-12H:15", Course: "BI", Room: "C012"},
		{Time: "13H:30-16H:45", Course: string(StatusFree), Room: "C012"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFillGapsSpanningLunch(t *testing.T) {
	// A gap straddling lunch is clipped into two FREE entries.
	entries := []CourseEntry{
		{Time: "09H:00-10H:30", Course: "Algo", Room: "B204"},
		{Time: "15H:15-16H:45", Course: "Web", Room: "B204"},
	}
	got := FillGaps(entries, "B204")

	var free []CourseEntry
	for _, e := range got {
		if e.IsFree() {
			free = append(free, e)
		}
	}
	if len(free) != 2 {
		t.Fatalf("got %d FREE entries, want 2: %+v", len(free), got)
	}
	if free[0].Time != "10H:30-12H:15" {
		t.Errorf("pre-lunch gap = %q", free[0].Time)
	}
	if free[1].Time != "13H:30-15H:15" {
		t.Errorf("post-lunch gap = %q", free[1].Time)
	}
}

func TestFillGapsEmptyDay(t *testing.T) {
	got := FillGaps(nil, "B204")
	if len(got) != 2 || got[0].Time != MorningSlot || got[1].Time != AfternoonSlot {
		t.Errorf("empty day = %+v", got)
	}
}

func TestGapEntriesInsideLunch(t *testing.T) {
	if got := gapEntries(LunchStart, LunchEnd, "B204"); got != nil {
		t.Errorf("gap inside lunch yielded %+v", got)
	}
}
