package schedule

import "testing"

func testDays(names ...string) []Day {
	days := make([]Day, len(names))
	for i, n := range names {
		days[i] = Day{Name: n, Key: n}
	}
	return days
}

func TestClassifySlot(t *testing.T) {
	tests := []struct {
		in   string
		want slotKind
	}{
		{"09H:00-12H:15", slotMorning},
		{"10H:45-12H:15", slotMorning},
		{"12H:00-13H:30", slotAfternoon},
		{"13H:30-16H:45", slotAfternoon},
		{"not a time", slotMorning},
	}
	for _, tt := range tests {
		if got := classifySlot(tt.in); got != tt.want {
			t.Errorf("classifySlot(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAssignSequentialFullDays(t *testing.T) {
	days := testDays("Lundi", "Mardi")
	blocks := []Block{
		{Time: MorningSlot, Course: "Algo", Room: "B204"},
		{Time: AfternoonSlot, Course: "Réseaux", Room: "B204"},
		{Time: MorningSlot, Course: "BD", Room: "C105"},
		{Time: AfternoonSlot, Course: "Web", Room: "C105"},
	}

	grid := AssignSequential(days, blocks)
	if got := len(grid["Lundi"]); got != 2 {
		t.Fatalf("Lundi has %d entries, want 2", got)
	}
	if got := len(grid["Mardi"]); got != 2 {
		t.Fatalf("Mardi has %d entries, want 2", got)
	}
	if grid["Mardi"][0].Course != "BD" || grid["Mardi"][1].Course != "Web" {
		t.Errorf("Mardi = %+v", grid["Mardi"])
	}
}

func TestAssignSequentialMorningAfterMorning(t *testing.T) {
	// A morning block while an afternoon is expected closes the current
	// day: the earlier day simply had no afternoon course.
	days := testDays("Lundi", "Mardi")
	blocks := []Block{
		{Time: MorningSlot, Course: "Algo", Room: "B204"},
		{Time: MorningSlot, Course: "BD", Room: "C105"},
	}

	grid := AssignSequential(days, blocks)
	if len(grid["Lundi"]) != 1 || grid["Lundi"][0].Course != "Algo" {
		t.Errorf("Lundi = %+v", grid["Lundi"])
	}
	if len(grid["Mardi"]) != 1 || grid["Mardi"][0].Course != "BD" {
		t.Errorf("Mardi = %+v", grid["Mardi"])
	}
}

func TestAssignSequentialAfternoonOnly(t *testing.T) {
	// An afternoon block while a morning is expected fills the afternoon
	// and advances to the next day.
	days := testDays("Lundi", "Mardi")
	blocks := []Block{
		{Time: AfternoonSlot, Course: "Web", Room: "B204"},
		{Time: MorningSlot, Course: "BD", Room: "C105"},
	}

	grid := AssignSequential(days, blocks)
	if len(grid["Lundi"]) != 1 || grid["Lundi"][0].Course != "Web" {
		t.Errorf("Lundi = %+v", grid["Lundi"])
	}
	if len(grid["Mardi"]) != 1 || grid["Mardi"][0].Course != "BD" {
		t.Errorf("Mardi = %+v", grid["Mardi"])
	}
}

func TestAssignSequentialDropsTail(t *testing.T) {
	days := testDays("Lundi")
	blocks := []Block{
		{Time: MorningSlot, Course: "Algo", Room: "B204"},
		{Time: AfternoonSlot, Course: "Web", Room: "B204"},
		{Time: MorningSlot, Course: "Fantôme", Room: "Z999"},
	}

	grid := AssignSequential(days, blocks)
	if len(grid["Lundi"]) != 2 {
		t.Errorf("Lundi = %+v", grid["Lundi"])
	}
	for _, e := range grid["Lundi"] {
		if e.Course == "Fantôme" {
			t.Errorf("tail block past the last day was kept: %+v", grid["Lundi"])
		}
	}
}

func TestAssignSpatial(t *testing.T) {
	days := []Day{
		{Name: "Lundi", Key: "Lundi 03/11/2025", X: 100, HasX: true},
		{Name: "Mardi", Key: "Mardi 04/11/2025", X: 300, HasX: true},
	}
	blocks := []Block{
		{Time: AfternoonSlot, Course: "Web", Room: "B204", X: 110, HasX: true},
		{Time: MorningSlot, Course: "Algo", Room: "B204", X: 95, HasX: true},
		{Time: MorningSlot, Course: "BD", Room: "C105", X: 290, HasX: true},
	}

	grid := AssignSpatial(days, blocks)
	lundi := grid["Lundi 03/11/2025"]
	if len(lundi) != 2 {
		t.Fatalf("Lundi has %d entries, want 2: %+v", len(lundi), lundi)
	}
	// Sorted by start time regardless of extraction order.
	if lundi[0].Course != "Algo" || lundi[1].Course != "Web" {
		t.Errorf("Lundi = %+v", lundi)
	}
	mardi := grid["Mardi 04/11/2025"]
	if len(mardi) != 1 || mardi[0].Course != "BD" {
		t.Errorf("Mardi = %+v", mardi)
	}
}

func TestAssignSpatialDedupes(t *testing.T) {
	days := []Day{{Name: "Lundi", Key: "Lundi", X: 100, HasX: true}}
	b := Block{Time: MorningSlot, Course: "Algo", Room: "B204", X: 100, HasX: true}

	grid := AssignSpatial(days, []Block{b, b})
	if len(grid["Lundi"]) != 1 {
		t.Errorf("duplicate entry kept: %+v", grid["Lundi"])
	}
}

func TestColumnFor(t *testing.T) {
	columns := []Day{{X: 100}, {X: 200}, {X: 300}}
	tests := []struct {
		x    float64
		want int
	}{
		{50, 0},
		{149, 0},
		{151, 1},
		{249, 1},
		{251, 2},
		{400, 2},
	}
	for _, tt := range tests {
		if got := columnFor(columns, tt.x); got != tt.want {
			t.Errorf("columnFor(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
