package schedule

import "testing"

func TestClockToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"09H:00", 540},
		{"12H:15", 735},
		{"13H:30", 810},
		{"16H:45", 1005},
		{"00H:00", 0},
		{"9:00", -1},
		{"garbage", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := ClockToMinutes(tt.in); got != tt.want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinutesToClockRoundTrip(t *testing.T) {
	for _, m := range []int{0, 540, 645, 735, 810, 915, 1005} {
		s := MinutesToClock(m)
		if got := ClockToMinutes(s); got != m {
			t.Errorf("round trip of %d via %q = %d", m, s, got)
		}
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in    string
		start int
		end   int
		ok    bool
	}{
		{"09H:00-12H:15", 540, 735, true},
		{"13H:30-16H:45", 810, 1005, true},
		{"09H:00 - 12H:15", 0, 0, false}, // spaces are not canonical
		{"9H:00-12H:15", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		start, end, ok := ParseRange(tt.in)
		if ok != tt.ok || start != tt.start || end != tt.end {
			t.Errorf("ParseRange(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.in, start, end, ok, tt.start, tt.end, tt.ok)
		}
	}
}

func TestFormatRange(t *testing.T) {
	if got := FormatRange(540, 735); got != "09H:00-12H:15" {
		t.Errorf("FormatRange(540, 735) = %q", got)
	}
	if got := NormalizeRange(9, 0, 12, 15); got != MorningSlot {
		t.Errorf("NormalizeRange(9,0,12,15) = %q, want %q", got, MorningSlot)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 540, 735, 540, 735, true},
		{"partial", 540, 735, 700, 900, true},
		{"contained", 540, 1005, 600, 700, true},
		{"disjoint", 540, 630, 810, 900, false},
		{"shared boundary", 540, 630, 630, 735, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Overlap is symmetric.
			if rev := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); rev != got {
				t.Errorf("overlap not symmetric for %v", tt.name)
			}
		})
	}
}
