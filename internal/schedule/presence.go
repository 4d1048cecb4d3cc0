package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The coarse analysis mode works on four canonical sub-slots instead of
// the morning/afternoon pair, and reports bare FILLED/EMPTY presence
// per group and day. It is independent of the FREE/NOT-FREE pipeline.

// SubSlot is one of the four canonical scheduling sub-windows.
type SubSlot struct {
	Start int
	End   int
	Name  string
}

// SubSlots lists the four canonical sub-windows in chronological order.
var SubSlots = []SubSlot{
	{540, 630, "09H:00-10H:30"},
	{645, 735, "10H:45-12H:15"},
	{810, 900, "13H:30-15H:00"},
	{915, 1005, "15H:15-16H:45"},
}

// Presence statuses for the coarse CSV output.
const (
	SlotFilled = "FILLED"
	SlotEmpty  = "EMPTY"
)

// rawSampleLen bounds the raw text sample carried in each row.
const rawSampleLen = 160

// PresenceRow is one flattened observation of the coarse analysis.
type PresenceRow struct {
	Group  string
	Day    string
	Slot   string
	Status string
	Raw    string
}

var (
	// Loose time-range shapes seen in the wild: 09H:00-10H30, 9:00-10:30
	// and bare 0900-1030, with ASCII or typographic dashes.
	looseHourRangeRe  = regexp.MustCompile(`(?i)(\d{1,2})H:?(\d{0,2})\s*[-–—]\s*(\d{1,2})H:?(\d{0,2})`)
	loosePlainRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[-–—]\s*(\d{1,2}):(\d{2})`)
	looseBareRangeRe  = regexp.MustCompile(`\b(\d{3,4})\s*[-–—]\s*(\d{3,4})\b`)

	dayBlockRe = regexp.MustCompile(`(?i)(Lundi|Mardi|Mercredi|Jeudi|Vendredi|Samedi)\b(?:\s*\d{1,2}/\d{1,2}/\d{4})?`)

	meaningfulRe    = regexp.MustCompile(`[A-Za-z0-9À-ÖØ-öø-ÿ]`)
	presenceNoiseRe = regexp.MustCompile(`(?i)^(Salle|Pause|Horaire|Heure)\b`)
)

// AnalyzePresence runs the coarse FILLED/EMPTY analysis over the whole
// document text. groupFilter, when non-empty, keeps only groups whose
// identifier contains it (case-insensitive).
func AnalyzePresence(text string, groupFilter string) []PresenceRow {
	var rows []PresenceRow
	seen := make(map[string]bool)

	for gi, groupText := range splitGroups(text) {
		group := detectGroupName(groupText, gi+1)
		if groupFilter != "" && !strings.Contains(strings.ToUpper(group), strings.ToUpper(groupFilter)) {
			continue
		}
		if seen[group] {
			group = fmt.Sprintf("%s_%d", group, gi+1)
		}
		seen[group] = true

		blocks := dayBlocks(groupText)
		for _, day := range DayNames {
			block := blocks[day]
			filled := detectFilledSlots(block)
			raw := block
			if len(raw) > rawSampleLen {
				raw = raw[:rawSampleLen] + "..."
			}
			for i, slot := range SubSlots {
				status := SlotEmpty
				if filled[i] {
					status = SlotFilled
				}
				rows = append(rows, PresenceRow{
					Group:  group,
					Day:    day,
					Slot:   slot.Name,
					Status: status,
					Raw:    raw,
				})
			}
		}
	}
	return rows
}

// splitGroups divides the document by the header marker.
func splitGroups(text string) []string {
	var groups []string
	for _, part := range headerMarkerRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			groups = append(groups, part)
		}
	}
	return groups
}

// detectGroupName runs the identifier variant ladder over the head of a
// group section; a section with no recognizable token gets a synthetic
// positional name so its rows still appear in the output.
func detectGroupName(groupText string, index int) string {
	head := groupText
	if len(head) > 400 {
		head = head[:400]
	}
	for _, re := range classCandidateRes {
		if m := re.FindStringSubmatch(head); m != nil {
			name := cleanIdentifier(m[1])
			if len(name) >= 2 {
				return name
			}
		}
	}
	return fmt.Sprintf("Group_%d", index)
}

// dayBlocks splits a group section into per-day text blocks. Days with
// no header map to the empty string.
func dayBlocks(groupText string) map[string]string {
	blocks := make(map[string]string, len(DayNames))
	for _, d := range DayNames {
		blocks[d] = ""
	}

	items := dayBlockRe.FindAllStringSubmatchIndex(groupText, -1)
	for i, m := range items {
		day := normalizeDayName(groupText[m[2]:m[3]])
		start := m[1]
		end := len(groupText)
		if i+1 < len(items) {
			end = items[i+1][0]
		}
		if _, ok := blocks[day]; ok && blocks[day] == "" {
			blocks[day] = strings.TrimSpace(groupText[start:end])
		}
	}
	return blocks
}

func normalizeDayName(raw string) string {
	lower := strings.ToLower(raw)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// detectFilledSlots marks each sub-slot touched by any parsed time
// range in the block. When no range parses at all, meaningful content
// lines fill slots positionally, one line per slot, as a last resort.
func detectFilledSlots(dayBlock string) [4]bool {
	var filled [4]bool
	if dayBlock == "" {
		return filled
	}

	any := false
	for _, r := range looseRanges(dayBlock) {
		for i, slot := range SubSlots {
			if Overlaps(r[0], r[1], slot.Start, slot.End) {
				filled[i] = true
				any = true
			}
		}
	}
	if any {
		return filled
	}

	count := 0
	for _, line := range strings.Split(dayBlock, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || !meaningfulRe.MatchString(line) || presenceNoiseRe.MatchString(line) {
			continue
		}
		if count >= len(SubSlots) {
			break
		}
		filled[count] = true
		count++
	}
	return filled
}

// looseRanges parses every recognizable time-range shape in a block
// into minute pairs, tolerating the document's inconsistent formats.
func looseRanges(block string) [][2]int {
	var out [][2]int
	for _, m := range looseHourRangeRe.FindAllStringSubmatch(block, -1) {
		start := looseMinutes(m[1], m[2])
		end := looseMinutes(m[3], m[4])
		if start >= 0 && end >= 0 {
			out = append(out, [2]int{start, end})
		}
	}
	for _, m := range loosePlainRangeRe.FindAllStringSubmatch(block, -1) {
		start := looseMinutes(m[1], m[2])
		end := looseMinutes(m[3], m[4])
		if start >= 0 && end >= 0 {
			out = append(out, [2]int{start, end})
		}
	}
	for _, m := range looseBareRangeRe.FindAllStringSubmatch(block, -1) {
		start := bareMinutes(m[1])
		end := bareMinutes(m[2])
		if start >= 0 && end >= 0 {
			out = append(out, [2]int{start, end})
		}
	}
	return out
}

// looseMinutes converts split hour/minute tokens; a missing minute part
// means the top of the hour.
func looseMinutes(h, m string) int {
	hour, err := strconv.Atoi(h)
	if err != nil || hour > 23 {
		return -1
	}
	minute := 0
	if m != "" {
		minute, err = strconv.Atoi(m)
		if err != nil || minute > 59 {
			return -1
		}
	}
	return hour*60 + minute
}

// bareMinutes converts compact tokens like "0900" or "930".
func bareMinutes(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	hour := n / 100
	minute := n % 100
	if hour > 23 || minute > 59 {
		return -1
	}
	return hour*60 + minute
}
