package schedule

import (
	"regexp"
	"strings"
)

// Block is a (time, title, room) triple recovered from raw text, before
// any day/slot assignment. X carries the horizontal position of the
// time token when the spatial strategy produced the block.
type Block struct {
	Time   string
	Course string
	Room   string
	X      float64
	HasX   bool
}

// Extractor turns one class section into an ordered list of course
// blocks. Implementations are alternative heuristics for different
// document revisions; the parser tries them in a fixed priority order
// and keeps the first non-empty result.
type Extractor interface {
	Name() string
	Extract(section string) []Block
}

var (
	timeAnchorRe = regexp.MustCompile(`(\d{2}):(\d{2})\s*-\s*(\d{2}):(\d{2})`)
	dataStartRe  = regexp.MustCompile(`17h`)

	roomRe   = regexp.MustCompile(`^[A-Z]\d+$`)
	onlineRe = regexp.MustCompile(`(?i)^En\s+ligne$`)

	hourMarkerRe = regexp.MustCompile(`^\d{2}h$`)
	shortDateRe  = regexp.MustCompile(`^\d{2}/\d{2}$`)
	dateRangeRe  = regexp.MustCompile(`\d{2}/\d{2}/\d{4}\s*-\s*\d{2}/\d{2}/\d{4}`)

	yearTokenRe  = regexp.MustCompile(`\b\d{4}\b`)
	leadHourRe   = regexp.MustCompile(`^\d{2}h`)
	midHourRe    = regexp.MustCompile(`\s\d{2}h\b`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// noiseStrings are institutional boilerplate fragments; a line
// containing any of them carries no course data.
var noiseStrings = []string{
	"Emploi du Temps",
	"Université",
	"Universitaire",
	"ESPRIT",
}

// AnchorExtractor implements the global time-anchor scan: every
// HH:MM - HH:MM occurrence on the page anchors one candidate block,
// whose room and title are recovered from the text between it and the
// previous anchor.
type AnchorExtractor struct{}

func (AnchorExtractor) Name() string { return "anchor" }

func (AnchorExtractor) Extract(section string) []Block {
	matches := timeAnchorRe.FindAllStringSubmatchIndex(section, -1)
	dataStart := 0
	if loc := dataStartRe.FindStringIndex(section); loc != nil {
		// Last hour marker of the header row; everything before it is
		// the grid chrome, not data.
		dataStart = loc[1]
	}

	var blocks []Block
	for i, m := range matches {
		windowStart := dataStart
		if i > 0 {
			windowStart = matches[i-1][1]
		}
		if windowStart > m[0] {
			windowStart = m[0]
		}
		window := section[windowStart:m[0]]

		timeStr := NormalizeRange(
			atoi2(section[m[2]:m[3]]), atoi2(section[m[4]:m[5]]),
			atoi2(section[m[6]:m[7]]), atoi2(section[m[8]:m[9]]),
		)
		if b, ok := buildBlock(timeStr, window); ok {
			blocks = append(blocks, b)
		}
	}
	return dedupeAdjacent(blocks)
}

// buildBlock recovers room and title from the text window preceding a
// time anchor. A block failing any required-field check is dropped as
// insufficient evidence, never reported as an error.
func buildBlock(timeStr, window string) (Block, bool) {
	lines := filterCourseLines(window)
	if len(lines) < 2 {
		return Block{}, false
	}

	room, rest := takeRoom(lines)
	if room == "" || len(rest) == 0 {
		return Block{}, false
	}

	title := CleanTitle(strings.Join(rest, " "))
	if len(title) < 3 {
		return Block{}, false
	}
	return Block{Time: timeStr, Course: title, Room: room}, true
}

// filterCourseLines splits a window into lines and discards grid noise:
// standalone hour markers, dates, day names and boilerplate. A line
// with an embedded time range keeps only the non-time remainder when it
// is long enough to carry data.
func filterCourseLines(window string) []string {
	var out []string
	for _, line := range strings.Split(window, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isNoiseLine(line) {
			continue
		}
		if timeAnchorRe.MatchString(line) {
			rest := strings.TrimSpace(timeAnchorRe.ReplaceAllString(line, ""))
			if len(rest) >= 3 {
				out = append(out, rest)
			}
			continue
		}
		out = append(out, line)
	}
	return out
}

func isNoiseLine(line string) bool {
	if hourMarkerRe.MatchString(line) || shortDateRe.MatchString(line) || dateRangeRe.MatchString(line) {
		return true
	}
	if strings.Contains(line, "Année") {
		return true
	}
	for _, d := range DayNames {
		if line == d || strings.HasPrefix(line, d+" ") {
			return true
		}
	}
	for _, s := range noiseStrings {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// takeRoom tests the last line against the room patterns. On a match it
// is consumed as the room; otherwise no room is recoverable here.
func takeRoom(lines []string) (string, []string) {
	last := lines[len(lines)-1]
	switch {
	case roomRe.MatchString(last):
		return last, lines[:len(lines)-1]
	case onlineRe.MatchString(last):
		return RoomOnline, lines[:len(lines)-1]
	}
	return "", lines
}

// CleanTitle strips embedded years and glued hour prefixes ("17hALGO")
// from a raw title and collapses whitespace. Applying it twice yields
// the same result as applying it once.
func CleanTitle(title string) string {
	title = yearTokenRe.ReplaceAllString(title, "")
	title = leadHourRe.ReplaceAllString(title, "")
	title = midHourRe.ReplaceAllString(title, "")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(title, " "))
}

// SlashExtractor handles the revisions that encode blocks literally as
// "Title/Room/" or "Title/\nEn Ligne". The time comes from a bounded
// look-back window; a block with no explicit time is a morning course.
type SlashExtractor struct{}

func (SlashExtractor) Name() string { return "slash" }

// lookBack bounds how far behind a slash block an explicit time range
// is searched for.
const lookBack = 200

var (
	slashRoomRe   = regexp.MustCompile(`([^/\n]+?)/\s*([A-Z]\d+)\s*/`)
	slashOnlineRe = regexp.MustCompile(`(?i)([^/\n]+?)/\s*\n?\s*En\s+ligne`)
	slashTimeRe   = regexp.MustCompile(`(\d{2})H:(\d{2})\s*-\s*(\d{2})H:(\d{2})`)
	slashDateRe   = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

func (SlashExtractor) Extract(section string) []Block {
	type hit struct {
		start int
		title string
		room  string
	}
	var hits []hit
	for _, m := range slashRoomRe.FindAllStringSubmatchIndex(section, -1) {
		hits = append(hits, hit{m[0], section[m[2]:m[3]], section[m[4]:m[5]]})
	}
	for _, m := range slashOnlineRe.FindAllStringSubmatchIndex(section, -1) {
		hits = append(hits, hit{m[0], section[m[2]:m[3]], RoomOnline})
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].start < hits[j-1].start; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	var blocks []Block
	for _, h := range hits {
		title := CleanTitle(slashDateRe.ReplaceAllString(h.title, ""))
		if len(title) < 3 {
			continue
		}
		from := h.start - lookBack
		if from < 0 {
			from = 0
		}
		timeStr := MorningSlot
		if m := slashTimeRe.FindAllStringSubmatch(section[from:h.start], -1); len(m) > 0 {
			last := m[len(m)-1]
			timeStr = NormalizeRange(atoi2(last[1]), atoi2(last[2]), atoi2(last[3]), atoi2(last[4]))
		}
		blocks = append(blocks, Block{Time: timeStr, Course: title, Room: h.room})
	}
	return dedupeAdjacent(blocks)
}

// dedupeAdjacent drops consecutive identical (time, course, room)
// triples, an artifact of running text duplicated at page joints.
func dedupeAdjacent(blocks []Block) []Block {
	var out []Block
	for _, b := range blocks {
		if n := len(out); n > 0 {
			p := out[n-1]
			if p.Time == b.Time && p.Course == b.Course && p.Room == b.Room {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}
