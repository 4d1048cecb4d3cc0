package schedule

import (
	"sort"
	"strings"

	"github.com/TheLime1/esprit-empty-class/internal/pdf"
)

// rowTolerance groups positioned fragments whose baselines are within
// this many points into one visual line.
const rowTolerance = 2.5

// textLine is a reconstructed visual line with its horizontal extent.
type textLine struct {
	text string
	x0   float64
	x1   float64
}

func (l textLine) center() float64 {
	return (l.x0 + l.x1) / 2
}

// ExtractSpatial recovers day columns and course blocks from one page's
// positioned words. Unlike the text-stream strategies it keeps the
// horizontal position of every block, so the assigner can map blocks to
// day columns directly instead of inferring the day from block order.
func ExtractSpatial(words []pdf.Word, fallbackYear string) ([]Day, []Block) {
	lines := groupLines(words)
	if len(lines) == 0 {
		return nil, nil
	}

	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	section := strings.Join(texts, "\n")

	days := LocateDays(section, fallbackYear)
	attachColumns(days, words)

	return days, spatialBlocks(lines)
}

// groupLines clusters fragments by baseline, top of page first, and
// orders each line left to right.
func groupLines(words []pdf.Word) []textLine {
	if len(words) == 0 {
		return nil
	}
	sorted := make([]pdf.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Bottom != sorted[j].Bottom {
			return sorted[i].Bottom > sorted[j].Bottom // PDF y grows upward
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines []textLine
	var row []pdf.Word
	flush := func() {
		if len(row) == 0 {
			return
		}
		sort.SliceStable(row, func(i, j int) bool { return row[i].X0 < row[j].X0 })
		var sb strings.Builder
		line := textLine{x0: row[0].X0, x1: row[0].X1}
		for i, w := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.TrimSpace(w.Text))
			if w.X1 > line.x1 {
				line.x1 = w.X1
			}
			if w.X0 < line.x0 {
				line.x0 = w.X0
			}
		}
		line.text = strings.TrimSpace(sb.String())
		if line.text != "" {
			lines = append(lines, line)
		}
		row = nil
	}

	baseline := sorted[0].Bottom
	for _, w := range sorted {
		if baseline-w.Bottom > rowTolerance {
			flush()
			baseline = w.Bottom
		}
		row = append(row, w)
	}
	flush()
	return lines
}

// attachColumns records each day's column position from the fragment
// carrying its header. Fragments are used rather than merged lines:
// side-by-side day headers share a baseline, and only the fragment
// keeps a distinct horizontal position per day.
func attachColumns(days []Day, words []pdf.Word) {
	for i := range days {
		re := dayHeaderRes[days[i].Name]
		for _, w := range words {
			text := strings.TrimSpace(w.Text)
			if re.MatchString(text) || strings.HasPrefix(text, days[i].Name) {
				days[i].X = (w.X0 + w.X1) / 2
				days[i].HasX = true
				break
			}
		}
	}
}

// spatialBlocks runs the time-anchor scan over the reconstructed lines,
// tagging each block with the column position of its time token.
func spatialBlocks(lines []textLine) []Block {
	var blocks []Block
	var window []string
	started := false

	for _, l := range lines {
		if !started && dataStartRe.MatchString(l.text) {
			// Header grid chrome ends at the last hour marker.
			started = true
			window = nil
			continue
		}
		m := timeAnchorRe.FindStringSubmatch(l.text)
		if m == nil {
			window = append(window, l.text)
			continue
		}
		timeStr := NormalizeRange(atoi2(m[1]), atoi2(m[2]), atoi2(m[3]), atoi2(m[4]))
		if b, ok := buildBlock(timeStr, strings.Join(window, "\n")); ok {
			b.X = l.center()
			b.HasX = true
			blocks = append(blocks, b)
		}
		window = nil
	}
	return dedupeAdjacent(blocks)
}
