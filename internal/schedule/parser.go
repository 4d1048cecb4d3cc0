package schedule

import (
	"log"
	"strings"

	"github.com/TheLime1/esprit-empty-class/internal/pdf"
)

// Extraction strategy names. Auto tries the text strategies in priority
// order and keeps the first that yields blocks; spatial must be asked
// for explicitly since which strategy is authoritative for documents
// where both apply is a configuration decision, not an inference.
const (
	StrategyAuto    = "auto"
	StrategyAnchor  = "anchor"
	StrategySlash   = "slash"
	StrategySpatial = "spatial"
)

// DefaultFallbackYear is used when neither a day's date token nor the
// document date range carries a year. It is a known weak default for
// documents from other years; override it via configuration.
const DefaultFallbackYear = "2025"

// Options configures a parsing run.
type Options struct {
	Strategy     string // auto, anchor, slash, spatial
	FallbackYear string
	ClassFilter  string // substring filter on class identifiers
	Debug        bool
}

// Parser owns all state accumulated across a run: the document being
// built and the per-class room usage counters. It is not safe for
// concurrent use; the pipeline is synchronous by design, and the
// cross-validation in Finalize requires every class to be complete.
type Parser struct {
	opts      Options
	doc       *Document
	roomUsage map[string]map[string]int
	roomFirst map[string]string // first online room seen per class
	segmenter *Segmenter
}

// NewParser creates a parser with the given options. Zero-value fields
// get their defaults.
func NewParser(opts Options) *Parser {
	if opts.Strategy == "" {
		opts.Strategy = StrategyAuto
	}
	if opts.FallbackYear == "" {
		opts.FallbackYear = DefaultFallbackYear
	}
	return &Parser{
		opts:      opts,
		doc:       NewDocument(),
		roomUsage: make(map[string]map[string]int),
		roomFirst: make(map[string]string),
		segmenter: NewSegmenter(opts.Debug),
	}
}

// ParsePages runs the per-class pipeline over per-page extracted text.
func (p *Parser) ParsePages(pages []string) {
	p.ParseText(strings.Join(pages, PageSeparator))
}

// ParseText runs the per-class pipeline (segment, locate days, extract
// blocks, assign slots, fill gaps) over a full text blob. Call Finalize
// once after all input has been parsed.
func (p *Parser) ParseText(text string) {
	sections := p.segmenter.Split(text)
	log.Printf("analyzing %d sections...", len(sections))

	for _, sec := range sections {
		if !p.keep(sec.Class) {
			continue
		}
		days := LocateDays(sec.Text, p.opts.FallbackYear)
		blocks, fine := p.extractBlocks(sec)
		grid := AssignSequential(days, blocks)
		p.store(sec, days, grid, fine)
	}
	log.Printf("analysis completed, %d classes found", p.doc.Len())
}

// ParsePositioned runs the pipeline using positioned words, one page
// per class section. It is the spatial strategy entry point.
func (p *Parser) ParsePositioned(pages [][]pdf.Word) {
	for _, words := range pages {
		days, blocks := ExtractSpatial(words, p.opts.FallbackYear)
		if len(days) == 0 {
			continue
		}
		section := positionedSectionText(words)
		class := p.segmenter.extractClass(section)
		if class == "" || !p.keep(class) {
			continue
		}
		if _, exists := p.doc.Get(class); exists {
			log.Printf("duplicate class identifier %q, overwriting earlier page", class)
		}
		sec := Section{Class: class, Text: section, Meta: extractMetadata(section)}
		p.trackBlocks(class, blocks)
		grid := AssignSpatial(days, blocks)
		p.store(sec, days, grid, true)
	}
	log.Printf("analysis completed, %d classes found", p.doc.Len())
}

// extractBlocks runs the configured strategy; auto tries anchor first
// and falls back to the slash scan when a class yields nothing.
// Strategies are never mixed for one class.
func (p *Parser) extractBlocks(sec Section) (blocks []Block, fine bool) {
	var chain []Extractor
	switch p.opts.Strategy {
	case StrategyAnchor:
		chain = []Extractor{AnchorExtractor{}}
	case StrategySlash:
		chain = []Extractor{SlashExtractor{}}
	default:
		chain = []Extractor{AnchorExtractor{}, SlashExtractor{}}
	}

	for _, ex := range chain {
		blocks = ex.Extract(sec.Text)
		if len(blocks) > 0 {
			if p.opts.Debug {
				log.Printf("class %s: %d blocks via %s strategy", sec.Class, len(blocks), ex.Name())
			}
			p.trackBlocks(sec.Class, blocks)
			// The slash scan reads fine-grained multi-slot documents;
			// those get the per-gap filler.
			return blocks, ex.Name() == "slash"
		}
	}
	return nil, false
}

// store writes the assigned grid into the document, gap-filled per day.
func (p *Parser) store(sec Section, days []Day, grid map[string][]CourseEntry, fine bool) {
	cs := NewClassSchedule()
	cs.Metadata = sec.Meta

	primary := p.primaryRoom(sec.Class)
	for _, d := range days {
		entries := grid[d.Key]
		if fine {
			entries = FillGaps(entries, primary)
		} else {
			entries = FillDay(entries, primary)
		}
		cs.SetDay(d.Key, entries)
	}
	p.doc.Put(sec.Class, cs)
}

// trackBlocks updates the room usage counters feeding primary-room
// selection.
func (p *Parser) trackBlocks(class string, blocks []Block) {
	for _, b := range blocks {
		usage, ok := p.roomUsage[class]
		if !ok {
			usage = make(map[string]int)
			p.roomUsage[class] = usage
		}
		usage[b.Room]++
		if b.Room == RoomOnline {
			if _, ok := p.roomFirst[class]; !ok {
				p.roomFirst[class] = b.Room
			}
		}
	}
}

// primaryRoom returns the most frequent non-online room recorded for a
// class, the first online room if only online sessions were seen, and
// Unknown when no room was ever recorded.
func (p *Parser) primaryRoom(class string) string {
	usage := p.roomUsage[class]
	if len(usage) == 0 {
		return RoomUnknown
	}

	best := ""
	bestCount := 0
	for room, count := range usage {
		if room == RoomOnline {
			continue
		}
		if count > bestCount || (count == bestCount && room < best) {
			best = room
			bestCount = count
		}
	}
	if best != "" {
		return best
	}
	if first, ok := p.roomFirst[class]; ok {
		return first
	}
	return RoomUnknown
}

// Finalize computes primary rooms into metadata and runs the
// cross-validation pass. It must be called exactly once, after every
// class has been parsed; the occupancy index needs the whole document.
func (p *Parser) Finalize() ReviewStats {
	for _, class := range p.doc.Classes() {
		cs, _ := p.doc.Get(class)
		cs.Metadata.PrimaryRoom = p.primaryRoom(class)
	}

	log.Printf("reviewing FREE slots...")
	stats := ReviewFreeSlots(p.doc)
	log.Printf("review completed: %d FREE slots changed to NOT-FREE, %d to FREEWARNING",
		stats.NotFree, stats.Warnings)
	return stats
}

// Document returns the schedule document built so far.
func (p *Parser) Document() *Document {
	return p.doc
}

func (p *Parser) keep(class string) bool {
	if p.opts.ClassFilter == "" {
		return true
	}
	return strings.Contains(strings.ToUpper(class), strings.ToUpper(p.opts.ClassFilter))
}

// positionedSectionText flattens positioned words back into reading
// order text so identifier and metadata extraction can reuse the text
// heuristics.
func positionedSectionText(words []pdf.Word) string {
	lines := groupLines(words)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return strings.Join(texts, "\n")
}
