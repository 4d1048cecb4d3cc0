package schedule

import (
	"log"
	"regexp"
	"strings"
)

// Section is one per-class slice of the extracted document text.
type Section struct {
	Class string
	Text  string
	Meta  Metadata
}

// PageSeparator joins per-page text when the document is flattened into
// a single string. Sections are recovered by splitting on it first; the
// header marker is the fallback for single-blob input.
const PageSeparator = "\x0c"

var (
	headerMarkerRe = regexp.MustCompile(`(?i)Emploi\s+du\s+Temps`)
	headerClassRe  = regexp.MustCompile(`(?i)Emploi du Temps\s+(\S+)`)

	// Identifier variants observed across document revisions, tried in
	// priority order. First match wins.
	classCandidateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Classe|Groupe)\s*[:\-]?\s*([0-9]{1,2}\s*[A-Z]+\s*[0-9]{1,2}[A-Z]?)\b`),
		regexp.MustCompile(`\b([0-9]{1,2}[A-Z][A-Z-]*[0-9]{1,2}[A-Z]?)\b`),
		regexp.MustCompile(`\b([0-9]{1,2}\s+[A-Z][A-Z0-9-]{1,12})\b`),
		regexp.MustCompile(`\b([0-9]{1,2}\-[A-Z]\-[0-9]{1,2})\b`),
	}

	yearMetaRe     = regexp.MustCompile(`Année\s+[Uu]niversitaire\s*:\s*(\d{4}/\d{4})`)
	periodMetaRe   = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})`)
	semesterMetaRe = regexp.MustCompile(`(?i)Semestre\s*[:\-]?\s*(\d)`)

	nonIdentRe = regexp.MustCompile(`[^0-9A-Z\-]`)
)

// Segmenter splits raw extracted document text into per-class sections
// and pulls the class identifier plus header metadata for each.
type Segmenter struct {
	debug bool
}

// NewSegmenter creates a segmenter. With debug enabled, skipped
// sections and identifier collisions are logged.
func NewSegmenter(debug bool) *Segmenter {
	return &Segmenter{debug: debug}
}

// Split breaks the document text into recognizable class sections.
// Sections with no identifiable class token are dropped silently; they
// are cover pages or scan noise, not errors.
func (s *Segmenter) Split(text string) []Section {
	var sections []Section
	seen := make(map[string]int)

	for _, part := range s.splitRaw(text) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		class := s.extractClass(part)
		if class == "" {
			if s.debug {
				log.Printf("segmenter: skipping section with no class identifier (%d bytes)", len(part))
			}
			continue
		}
		sec := Section{Class: class, Text: part, Meta: extractMetadata(part)}
		if idx, dup := seen[class]; dup {
			// Last write wins, but keep the original position.
			log.Printf("segmenter: duplicate class identifier %q, overwriting earlier section", class)
			sections[idx] = sec
			continue
		}
		seen[class] = len(sections)
		sections = append(sections, sec)
	}
	return sections
}

// splitRaw prefers explicit page separators; a single-blob document
// falls back to splitting ahead of each header marker.
func (s *Segmenter) splitRaw(text string) []string {
	if strings.Contains(text, PageSeparator) {
		return strings.Split(text, PageSeparator)
	}
	locs := headerMarkerRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}
	var parts []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		parts = append(parts, text[loc[0]:end])
	}
	return parts
}

// extractClass runs the identifier extractors in priority order: the
// token adjacent to the header marker first, then the looser variant
// ladder over the top of the section.
func (s *Segmenter) extractClass(section string) string {
	if m := headerClassRe.FindStringSubmatch(section); m != nil {
		name := strings.TrimSuffix(m[1], "Année")
		name = strings.TrimSpace(name)
		if len(name) >= 2 {
			return name
		}
	}

	head := section
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
	return ""
}

// cleanIdentifier uppercases and strips whitespace and stray
// punctuation from a candidate class token.
func cleanIdentifier(raw string) string {
	name := strings.ToUpper(raw)
	name = strings.Join(strings.Fields(name), "")
	return nonIdentRe.ReplaceAllString(name, "")
}

// extractMetadata pulls the best-effort header fields. Missing fields
// are left empty, never defaulted.
func extractMetadata(section string) Metadata {
	var meta Metadata
	if m := yearMetaRe.FindStringSubmatch(section); m != nil {
		meta.Year = m[1]
	}
	if m := periodMetaRe.FindStringSubmatch(section); m != nil {
		meta.Period = m[1] + " - " + m[2]
	}
	if m := semesterMetaRe.FindStringSubmatch(section); m != nil {
		meta.Semester = m[1]
	}
	return meta
}
