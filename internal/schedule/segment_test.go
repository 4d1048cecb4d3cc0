package schedule

import (
	"strings"
	"testing"
)

func TestSegmenterSplitPages(t *testing.T) {
	text := "Emploi du Temps 4SAE11\ncontent one" + PageSeparator +
		"Emploi du Temps 4TWIN2\ncontent two"

	sections := NewSegmenter(false).Split(text)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Class != "4SAE11" || sections[1].Class != "4TWIN2" {
		t.Errorf("classes = %q, %q", sections[0].Class, sections[1].Class)
	}
}

func TestSegmenterSplitSingleBlob(t *testing.T) {
	// No page separators: sections are recovered from the header marker.
	text := "Emploi du Temps 4SAE11\ncontent one\nEmploi du Temps 4TWIN2\ncontent two"

	sections := NewSegmenter(false).Split(text)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[1].Class != "4TWIN2" {
		t.Errorf("second class = %q", sections[1].Class)
	}
}

func TestSegmenterSkipsUnidentifiedSections(t *testing.T) {
	text := "Couverture du document, rien d'utile" + PageSeparator +
		"Emploi du Temps 4SAE11\ncontent"

	sections := NewSegmenter(false).Split(text)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Class != "4SAE11" {
		t.Errorf("class = %q", sections[0].Class)
	}
}

func TestSegmenterDuplicateLastWriteWins(t *testing.T) {
	text := "Emploi du Temps 4SAE11\nfirst version" + PageSeparator +
		"Emploi du Temps 4TWIN2\nother" + PageSeparator +
		"Emploi du Temps 4SAE11\nsecond version"

	sections := NewSegmenter(false).Split(text)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	// The duplicate keeps its original position but carries the later text.
	if sections[0].Class != "4SAE11" {
		t.Errorf("first class = %q", sections[0].Class)
	}
	if !strings.Contains(sections[0].Text, "second version") {
		t.Errorf("section text not overwritten: %q", sections[0].Text)
	}
}

func TestExtractClassVariants(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    string
	}{
		{"header token", "Emploi du Temps 4SAE11\n...", "4SAE11"},
		{"header token with suffix", "Emploi du Temps 4TWIN2Année Universitaire : 2025/2026", "4TWIN2"},
		{"classe label", "Classe : 4 SAE 11\nreste", "4SAE11"},
		{"spaced variant", "4 ARCTIC9 planning", "4ARCTIC9"},
		{"hyphenated variant", "4ERP-BI1 planning", "4ERP-BI1"},
		{"nothing", "page de garde sans identifiant", ""},
	}

	s := NewSegmenter(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.extractClass(tt.section); got != tt.want {
				t.Errorf("extractClass() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4 SAE 11", "4SAE11"},
		{"4erp-bi1", "4ERP-BI1"},
		{" 4twin2 ", "4TWIN2"},
	}
	for _, tt := range tests {
		if got := cleanIdentifier(tt.in); got != tt.want {
			t.Errorf("cleanIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractMetadata(t *testing.T) {
	section := `Emploi du Temps 4SAE11
Année Universitaire : 2025/2026
Semestre : 1
03/11/2025 - 08/11/2025
`
	meta := extractMetadata(section)
	if meta.Year != "2025/2026" {
		t.Errorf("Year = %q", meta.Year)
	}
	if meta.Semester != "1" {
		t.Errorf("Semester = %q", meta.Semester)
	}
	if meta.Period != "03/11/2025 - 08/11/2025" {
		t.Errorf("Period = %q", meta.Period)
	}
}

func TestExtractMetadataMissingFields(t *testing.T) {
	meta := extractMetadata("Emploi du Temps 4SAE11")
	if meta != (Metadata{}) {
		t.Errorf("expected empty metadata, got %+v", meta)
	}
}
