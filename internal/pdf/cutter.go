package pdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Cutter extracts page selections from a PDF into a new document,
// used to carve single-class pages out of the full schedule export.
type Cutter struct {
	conf *model.Configuration
}

// NewCutter creates a page cutter with relaxed validation, since the
// source exports are frequently not spec-clean.
func NewCutter() *Cutter {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Cutter{conf: conf}
}

// PageCount returns the number of pages in the document.
func (c *Cutter) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages of %s: %w", path, err)
	}
	return n, nil
}

// ExtractPages writes the selected pages (1-indexed) of inPath to
// outPath, preserving their order in the source document.
func (c *Cutter) ExtractPages(inPath string, pages []int, outPath string) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to extract")
	}
	total, err := c.PageCount(inPath)
	if err != nil {
		return err
	}
	selected := make([]string, 0, len(pages))
	for _, p := range pages {
		if p < 1 || p > total {
			return fmt.Errorf("page %d out of bounds (1-%d)", p, total)
		}
		selected = append(selected, strconv.Itoa(p))
	}
	if err := api.TrimFile(inPath, outPath, selected, c.conf); err != nil {
		return fmt.Errorf("failed to extract pages: %w", err)
	}
	return nil
}

// ParsePageSpec parses a selection like "1,3,5-7" into a sorted list of
// unique 1-indexed page numbers, validated against totalPages.
func ParsePageSpec(spec string, totalPages int) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("no pages specified")
	}

	seen := make(map[int]bool)
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		nums, err := parsePagePart(token, totalPages)
		if err != nil {
			return nil, err
		}
		for _, n := range nums {
			seen[n] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for n := range seen {
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return pages, nil
}

// parsePagePart handles a single token: a page number or a "5-7" range.
func parsePagePart(part string, totalPages int) ([]int, error) {
	if before, after, ok := strings.Cut(part, "-"); ok {
		start, err := strconv.Atoi(strings.TrimSpace(before))
		if err != nil {
			return nil, fmt.Errorf("invalid range: %q", part)
		}
		end, err := strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return nil, fmt.Errorf("invalid range: %q", part)
		}
		if start > end {
			return nil, fmt.Errorf("invalid range (start > end): %q", part)
		}
		if start < 1 || end > totalPages {
			return nil, fmt.Errorf("range %d-%d out of bounds (1-%d)", start, end, totalPages)
		}
		pages := make([]int, 0, end-start+1)
		for n := start; n <= end; n++ {
			pages = append(pages, n)
		}
		return pages, nil
	}

	n, err := strconv.Atoi(part)
	if err != nil {
		return nil, fmt.Errorf("invalid page number: %q", part)
	}
	if n < 1 || n > totalPages {
		return nil, fmt.Errorf("page %d out of bounds (1-%d)", n, totalPages)
	}
	return []int{n}, nil
}
