package pdf

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// progressEvery controls how often multi-page extraction logs progress.
const progressEvery = 50

// Reader extracts text from schedule PDFs. It is the synchronous
// collaborator the reconstruction engine treats as an opaque text
// source.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a new PDF reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ReadFile extracts per-page plain text from a PDF file.
func (r *Reader) ReadFile(path string) (*ReadResult, error) {
	fileInfo, err := r.statPDF(path)
	if err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	total := pdfReader.NumPage()
	log.Printf("extracting text from %s (%d pages)", path, total)

	pages := make([]string, 0, total)
	totalLength := 0
	for pageNum := 1; pageNum <= total; pageNum++ {
		if pageNum%progressEvery == 0 {
			log.Printf("extracting... %d/%d pages", pageNum, total)
		}
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page is absence of evidence, not a
			// reason to abort the document.
			pages = append(pages, "")
			continue
		}
		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				pages = append(pages, content[:remaining])
			}
			break
		}
		pages = append(pages, content)
		totalLength += len(content)
	}

	if totalLength == 0 {
		return nil, fmt.Errorf("no text content could be extracted from PDF")
	}

	return &ReadResult{
		Path:      path,
		Pages:     pages,
		PageCount: total,
		Size:      fileInfo.Size(),
	}, nil
}

// ExtractWords returns the positioned text fragments of every page,
// for the spatial extraction strategy. Pages that fail yield an empty
// slice rather than an error.
func (r *Reader) ExtractWords(path string) ([][]Word, error) {
	if _, err := r.statPDF(path); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	total := pdfReader.NumPage()
	out := make([][]Word, 0, total)
	for pageNum := 1; pageNum <= total; pageNum++ {
		out = append(out, r.pageWords(pdfReader, pageNum))
	}
	return out, nil
}

// pageWords collects positioned fragments from one page, recovering
// from panics inside the underlying library.
func (r *Reader) pageWords(pdfReader *pdf.Reader, pageNum int) (words []Word) {
	defer func() {
		if recover() != nil {
			words = nil
		}
	}()

	page := pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return nil
	}
	for _, text := range page.Content().Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		height := text.FontSize
		if height == 0 {
			height = 12.0
		}
		words = append(words, Word{
			Text:   text.S,
			X0:     text.X,
			X1:     text.X + text.W,
			Top:    text.Y + height,
			Bottom: text.Y,
		})
	}
	return words
}

// statPDF performs the shared file checks before opening.
func (r *Reader) statPDF(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}
	return fileInfo, nil
}
