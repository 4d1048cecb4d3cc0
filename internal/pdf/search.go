package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Search locates schedule PDFs on disk.
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a new PDF search handler with the specified
// constraints.
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// FindLatestPDF walks a directory and returns the most recently
// modified valid PDF inside it. Weekly exports pile up in one folder;
// the newest one is the current schedule.
func (s *Search) FindLatestPDF(directory string) (string, error) {
	if directory == "" {
		return "", fmt.Errorf("directory cannot be empty")
	}
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return "", fmt.Errorf("directory does not exist: %s", directory)
	}

	var (
		latest     string
		latestTime time.Time
	)
	err := filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr // Intentionally continue on file errors
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(info.Name()), ".pdf") {
			return nil
		}
		if err := s.validator.ValidateFileInfo(path); err != nil {
			return nil //nolint:nilerr // Intentionally continue on validation errors
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latest = path
			latestTime = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk directory: %w", err)
	}
	if latest == "" {
		return "", fmt.Errorf("no PDF files found in %s", directory)
	}
	return latest, nil
}
