package schedule

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON exports the document as pretty-printed UTF-8 JSON, classes
// and days in insertion order, non-ASCII preserved. An export failure
// never corrupts the in-memory document.
func WriteJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// csvHeader matches the original flat export layout.
var csvHeader = []string{"group", "day", "slot", "status", "raw"}

// WriteCSV exports coarse presence rows as a flat CSV file.
func WriteCSV(rows []PresenceRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Group, r.Day, r.Slot, r.Status, r.Raw}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
