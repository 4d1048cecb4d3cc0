package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/TheLime1/esprit-empty-class/internal/config"
	"github.com/TheLime1/esprit-empty-class/internal/pdf"
	"github.com/TheLime1/esprit-empty-class/internal/schedule"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	inputPath, err := resolveInput(cfg)
	if err != nil {
		return err
	}

	validator := pdf.NewValidator(cfg.MaxFileSize)
	if err := validator.ValidateFile(inputPath); err != nil {
		return err
	}

	reader := pdf.NewReader(cfg.MaxFileSize)
	parser := schedule.NewParser(schedule.Options{
		Strategy:     cfg.Strategy,
		FallbackYear: cfg.FallbackYear,
		ClassFilter:  cfg.ClassFilter,
		Debug:        cfg.IsDebug(),
	})

	var rawText string
	if cfg.Strategy == config.StrategySpatial {
		words, err := reader.ExtractWords(inputPath)
		if err != nil {
			return err
		}
		parser.ParsePositioned(words)
		if cfg.WantsCSV() {
			result, err := reader.ReadFile(inputPath)
			if err != nil {
				return err
			}
			rawText = joinPages(result.Pages)
		}
	} else {
		result, err := reader.ReadFile(inputPath)
		if err != nil {
			return err
		}
		parser.ParsePages(result.Pages)
		rawText = joinPages(result.Pages)
	}

	doc := parser.Document()
	if doc.Len() == 0 && !cfg.WantsCSV() {
		return fmt.Errorf("no classes found in %s (filter: %q)", inputPath, cfg.ClassFilter)
	}

	stats := parser.Finalize()

	if cfg.WantsJSON() {
		if err := schedule.WriteJSON(doc, cfg.JSONFile); err != nil {
			return err
		}
		log.Printf("schedules exported to %s", cfg.JSONFile)
	}
	if cfg.WantsCSV() {
		rows := schedule.AnalyzePresence(rawText, cfg.ClassFilter)
		if err := schedule.WriteCSV(rows, cfg.CSVFile); err != nil {
			return err
		}
		log.Printf("presence rows exported to %s", cfg.CSVFile)
	}

	fmt.Printf("Process completed successfully\n")
	fmt.Printf("  Classes found:        %d\n", doc.Len())
	fmt.Printf("  FREE -> NOT-FREE:     %d\n", stats.NotFree)
	fmt.Printf("  FREE -> FREEWARNING:  %d\n", stats.Warnings)
	return nil
}

// resolveInput accepts either a PDF path or a directory, in which case
// the most recently modified PDF inside it is used.
func resolveInput(cfg *config.Config) (string, error) {
	info, err := os.Stat(cfg.InputPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file '%s' not found", cfg.InputPath)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access '%s': %w", cfg.InputPath, err)
	}
	if !info.IsDir() {
		return cfg.InputPath, nil
	}

	search := pdf.NewSearch(cfg.MaxFileSize)
	latest, err := search.FindLatestPDF(cfg.InputPath)
	if err != nil {
		return "", err
	}
	log.Printf("using newest PDF in directory: %s", latest)
	return latest, nil
}

func joinPages(pages []string) string {
	return strings.Join(pages, schedule.PageSeparator)
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("esprit-empty-class\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
}
