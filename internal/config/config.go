package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Output format constants
	OutJSON = "json"
	OutCSV  = "csv"
	OutBoth = "both"

	// Extraction strategy constants
	StrategyAuto    = "auto"
	StrategyAnchor  = "anchor"
	StrategySlash   = "slash"
	StrategySpatial = "spatial"

	// Default values
	DefaultOut          = OutJSON
	DefaultJSONFile     = "schedules.json"
	DefaultCSVFile      = "results.csv"
	DefaultLogLevel     = "info"
	DefaultFallbackYear = "2025"
	DefaultMaxFileSize  = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the schedule extraction CLI.
type Config struct {
	// Input configuration
	InputPath string // PDF file, or a directory to pick the newest PDF from

	// Output configuration
	Out      string // "json", "csv" or "both"
	JSONFile string
	CSVFile  string

	// Engine configuration
	Strategy     string // "auto", "anchor", "slash" or "spatial"
	ClassFilter  string
	FallbackYear string // year assumed when a day date carries none; weak default, see docs

	// Application configuration
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Out:          DefaultOut,
		JSONFile:     DefaultJSONFile,
		CSVFile:      DefaultCSVFile,
		Strategy:     StrategyAuto,
		FallbackYear: DefaultFallbackYear,
		LogLevel:     DefaultLogLevel,
		MaxFileSize:  DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
// The single positional argument is the input PDF path.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if pflag.NArg() > 0 {
		cfg.InputPath = pflag.Arg(0)
	}
	if cfg.InputPath != "" {
		if expandedPath, err := filepath.Abs(cfg.InputPath); err == nil {
			cfg.InputPath = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and
// defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("EDT")
	// Dashed keys map to underscored env vars (EDT_FALLBACK_YEAR).
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("out", cfg.Out)
	viper.SetDefault("json-file", cfg.JSONFile)
	viper.SetDefault("csv-file", cfg.CSVFile)
	viper.SetDefault("strategy", cfg.Strategy)
	viper.SetDefault("class", cfg.ClassFilter)
	viper.SetDefault("fallback-year", cfg.FallbackYear)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("out", cfg.Out, "Output format: 'json', 'csv' or 'both'")
	pflag.String("json-file", cfg.JSONFile, "JSON output file path")
	pflag.String("csv-file", cfg.CSVFile, "CSV output file path")
	pflag.String("strategy", cfg.Strategy, "Extraction strategy: 'auto', 'anchor', 'slash' or 'spatial'")
	pflag.String("class", cfg.ClassFilter, "Only process classes whose identifier contains this substring")
	pflag.String("fallback-year", cfg.FallbackYear, "Year assumed when a day date carries no year")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("out", pflag.Lookup("out"))
	_ = viper.BindPFlag("json-file", pflag.Lookup("json-file"))
	_ = viper.BindPFlag("csv-file", pflag.Lookup("csv-file"))
	_ = viper.BindPFlag("strategy", pflag.Lookup("strategy"))
	_ = viper.BindPFlag("class", pflag.Lookup("class"))
	_ = viper.BindPFlag("fallback-year", pflag.Lookup("fallback-year"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s: [flags] <pdf-or-directory>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nFinds empty class slots in an Emploi du Temps PDF export\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s schedule.pdf                         # JSON output to schedules.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --out=both schedule.pdf              # JSON and presence CSV\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --class=4SAE schedule.pdf            # only matching classes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --strategy=spatial exports/          # newest PDF in a directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  EDT_OUT            Output format\n")
		fmt.Fprintf(os.Stderr, "  EDT_STRATEGY       Extraction strategy\n")
		fmt.Fprintf(os.Stderr, "  EDT_CLASS          Class filter substring\n")
		fmt.Fprintf(os.Stderr, "  EDT_FALLBACK_YEAR  Fallback year for dates without one\n")
		fmt.Fprintf(os.Stderr, "  EDT_LOGLEVEL       Log level\n")
		fmt.Fprintf(os.Stderr, "  EDT_MAXFILESIZE    Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from
// viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Out = viper.GetString("out")
	cfg.JSONFile = viper.GetString("json-file")
	cfg.CSVFile = viper.GetString("csv-file")
	cfg.Strategy = viper.GetString("strategy")
	cfg.ClassFilter = viper.GetString("class")
	cfg.FallbackYear = viper.GetString("fallback-year")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input PDF path is required")
	}

	switch c.Out {
	case OutJSON, OutCSV, OutBoth:
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: json, csv, both)", c.Out)
	}

	switch c.Strategy {
	case StrategyAuto, StrategyAnchor, StrategySlash, StrategySpatial:
	default:
		return fmt.Errorf("invalid strategy: %s (must be one of: auto, anchor, slash, spatial)", c.Strategy)
	}

	if len(c.FallbackYear) != 4 {
		return fmt.Errorf("invalid fallback year: %s (must be a 4-digit year)", c.FallbackYear)
	}
	for _, r := range c.FallbackYear {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid fallback year: %s (must be a 4-digit year)", c.FallbackYear)
		}
	}

	if c.WantsJSON() && c.JSONFile == "" {
		return errors.New("JSON output file cannot be empty")
	}
	if c.WantsCSV() && c.CSVFile == "" {
		return errors.New("CSV output file cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// WantsJSON returns true if JSON output was requested.
func (c *Config) WantsJSON() bool {
	return c.Out == OutJSON || c.Out == OutBoth
}

// WantsCSV returns true if CSV output was requested.
func (c *Config) WantsCSV() bool {
	return c.Out == OutCSV || c.Out == OutBoth
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputPath: %s, Out: %s, Strategy: %s, ClassFilter: %s, FallbackYear: %s, LogLevel: %s, MaxFileSize: %d}",
		c.InputPath, c.Out, c.Strategy, c.ClassFilter, c.FallbackYear, c.LogLevel, c.MaxFileSize)
}
