// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default locations and markers. These match the layout of a single-page
// site where index.html carries its stylesheet inline.
const (
	DefaultInput       = "index.html"
	DefaultOutput      = "css/styles.css"
	DefaultStartMarker = "    <style>"
	DefaultEndMarker   = "    </style>"
)

// ExtractConfig holds settings for a single extraction run.
type ExtractConfig struct {
	// Input is the HTML file to read (default index.html).
	Input string `json:"input" yaml:"input"`

	// Output is the stylesheet to write (default css/styles.css). Its parent
	// directory must already exist.
	Output string `json:"output" yaml:"output"`

	// StartMarker is the literal text that opens the CSS block.
	StartMarker string `json:"start_marker" yaml:"start_marker"`

	// EndMarker is the literal text that closes the CSS block.
	EndMarker string `json:"end_marker" yaml:"end_marker"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ExtractConfig) WithDefaults() ExtractConfig {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.StartMarker == "" {
		c.StartMarker = DefaultStartMarker
	}
	if c.EndMarker == "" {
		c.EndMarker = DefaultEndMarker
	}
	return c
}

// BatchConfig holds settings for extracting from many HTML files at once.
type BatchConfig struct {
	// Pattern is a doublestar glob selecting input files (e.g. "site/**/*.html").
	Pattern string `json:"pattern" yaml:"pattern"`

	// OutDir receives one <basename>.css per input. Created if missing.
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// HistoryConfig controls the optional run ledger.
type HistoryConfig struct {
	// Enabled turns on recording of successful runs.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file (default .extract-css/history.db).
	Path string `json:"path" yaml:"path"`
}

// LogConfig controls the optional rotating log file.
type LogConfig struct {
	// File is the log file path. Empty disables file logging.
	File string `json:"file" yaml:"file"`

	// MaxSizeMB is the size in megabytes before the file is rotated.
	MaxSizeMB int `json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `json:"max_backups" yaml:"max_backups"`

	// MaxAgeDays is the number of days to keep rotated files.
	MaxAgeDays int `json:"max_age_days" yaml:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `json:"compress" yaml:"compress"`
}

// Config groups every setting read from extract-css.yaml.
type Config struct {
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Batch   BatchConfig   `json:"batch" yaml:"batch"`
	History HistoryConfig `json:"history" yaml:"history"`
	Log     LogConfig     `json:"log" yaml:"log"`
}
