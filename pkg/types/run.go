// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ExtractionStatus indicates the outcome of extracting CSS from one file.
type ExtractionStatus string

const (
	ExtractionDone    ExtractionStatus = "extracted"
	ExtractionSkipped ExtractionStatus = "skipped"
	ExtractionFailed  ExtractionStatus = "failed"
)

// Run records one completed extraction: where the CSS came from, where it
// went, and what was written.
type Run struct {
	// ID is the ledger row ID. Zero until the run is recorded.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// Input is the HTML file that was read.
	Input string `json:"input" yaml:"input"`

	// Output is the stylesheet that was written.
	Output string `json:"output" yaml:"output"`

	// RawChars is the number of characters between the markers, before trimming.
	RawChars int `json:"raw_chars" yaml:"raw_chars"`

	// BytesWritten is the size of the trimmed stylesheet.
	BytesWritten int `json:"bytes_written" yaml:"bytes_written"`

	// SHA256 is the hex digest of the written stylesheet.
	SHA256 string `json:"sha256" yaml:"sha256"`

	// RanAt is when the output was written.
	RanAt time.Time `json:"ran_at" yaml:"ran_at"`
}
