// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/extract-css/pkg/types"
)

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Extracted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed with an I/O error.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Glob expands a doublestar pattern (e.g. "site/**/*.html") into a sorted
// list of matching files.
func Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// OutputPath returns the stylesheet path for an HTML file in outDir.
func OutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+".css")
}

// ExtractOne extracts the CSS block of a single file into outDir and
// returns its status. Files without usable markers are skipped.
func ExtractOne(input, outDir string, m Markers, w io.Writer) types.ExtractionStatus {
	cfg := types.ExtractConfig{
		Input:       input,
		Output:      OutputPath(input, outDir),
		StartMarker: m.Start,
		EndMarker:   m.End,
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", input, err)
		return types.ExtractionFailed
	}

	if _, err := ExtractFile(cfg, io.Discard); err != nil {
		if IsChecked(err) {
			fmt.Fprintf(w, "skipped:   %s (%v)\n", input, err)
			return types.ExtractionSkipped
		}
		fmt.Fprintf(w, "failed:    %s (%v)\n", input, err)
		return types.ExtractionFailed
	}

	fmt.Fprintf(w, "extracted: %s -> %s\n", input, cfg.Output)
	return types.ExtractionDone
}

// ExtractBatch processes each input file, printing per-file status to w
// and returning a summary. Two inputs with the same basename write to the
// same output; the later one wins.
func ExtractBatch(inputs []string, outDir string, m Markers, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		switch ExtractOne(in, outDir, m, w) {
		case types.ExtractionDone:
			result.Extracted++
		case types.ExtractionSkipped:
			result.Skipped++
		case types.ExtractionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d skipped, %d failed (total: %d)\n",
		result.Extracted, result.Skipped, result.Failed, result.Total())
	return result
}
