// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the inline stylesheet out of an HTML file.
//
// The block is located by plain substring search for a start and an end
// marker; no HTML is parsed. The text between the markers is trimmed and
// written out as a standalone stylesheet.
package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/extract-css/pkg/types"
)

var (
	// ErrMarkerNotFound is returned when the start or end marker does not
	// occur in the input.
	ErrMarkerNotFound = errors.New("could not find <style> tags")

	// ErrMarkerOrder is returned when the end marker begins before the
	// start marker ends.
	ErrMarkerOrder = errors.New("<style> tags out of order")

	// ErrInvalidUTF8 is returned when the input is not UTF-8 text.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// Markers holds the literal delimiters around the CSS block. Matching is
// exact: case and leading whitespace are significant.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers returns the four-space indented <style> tags.
func DefaultMarkers() Markers {
	return Markers{Start: types.DefaultStartMarker, End: types.DefaultEndMarker}
}

// Span holds byte offsets of the markers within the input text.
type Span struct {
	// Start is the offset of the first start marker.
	Start int

	// ContentStart is the offset just past the start marker.
	ContentStart int

	// End is the offset of the first end marker.
	End int
}

// Fragment is the text found between the markers.
type Fragment struct {
	Span Span

	// Raw is the untrimmed text between the markers.
	Raw string

	// CSS is Raw with leading and trailing whitespace removed.
	CSS string
}

// RawChars returns the number of characters in the untrimmed block.
func (f Fragment) RawChars() int {
	return utf8.RuneCountInString(f.Raw)
}

// Result describes a completed ExtractFile call.
type Result struct {
	Input        string
	Output       string
	RawChars     int
	BytesWritten int
	SHA256       string
	WrittenAt    time.Time
}

// Run converts the result into a ledger record.
func (r Result) Run() types.Run {
	return types.Run{
		Input:        r.Input,
		Output:       r.Output,
		RawChars:     r.RawChars,
		BytesWritten: r.BytesWritten,
		SHA256:       r.SHA256,
		RanAt:        r.WrittenAt,
	}
}

// Locate finds the first occurrence of each marker. The two searches are
// independent: the end marker is not searched for after the start marker.
func Locate(text string, m Markers) (Span, error) {
	start := strings.Index(text, m.Start)
	if start == -1 {
		return Span{}, fmt.Errorf("%w: start marker %q missing", ErrMarkerNotFound, m.Start)
	}
	end := strings.Index(text, m.End)
	if end == -1 {
		return Span{}, fmt.Errorf("%w: end marker %q missing", ErrMarkerNotFound, m.End)
	}

	span := Span{Start: start, ContentStart: start + len(m.Start), End: end}
	if span.End < span.ContentStart {
		return span, fmt.Errorf("%w: end marker at offset %d, start marker ends at offset %d",
			ErrMarkerOrder, span.End, span.ContentStart)
	}
	return span, nil
}

// Extract returns the text between the markers.
func Extract(text string, m Markers) (Fragment, error) {
	span, err := Locate(text, m)
	if err != nil {
		return Fragment{}, err
	}
	raw := text[span.ContentStart:span.End]
	return Fragment{
		Span: span,
		Raw:  raw,
		CSS:  strings.TrimSpace(raw),
	}, nil
}

// IsChecked reports whether err is a marker problem in the input rather
// than a filesystem failure.
func IsChecked(err error) bool {
	return errors.Is(err, ErrMarkerNotFound) || errors.Is(err, ErrMarkerOrder)
}

// ExtractFile reads cfg.Input, extracts the CSS block and writes it to
// cfg.Output, replacing any existing file. The output's parent directory
// must exist. On a marker error nothing is written. On success a status
// line is printed to w.
func ExtractFile(cfg types.ExtractConfig, w io.Writer) (Result, error) {
	cfg = cfg.WithDefaults()

	text, err := readText(cfg.Input)
	if err != nil {
		return Result{}, err
	}

	frag, err := Extract(text, Markers{Start: cfg.StartMarker, End: cfg.EndMarker})
	if err != nil {
		return Result{}, err
	}

	data := []byte(frag.CSS)
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	sum := sha256.Sum256(data)
	result := Result{
		Input:        cfg.Input,
		Output:       cfg.Output,
		RawChars:     frag.RawChars(),
		BytesWritten: len(data),
		SHA256:       hex.EncodeToString(sum[:]),
		WrittenAt:    time.Now().UTC(),
	}

	fmt.Fprintf(w, "✅ Extracted %d characters of CSS to %s\n", result.RawChars, result.Output)
	return result, nil
}

// readText reads path fully and checks that it holds UTF-8 text.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading %s: %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}
