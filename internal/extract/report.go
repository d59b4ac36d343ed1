// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"
)

// Report describes what an extraction would do for one input, without
// writing anything. Offsets are -1 when the marker is absent.
type Report struct {
	Input        string `json:"input" yaml:"input"`
	StartMarker  string `json:"start_marker" yaml:"start_marker"`
	EndMarker    string `json:"end_marker" yaml:"end_marker"`
	StartOffset  int    `json:"start_offset" yaml:"start_offset"`
	EndOffset    int    `json:"end_offset" yaml:"end_offset"`
	RawChars     int    `json:"raw_chars" yaml:"raw_chars"`
	TrimmedChars int    `json:"trimmed_chars" yaml:"trimmed_chars"`
	OK           bool   `json:"ok" yaml:"ok"`
	Problem      string `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// Inspect reads path and reports where the markers are and how much CSS
// lies between them. A read failure is returned as an error; marker
// problems are described in the report.
func Inspect(path string, m Markers) (Report, error) {
	text, err := readText(path)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Input:       path,
		StartMarker: m.Start,
		EndMarker:   m.End,
		StartOffset: strings.Index(text, m.Start),
		EndOffset:   strings.Index(text, m.End),
	}

	frag, err := Extract(text, m)
	if err != nil {
		if !IsChecked(err) {
			return Report{}, err
		}
		r.Problem = err.Error()
		return r, nil
	}

	r.OK = true
	r.RawChars = frag.RawChars()
	r.TrimmedChars = utf8.RuneCountInString(frag.CSS)
	return r, nil
}

// Write renders the report to w as "yaml" or "json".
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// ErrorKind names the tier of an extraction error for diagnostics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMarkerNotFound):
		return "marker-not-found"
	case errors.Is(err, ErrMarkerOrder):
		return "marker-order"
	default:
		return "io"
	}
}
