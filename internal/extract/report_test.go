// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		wantOK      bool
		wantStart   int
		wantEnd     int
		wantRaw     int
		wantTrimmed int
		wantProblem string
	}{
		{
			name:        "found",
			html:        "    <style>\n a{}\n    </style>",
			wantOK:      true,
			wantStart:   0,
			wantEnd:     17,
			wantRaw:     6,
			wantTrimmed: 3,
		},
		{
			name:        "missing end",
			html:        "    <style>\n a{}\n",
			wantStart:   0,
			wantEnd:     -1,
			wantProblem: "end marker",
		},
		{
			name:        "out of order",
			html:        "    </style>    <style>",
			wantStart:   12,
			wantEnd:     0,
			wantProblem: "out of order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.html")
			require.NoError(t, os.WriteFile(path, []byte(tt.html), 0o644))

			r, err := Inspect(path, DefaultMarkers())
			require.NoError(t, err)

			assert.Equal(t, tt.wantOK, r.OK)
			assert.Equal(t, tt.wantStart, r.StartOffset)
			assert.Equal(t, tt.wantEnd, r.EndOffset)
			assert.Equal(t, tt.wantRaw, r.RawChars)
			assert.Equal(t, tt.wantTrimmed, r.TrimmedChars)
			if tt.wantProblem == "" {
				assert.Empty(t, r.Problem)
			} else {
				assert.Contains(t, r.Problem, tt.wantProblem)
			}
		})
	}
}

func TestInspect_DoesNotWrite(t *testing.T) {
	cfg, dir := setupSite(t, samplePage)

	_, err := Inspect(cfg.Input, DefaultMarkers())
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "css"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInspect_MissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "index.html"), DefaultMarkers())
	require.Error(t, err)
	assert.False(t, IsChecked(err))
}

func TestReportWrite(t *testing.T) {
	r := Report{Input: "index.html", StartOffset: 4, EndOffset: 40, RawChars: 25, TrimmedChars: 20, OK: true}

	var y bytes.Buffer
	require.NoError(t, r.Write(&y, "yaml"))
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &fromYAML))
	assert.Equal(t, r, fromYAML)

	var j bytes.Buffer
	require.NoError(t, r.Write(&j, "json"))
	var fromJSON Report
	require.NoError(t, json.Unmarshal(j.Bytes(), &fromJSON))
	assert.Equal(t, r, fromJSON)

	err := r.Write(&bytes.Buffer{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestErrorKind(t *testing.T) {
	_, notFound := Locate("", DefaultMarkers())
	_, order := Locate("    </style>    <style>", DefaultMarkers())

	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "marker-not-found", ErrorKind(notFound))
	assert.Equal(t, "marker-order", ErrorKind(order))
	assert.Equal(t, "io", ErrorKind(os.ErrNotExist))
}
