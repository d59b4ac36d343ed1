// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the optional rotating file logger. Console output
// does not go through here; commands print their status lines directly.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/extract-css/pkg/types"
)

const (
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
	prefix            = "extract-css: "
)

// New returns a logger writing to cfg.File through a rotating writer, or a
// logger that discards everything when no file is configured. The returned
// closer must be called when the program exits.
func New(cfg types.LogConfig) (*log.Logger, io.Closer) {
	if cfg.File == "" {
		return log.New(io.Discard, prefix, log.LstdFlags), nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   os.ExpandEnv(cfg.File),
		MaxSize:    orDefault(cfg.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(cfg.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(cfg.MaxAgeDays, defaultMaxAgeDays),
		Compress:   cfg.Compress,
	}
	return log.New(w, prefix, log.LstdFlags), w
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
