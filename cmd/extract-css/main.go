// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extract-css CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extract-css/internal/extract"
	"github.com/pdiddy/extract-css/internal/history"
	"github.com/pdiddy/extract-css/internal/logging"
	"github.com/pdiddy/extract-css/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	logger    = log.New(io.Discard, "", 0)
	logCloser io.Closer
)

// rootCmd extracts the stylesheet when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "extract-css",
	Short: "Extract the inline <style> block of an HTML page into a stylesheet",
	Long: `extract-css reads index.html, takes the text between the first
"    <style>" line and the first "    </style>" line, trims it, and writes it
to css/styles.css. The css/ directory must already exist.

If either tag is missing, or the closing tag comes first, nothing is written
and the command exits with status 1.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, logCloser = logging.New(loadConfig(viper.GetViper()).Log)
		return nil
	},
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())

	result, err := extract.ExtractFile(cfg.Extract, cmd.OutOrStdout())
	if err != nil {
		logger.Printf("extract %s: %s: %v", cfg.Extract.Input, extract.ErrorKind(err), err)
		return err
	}
	logger.Printf("extract %s -> %s: %d chars, %d bytes, sha256 %s",
		result.Input, result.Output, result.RawChars, result.BytesWritten, result.SHA256)

	if cfg.History.Enabled {
		if err := recordRun(cmd.Context(), cfg.History, result); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: run not recorded: %v\n", err)
		}
	}
	return nil
}

func recordRun(ctx context.Context, cfg types.HistoryConfig, result extract.Result) error {
	store, err := history.NewStore(cfg.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	prev, err := store.Latest(ctx, result.Output)
	if err != nil {
		return err
	}
	if prev != nil && prev.SHA256 == result.SHA256 {
		logger.Printf("%s unchanged since run %d", result.Output, prev.ID)
	}

	_, err = store.Record(ctx, result.Run())
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./extract-css.yaml or ~/.config/extract-css/extract-css.yaml)")
	pf.String("input", types.DefaultInput, "HTML file to read")
	pf.String("start-marker", types.DefaultStartMarker, "literal text that opens the CSS block")
	pf.String("end-marker", types.DefaultEndMarker, "literal text that closes the CSS block")
	pf.String("history-db", history.DefaultPath, "run history database")
	pf.String("log-file", "", "append a log of runs to this file (rotated)")

	rootCmd.Flags().String("output", types.DefaultOutput, "stylesheet to write; its directory must exist")
	rootCmd.Flags().Bool("history", false, "record the run in the history database")

	bindFlags(viper.GetViper(), map[string]string{
		keyInput:       "input",
		keyStartMarker: "start-marker",
		keyEndMarker:   "end-marker",
		keyHistoryPath: "history-db",
		keyLogFile:     "log-file",
		keyOutput:      "output",
		keyHistory:     "history",
	})
}

// bindFlags binds each viper key to the root command flag of that name.
func bindFlags(v *viper.Viper, keys map[string]string) {
	for key, name := range keys {
		f := rootCmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = rootCmd.Flags().Lookup(name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// diagnostic formats a failure for stderr. Marker problems get the short
// ERROR form; everything else is reported as a wrapped error.
func diagnostic(err error) string {
	if extract.IsChecked(err) {
		return "ERROR: " + err.Error()
	}
	return "Error: " + err.Error()
}

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnostic(err))
		os.Exit(1)
	}
}
