// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extract-css/internal/extract"
)

var batchCmd = &cobra.Command{
	Use:   "batch [pattern]",
	Short: "Extract the <style> block of every page matching a glob",
	Long: `Batch expands a glob (with ** support) and extracts each page's CSS
block into <out-dir>/<page>.css. Unlike the default command, the output
directory is created if missing. Pages without markers are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())

	pattern := cfg.Batch.Pattern
	if len(args) > 0 {
		pattern = args[0]
	}
	if pattern == "" {
		return fmt.Errorf("provide a glob pattern (e.g. \"site/**/*.html\") or set batch.pattern")
	}
	outDir, _ := cmd.Flags().GetString("out-dir")
	if !cmd.Flags().Changed("out-dir") && cfg.Batch.OutDir != "" {
		outDir = cfg.Batch.OutDir
	}

	inputs, err := extract.Glob(pattern)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no files match %q", pattern)
	}

	m := extract.Markers{Start: cfg.Extract.StartMarker, End: cfg.Extract.EndMarker}
	result := extract.ExtractBatch(inputs, outDir, m, cmd.OutOrStdout())
	logger.Printf("batch %s: %d extracted, %d skipped, %d failed",
		pattern, result.Extracted, result.Skipped, result.Failed)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("out-dir", "css", "directory for extracted stylesheets")

	rootCmd.AddCommand(batchCmd)
}
