// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extract-css/internal/extract"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report where the <style> markers are without writing anything",
	Long: `Inspect reads the input page and prints the marker offsets, the
number of characters between them, and any problem a real run would hit.
Nothing is written. Marker problems are reported, not treated as errors.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	cfg := loadConfig(viper.GetViper()).Extract

	report, err := extract.Inspect(cfg.Input, extract.Markers{Start: cfg.StartMarker, End: cfg.EndMarker})
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), format)
}

func init() {
	inspectCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(inspectCmd)
}
