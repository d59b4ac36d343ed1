// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/extract-css/internal/history"
	"github.com/pdiddy/extract-css/pkg/types"
)

// Viper keys. Each maps to a field of types.Config and, with the
// EXTRACT_CSS_ prefix, to an environment variable
// (e.g. EXTRACT_CSS_EXTRACT_OUTPUT).
const (
	keyInput       = "extract.input"
	keyOutput      = "extract.output"
	keyStartMarker = "extract.start_marker"
	keyEndMarker   = "extract.end_marker"
	keyBatchGlob   = "batch.pattern"
	keyBatchOutDir = "batch.out_dir"
	keyHistory     = "history.enabled"
	keyHistoryPath = "history.path"
	keyLogFile     = "log.file"
	keyLogMaxSize  = "log.max_size_mb"
	keyLogBackups  = "log.max_backups"
	keyLogMaxAge   = "log.max_age_days"
	keyLogCompress = "log.compress"
)

func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("extract-css")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "extract-css"))
		}
	}

	configureViper(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configureViper sets defaults and environment handling on v.
func configureViper(v *viper.Viper) {
	v.SetDefault(keyInput, types.DefaultInput)
	v.SetDefault(keyOutput, types.DefaultOutput)
	v.SetDefault(keyStartMarker, types.DefaultStartMarker)
	v.SetDefault(keyEndMarker, types.DefaultEndMarker)
	v.SetDefault(keyBatchOutDir, "css")
	v.SetDefault(keyHistoryPath, history.DefaultPath)

	v.SetEnvPrefix("EXTRACT_CSS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// loadConfig assembles a Config from v. Empty extract fields fall back to
// the defaults.
func loadConfig(v *viper.Viper) types.Config {
	return types.Config{
		Extract: types.ExtractConfig{
			Input:       v.GetString(keyInput),
			Output:      v.GetString(keyOutput),
			StartMarker: v.GetString(keyStartMarker),
			EndMarker:   v.GetString(keyEndMarker),
		}.WithDefaults(),
		Batch: types.BatchConfig{
			Pattern: v.GetString(keyBatchGlob),
			OutDir:  v.GetString(keyBatchOutDir),
		},
		History: types.HistoryConfig{
			Enabled: v.GetBool(keyHistory),
			Path:    v.GetString(keyHistoryPath),
		},
		Log: types.LogConfig{
			File:       v.GetString(keyLogFile),
			MaxSizeMB:  v.GetInt(keyLogMaxSize),
			MaxBackups: v.GetInt(keyLogBackups),
			MaxAgeDays: v.GetInt(keyLogMaxAge),
			Compress:   v.GetBool(keyLogCompress),
		},
	}
}
