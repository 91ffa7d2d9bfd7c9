// Package config loads server configuration with Viper. A missing config
// file is not an error: a default file is written on first run so the
// deployment directory documents its own settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mwehr/plansheet/pkg/types"
)

const (
	// DefaultFileName is the config file looked up in the working
	// directory when no --config flag is given.
	DefaultFileName = "config.yaml"

	// DefaultWorkbook is the workbook path used when the config does not
	// name one.
	DefaultWorkbook = "projects.xlsx"

	// Config keys.
	keyWorkbook = "workbook"
	keySheet    = "sheet"
	keyLogLevel = "log.level"
	keyLogFile  = "log.file"
)

// defaultConfigYAML is the content written on first run.
const defaultConfigYAML = `# plansheet configuration

# Path to the xlsx workbook holding the project table.
workbook: projects.xlsx

# Worksheet name (empty: the workbook's active sheet).
sheet: ""

log:
  # debug, info, warn, error
  level: info
  # Optional log file; stderr is always used.
  file: ""
`

// Load reads the config file at path, or DefaultFileName in the working
// directory when path is empty. A missing file is created with defaults
// first. Relative workbook paths resolve against the working directory.
func Load(path string) (types.Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefault(path); err != nil {
			return types.Config{}, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault(keyWorkbook, DefaultWorkbook)
	v.SetDefault(keySheet, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFile, "")

	if err := v.ReadInConfig(); err != nil {
		return types.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := types.Config{
		Workbook: v.GetString(keyWorkbook),
		Sheet:    v.GetString(keySheet),
		LogLevel: v.GetString(keyLogLevel),
		LogFile:  v.GetString(keyLogFile),
	}
	if !filepath.IsAbs(cfg.Workbook) {
		abs, err := filepath.Abs(cfg.Workbook)
		if err != nil {
			return types.Config{}, fmt.Errorf("resolving workbook path: %w", err)
		}
		cfg.Workbook = abs
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// writeDefault creates the config file with default content.
func writeDefault(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing default config %s: %w", path, err)
	}
	return nil
}
