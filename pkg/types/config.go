package types

import "errors"

// Config holds the workbook location and logging parameters for the server.
type Config struct {
	// Workbook is the path to the xlsx file holding the project table.
	Workbook string `json:"workbook" yaml:"workbook"`

	// Sheet selects the worksheet. Empty means the active sheet.
	Sheet string `json:"sheet" yaml:"sheet"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// LogFile, when set, duplicates log output into this file.
	LogFile string `json:"log_file" yaml:"log_file"`
}

// Config validation errors.
var (
	ErrWorkbookEmpty   = errors.New("workbook path must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels Validate accepts.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Workbook == "" {
		return ErrWorkbookEmpty
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
