package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mwehr/plansheet/internal/config"
	"github.com/mwehr/plansheet/internal/server"
	"github.com/mwehr/plansheet/pkg/types"
)

// flagConfig is set by the --config flag.
var flagConfig string

// cfg is loaded by PersistentPreRunE for all subcommands except version.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:     "plansheet",
	Short:   "plansheet serves a project workbook to MCP clients",
	Long: `plansheet exposes a project table stored in an xlsx workbook as MCP
tools (list, get, add, update, delete, search), so a chat assistant can
manage the table through tool calls. The workbook stays the source of
truth: every call re-reads it, and hand edits are picked up immediately.`,
	Version: server.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		return setupLogging(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"config file (default: ./"+config.DefaultFileName+", created on first run)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging installs the default slog logger. Everything goes to stderr
// because stdout carries the MCP protocol; an optional log file duplicates
// the stream for postmortems.
func setupLogging(cfg types.Config) error {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = colorable.NewColorable(os.Stderr)
	noColor := !isatty.IsTerminal(os.Stderr.Fd())
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = io.MultiWriter(os.Stderr, f)
		noColor = true
	}

	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})))
	return nil
}
