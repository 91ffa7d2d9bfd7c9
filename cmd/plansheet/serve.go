package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mwehr/plansheet/internal/excel"
	"github.com/mwehr/plansheet/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project workbook over MCP on stdin/stdout",
	Long: `Serve runs the MCP server until the client disconnects. Point your
assistant's MCP configuration at "plansheet serve". The workbook must
exist; run "plansheet init" first for a fresh table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := excel.NewStore(cfg.Workbook, cfg.Sheet)
		return server.New(store, slog.Default()).ServeStdio()
	},
}
