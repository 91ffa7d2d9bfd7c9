// Package server exposes the record store as MCP tools over stdio. Handlers
// are thin: decode arguments, call the store, render text. Every classified
// failure becomes an error text result so the server survives bad calls.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mwehr/plansheet/internal/excel"
	"github.com/mwehr/plansheet/pkg/types"
)

// Name and Version identify the server in the MCP handshake.
const (
	Name    = "plansheet"
	Version = "0.1.0"
)

// Server wires the six project tools onto one record store.
type Server struct {
	store *excel.Store
	log   *slog.Logger
}

// New returns a Server over store. A nil logger falls back to slog.Default.
func New(store *excel.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: store, log: log}
}

// handlerFunc is the transport-free shape of a tool handler: arguments in,
// result text or classified error out.
type handlerFunc func(args map[string]any) (string, error)

// MCP builds the MCP server with all tools registered.
func (s *Server) MCP() *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer(Name, Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	for _, t := range s.tools() {
		srv.AddTool(t.def, s.handle(t.def.Name, t.fn))
	}
	return srv
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
// Logs must go to stderr only; stdout belongs to the protocol.
func (s *Server) ServeStdio() error {
	s.log.Info("serving", "workbook", s.store.Path())
	return mcpserver.ServeStdio(s.MCP())
}

// handle adapts a handlerFunc to the MCP tool-handler shape, logging each
// call with a correlation id. Errors become error text results, never
// protocol faults.
func (s *Server) handle(tool string, fn handlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.log.With("tool", tool, "call_id", uuid.NewString())
		start := time.Now()

		text, err := fn(req.GetArguments())
		if err != nil {
			log.Error("tool call failed", "err", err, "elapsed", time.Since(start))
			return mcp.NewToolResultError(errorText(err)), nil
		}
		log.Info("tool call ok", "elapsed", time.Since(start))
		return mcp.NewToolResultText(text), nil
	}
}

// errorText renders a store error for the client. Classified kinds keep
// their message; anything else is flagged as unexpected.
func errorText(err error) string {
	switch {
	case errors.Is(err, types.ErrFileMissing),
		errors.Is(err, types.ErrFileAccess),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrDuplicate):
		return fmt.Sprintf("Error: %v", err)
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
