// Package main provides the plansheet binary: an MCP server that lets a
// chat assistant manage a project table kept in an xlsx workbook.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
