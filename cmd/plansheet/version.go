package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwehr/plansheet/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plansheet v%s\n", server.Version)
	},
}
