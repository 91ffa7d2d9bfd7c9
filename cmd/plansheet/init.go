package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwehr/plansheet/internal/excel"
	"github.com/mwehr/plansheet/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the workbook with the standard header row",
	Long: `Init creates the configured workbook with the standard columns
(name, status, deadline, assignee, notes) and no data rows. Loading the
config also writes a default config file on first run. An existing
workbook is left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := excel.CreateWorkbook(cfg.Workbook, cfg.Sheet, types.DefaultColumns)
		if errors.Is(err, types.ErrDuplicate) {
			fmt.Printf("Workbook %s already exists, leaving it alone\n", cfg.Workbook)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Created workbook %s\n", cfg.Workbook)
		return nil
	},
}
