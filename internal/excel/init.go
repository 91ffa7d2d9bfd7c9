package excel

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mwehr/plansheet/pkg/types"
)

// CreateWorkbook writes a new workbook at path with the given header row and
// no data rows. Returns ErrDuplicate when the file already exists, so init
// never clobbers a live table. When sheet is empty the default sheet name is
// kept.
func CreateWorkbook(path, sheet string, columns []string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", types.ErrDuplicate, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", types.ErrFileAccess, path, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	target := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet != "" && sheet != target {
		if err := f.SetSheetName(target, sheet); err != nil {
			return fmt.Errorf("%w: naming sheet %q: %v", types.ErrFileAccess, sheet, err)
		}
		target = sheet
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("%w: cell address: %v", types.ErrFileAccess, err)
		}
		if err := f.SetCellValue(target, cell, col); err != nil {
			return fmt.Errorf("%w: writing header cell %s: %v", types.ErrFileAccess, cell, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: saving %s: %v", types.ErrFileAccess, path, err)
	}
	return nil
}
