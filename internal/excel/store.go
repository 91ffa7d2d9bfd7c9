// Package excel implements the record store over a single xlsx workbook.
// The workbook is the source of truth: every operation opens the file,
// re-derives the column schema from the header row, performs its read or
// mutation, and saves before returning. Nothing is cached across calls.
package excel

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mwehr/plansheet/pkg/types"
)

// Store provides row-oriented access to the project table in one workbook.
// It holds no open file handle and no derived schema between calls, so a
// hand edit to the workbook is picked up by the next operation.
//
// There is no internal locking: concurrent mutating calls against the same
// workbook are the caller's problem (single logical writer).
type Store struct {
	path  string
	sheet string // empty selects the active sheet
}

// NewStore returns a Store for the workbook at path. When sheet is empty the
// workbook's active sheet is used.
func NewStore(path, sheet string) *Store {
	return &Store{path: path, sheet: sheet}
}

// Path returns the backing workbook path.
func (s *Store) Path() string {
	return s.path
}

// open loads the workbook and resolves the worksheet name. The caller must
// Close the returned file.
func (s *Store) open() (*excelize.File, string, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", types.ErrFileMissing, s.path)
		}
		return nil, "", fmt.Errorf("%w: stat %s: %v", types.ErrFileAccess, s.path, err)
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: opening %s: %v", types.ErrFileAccess, s.path, err)
	}
	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	return f, sheet, nil
}

// save persists the workbook in place.
func (s *Store) save(f *excelize.File) error {
	if err := f.Save(); err != nil {
		return fmt.Errorf("%w: saving %s: %v", types.ErrFileAccess, s.path, err)
	}
	return nil
}

// rows returns every row of the worksheet as strings.
func (s *Store) rows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", types.ErrFileAccess, sheet, err)
	}
	return rows, nil
}

// ListAll returns every non-blank data row as a record, in file order. Field
// names come from the header row; cells under a blank header cell and cells
// beyond the header width are dropped. A column the row has no cell for is
// reported as the empty string.
func (s *Store) ListAll() ([]types.Record, error) {
	f, sheet, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := s.rows(f, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]types.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowBlank(row) {
			continue
		}
		rec := make(types.Record, len(header))
		for idx, col := range header {
			if col == "" {
				continue
			}
			if idx < len(row) {
				rec[col] = row[idx]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Get returns the first record whose name column equals name, in file order.
// Returns ErrNotFound when no row matches.
func (s *Store) Get(name string) (types.Record, error) {
	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Name() == name {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrNotFound, name)
}

// Add validates and appends one record. The name field is required and must
// be unique across the table; a missing status gets DefaultStatus, any other
// status outside the recognized set is rejected. Known fields are placed by
// the current schema, columns the record does not mention stay blank.
func (s *Store) Add(rec types.Record) error {
	name := rec.Name()
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: project name is required", types.ErrInvalidData)
	}
	status, ok := rec[types.ColStatus]
	if !ok || status == "" {
		status = types.DefaultStatus
	}
	if !types.ValidStatus(status) {
		return fmt.Errorf("%w: status must be one of: %s", types.ErrInvalidData, types.StatusList())
	}

	// Uniqueness check reads the whole table before the append.
	if _, err := s.Get(name); err == nil {
		return fmt.Errorf("%w: %s", types.ErrDuplicate, name)
	} else if !errors.Is(err, types.ErrNotFound) {
		return err
	}

	f, sheet, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := s.rows(f, sheet)
	if err != nil {
		return err
	}
	schema := HeaderMap(headerOf(rows))

	row := make(types.Record, len(rec)+1)
	for k, v := range rec {
		row[k] = v
	}
	row[types.ColStatus] = status

	rowNum := len(rows) + 1
	for col, pos := range schema {
		v, ok := row[col]
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(pos+1, rowNum)
		if err != nil {
			return fmt.Errorf("%w: cell address: %v", types.ErrFileAccess, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("%w: writing cell %s: %v", types.ErrFileAccess, cell, err)
		}
	}
	return s.save(f)
}

// Update patches cells of the first row whose name column equals name.
// A status in the patch is validated before the file is touched. Patch keys
// the schema does not know are ignored. Returns ErrInvalidData when the
// header has no name column, ErrNotFound when no row matches.
func (s *Store) Update(name string, patch types.Record) error {
	if status, ok := patch[types.ColStatus]; ok && !types.ValidStatus(status) {
		return fmt.Errorf("%w: status must be one of: %s", types.ErrInvalidData, types.StatusList())
	}

	f, sheet, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := s.rows(f, sheet)
	if err != nil {
		return err
	}
	schema := HeaderMap(headerOf(rows))
	rowNum, err := locateRow(rows, schema, name)
	if err != nil {
		return err
	}

	for col, v := range patch {
		pos, ok := schema[col]
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(pos+1, rowNum)
		if err != nil {
			return fmt.Errorf("%w: cell address: %v", types.ErrFileAccess, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("%w: writing cell %s: %v", types.ErrFileAccess, cell, err)
		}
	}
	return s.save(f)
}

// Delete removes the first row whose name column equals name, shifting the
// rows below it up. Returns ErrInvalidData when the header has no name
// column, ErrNotFound when no row matches.
func (s *Store) Delete(name string) error {
	f, sheet, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := s.rows(f, sheet)
	if err != nil {
		return err
	}
	schema := HeaderMap(headerOf(rows))
	rowNum, err := locateRow(rows, schema, name)
	if err != nil {
		return err
	}

	if err := f.RemoveRow(sheet, rowNum); err != nil {
		return fmt.Errorf("%w: removing row %d: %v", types.ErrFileAccess, rowNum, err)
	}
	return s.save(f)
}

// Search returns every record matching all filters exactly. Empty filters
// return everything.
func (s *Store) Search(filters map[string]string) ([]types.Record, error) {
	records, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	matched := make([]types.Record, 0, len(records))
	for _, rec := range records {
		if rec.Matches(filters) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// headerOf returns the header row, or nil for an empty sheet.
func headerOf(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// locateRow scans data rows top to bottom and returns the 1-based worksheet
// row number of the first row whose name column equals name.
func locateRow(rows [][]string, schema map[string]int, name string) (int, error) {
	nameIdx, ok := schema[types.ColName]
	if !ok {
		return 0, fmt.Errorf("%w: header has no %q column", types.ErrInvalidData, types.ColName)
	}
	for i, row := range rows[1:] {
		cell := ""
		if nameIdx < len(row) {
			cell = row[nameIdx]
		}
		if cell == name {
			return i + 2, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", types.ErrNotFound, name)
}
