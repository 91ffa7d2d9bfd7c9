package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mwehr/plansheet/pkg/types"
)

// writeWorkbook creates a workbook in a temp dir with the given header and
// data rows. A nil data row leaves that worksheet row blank.
func writeWorkbook(t *testing.T, header []string, dataRows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	for i, col := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, col))
	}
	for r, row := range dataRows {
		for c, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

// rawRows reads the worksheet back without going through the store.
func rawRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	return rows
}

var canonicalHeader = []string{"name", "status", "deadline", "assignee", "notes"}

func TestStore_ListAll(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "in progress", "2025-01-01", "A", ""},
		{"Beta", "done", "", "B", "shipped"},
	})
	s := NewStore(path, "")

	records, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha", records[0].Name())
	assert.Equal(t, "in progress", records[0]["status"])
	assert.Equal(t, "", records[0]["notes"])
	assert.Equal(t, "Beta", records[1].Name())
	assert.Equal(t, "shipped", records[1]["notes"])
}

func TestStore_ListAllSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "done", "", "", ""},
		nil, // blank worksheet row
		{"Beta", "done", "", "", ""},
	})
	s := NewStore(path, "")

	records, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha", records[0].Name())
	assert.Equal(t, "Beta", records[1].Name())
}

func TestStore_ListAllDropsBlankHeaderColumns(t *testing.T) {
	path := writeWorkbook(t, []string{"name", "", "status"}, [][]string{
		{"Alpha", "ignored", "done"},
	})
	s := NewStore(path, "")

	records, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, types.Record{"name": "Alpha", "status": "done"}, records[0])
}

func TestStore_ListAllEmptySheet(t *testing.T) {
	path := writeWorkbook(t, nil, nil)
	s := NewStore(path, "")

	records, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Get(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "in progress", "2025-01-01", "A", ""},
	})
	s := NewStore(path, "")

	rec, err := s.Get("Alpha")
	require.NoError(t, err)
	assert.Equal(t, "in progress", rec["status"])

	_, err = s.Get("Nope")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStore_GetFirstMatchWins(t *testing.T) {
	// Pre-existing duplicates (hand-edited file): the earliest row wins.
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "done", "", "", "first"},
		{"Alpha", "cancelled", "", "", "second"},
	})
	s := NewStore(path, "")

	rec, err := s.Get("Alpha")
	require.NoError(t, err)
	assert.Equal(t, "first", rec["notes"])
}

func TestStore_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.xlsx"), "")

	_, err := s.ListAll()
	assert.ErrorIs(t, err, types.ErrFileMissing)

	err = s.Add(types.Record{"name": "Alpha"})
	assert.ErrorIs(t, err, types.ErrFileMissing)
}

func TestStore_AddRoundTrip(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "in progress", "2025-01-01", "A", ""},
	})
	s := NewStore(path, "")

	err := s.Add(types.Record{
		"name":     "Beta",
		"status":   "done",
		"deadline": "2025-06-30",
		"assignee": "B",
		"notes":    "pilot",
	})
	require.NoError(t, err)

	rec, err := s.Get("Beta")
	require.NoError(t, err)
	assert.Equal(t, "done", rec["status"])
	assert.Equal(t, "2025-06-30", rec["deadline"])
	assert.Equal(t, "B", rec["assignee"])
	assert.Equal(t, "pilot", rec["notes"])
}

func TestStore_AddDefaultsStatus(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, nil)
	s := NewStore(path, "")

	require.NoError(t, s.Add(types.Record{"name": "Beta"}))

	rec, err := s.Get("Beta")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultStatus, rec["status"])
	assert.Equal(t, "", rec["deadline"])
}

func TestStore_AddValidation(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, nil)
	s := NewStore(path, "")

	err := s.Add(types.Record{"status": "done"})
	assert.ErrorIs(t, err, types.ErrInvalidData)

	err = s.Add(types.Record{"name": "  "})
	assert.ErrorIs(t, err, types.ErrInvalidData)

	err = s.Add(types.Record{"name": "Beta", "status": "halfway"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestStore_AddDuplicateLeavesFileUnchanged(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "done", "", "", ""},
	})
	s := NewStore(path, "")
	before := rawRows(t, path)

	err := s.Add(types.Record{"name": "Alpha"})
	assert.ErrorIs(t, err, types.ErrDuplicate)
	assert.Equal(t, before, rawRows(t, path))
}

func TestStore_AddIgnoresUnknownFields(t *testing.T) {
	path := writeWorkbook(t, []string{"name", "status"}, nil)
	s := NewStore(path, "")

	require.NoError(t, s.Add(types.Record{"name": "Beta", "notes": "dropped"}))

	rec, err := s.Get("Beta")
	require.NoError(t, err)
	assert.Equal(t, types.Record{"name": "Beta", "status": types.DefaultStatus}, rec)
}

func TestStore_AddPreservesExtraColumns(t *testing.T) {
	// A column the store does not validate still round-trips.
	path := writeWorkbook(t, []string{"name", "status", "budget"}, [][]string{
		{"Alpha", "done", "1200"},
	})
	s := NewStore(path, "")

	require.NoError(t, s.Add(types.Record{"name": "Beta", "budget": "800"}))

	rec, err := s.Get("Beta")
	require.NoError(t, err)
	assert.Equal(t, "800", rec["budget"])

	rec, err = s.Get("Alpha")
	require.NoError(t, err)
	assert.Equal(t, "1200", rec["budget"])
}

func TestStore_Update(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "in progress", "2025-01-01", "A", "keep me"},
	})
	s := NewStore(path, "")

	err := s.Update("Alpha", types.Record{"status": "done", "assignee": "B"})
	require.NoError(t, err)

	rec, err := s.Get("Alpha")
	require.NoError(t, err)
	assert.Equal(t, "done", rec["status"])
	assert.Equal(t, "B", rec["assignee"])
	assert.Equal(t, "2025-01-01", rec["deadline"], "unpatched field must survive")
	assert.Equal(t, "keep me", rec["notes"], "unpatched field must survive")
}

func TestStore_UpdateNotFoundLeavesFileUnchanged(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "done", "", "", ""},
	})
	s := NewStore(path, "")
	before := rawRows(t, path)

	err := s.Update("Nope", types.Record{"status": "done"})
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, before, rawRows(t, path))
}

func TestStore_UpdateInvalidStatusFailsBeforeIO(t *testing.T) {
	// The workbook does not exist, yet the status check must fire first: an
	// invalid status never reaches the file.
	s := NewStore(filepath.Join(t.TempDir(), "absent.xlsx"), "")

	err := s.Update("Alpha", types.Record{"status": "halfway"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestStore_UpdateIgnoresUnknownPatchKeys(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "done", "", "", ""},
	})
	s := NewStore(path, "")

	require.NoError(t, s.Update("Alpha", types.Record{"owner": "B"}))

	rec, err := s.Get("Alpha")
	require.NoError(t, err)
	_, ok := rec["owner"]
	assert.False(t, ok)
}

func TestStore_UpdateMissingNameColumn(t *testing.T) {
	path := writeWorkbook(t, []string{"status", "notes"}, [][]string{
		{"done", "orphaned"},
	})
	s := NewStore(path, "")

	err := s.Update("Alpha", types.Record{"notes": "x"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestStore_Delete(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "done", "", "", ""},
		{"Beta", "done", "", "", ""},
		{"Gamma", "done", "", "", ""},
	})
	s := NewStore(path, "")

	require.NoError(t, s.Delete("Beta"))

	records, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha", records[0].Name(), "order of remaining rows preserved")
	assert.Equal(t, "Gamma", records[1].Name())

	err = s.Delete("Beta")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStore_DeleteMissingNameColumn(t *testing.T) {
	path := writeWorkbook(t, []string{"status"}, [][]string{{"done"}})
	s := NewStore(path, "")

	err := s.Delete("Alpha")
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestStore_Search(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "in progress", "", "A", ""},
		{"Beta", "in progress", "", "B", ""},
		{"Gamma", "done", "", "A", ""},
	})
	s := NewStore(path, "")

	t.Run("empty filters return everything", func(t *testing.T) {
		all, err := s.ListAll()
		require.NoError(t, err)
		got, err := s.Search(nil)
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("single filter", func(t *testing.T) {
		got, err := s.Search(map[string]string{"status": "in progress"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha", got[0].Name())
		assert.Equal(t, "Beta", got[1].Name())
	})

	t.Run("conjunction of filters", func(t *testing.T) {
		got, err := s.Search(map[string]string{"status": "in progress", "assignee": "A"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Alpha", got[0].Name())
	})

	t.Run("filter on a column the table lacks matches nothing", func(t *testing.T) {
		got, err := s.Search(map[string]string{"owner": "A"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestStore_ScenarioAddSearchDelete(t *testing.T) {
	path := writeWorkbook(t, canonicalHeader, [][]string{
		{"Alpha", "in progress", "2025-01-01", "A", ""},
	})
	s := NewStore(path, "")

	require.NoError(t, s.Add(types.Record{"name": "Beta"}))

	got, err := s.Search(map[string]string{"status": "not started"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Name())

	require.NoError(t, s.Delete("Alpha"))

	records, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Beta", records[0].Name())
}

func TestCreateWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.xlsx")

	require.NoError(t, CreateWorkbook(path, "", types.DefaultColumns))

	rows := rawRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, types.DefaultColumns, rows[0])

	// Never clobbers an existing file.
	err := CreateWorkbook(path, "", types.DefaultColumns)
	assert.ErrorIs(t, err, types.ErrDuplicate)
}
