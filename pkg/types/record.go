package types

// Record is one project row, keyed by column name. Values are the cell
// contents as strings; a missing key means the row has no cell under that
// column (blank header cell or row shorter than the header).
type Record map[string]string

// Canonical column names. The workbook may carry additional columns; they
// are preserved on write and returned on read, but never validated.
const (
	ColName     = "name"
	ColStatus   = "status"
	ColDeadline = "deadline"
	ColAssignee = "assignee"
	ColNotes    = "notes"
)

// DefaultColumns is the header written into a freshly initialized workbook,
// in order.
var DefaultColumns = []string{ColName, ColStatus, ColDeadline, ColAssignee, ColNotes}

// Name returns the record's identity value, or "" when absent.
func (r Record) Name() string {
	return r[ColName]
}

// Matches reports whether every filter key is present in the record with an
// exactly equal value. An empty filter matches everything; a filter key the
// record lacks never matches.
func (r Record) Matches(filters map[string]string) bool {
	for k, want := range filters {
		got, ok := r[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}
