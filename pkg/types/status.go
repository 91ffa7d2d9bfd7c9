package types

import "strings"

// Recognized status values for the status column.
const (
	StatusNotStarted = "not started"
	StatusInProgress = "in progress"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// DefaultStatus is applied when a new project is added without a status.
const DefaultStatus = StatusNotStarted

// Statuses lists the recognized status values in display order. Used for
// tool schemas and validation error messages.
var Statuses = []string{StatusNotStarted, StatusInProgress, StatusDone, StatusCancelled}

// ValidStatus reports whether s is one of the recognized status values.
// Values already stored in the workbook are never checked against this on
// read; only incoming writes are.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusList returns the recognized values as a comma-separated string for
// error messages.
func StatusList() string {
	return strings.Join(Statuses, ", ")
}
