package types

import "errors"

// Store operation errors. Every failing store operation returns exactly one
// of these, usually wrapped with context via fmt.Errorf and %w; callers
// classify with errors.Is.
var (
	// ErrFileMissing means the backing workbook does not exist.
	ErrFileMissing = errors.New("workbook not found")

	// ErrFileAccess means the workbook exists but could not be opened,
	// read, or saved (commonly: held open by another program).
	ErrFileAccess = errors.New("workbook not accessible")

	// ErrInvalidData means a required field is missing, a status value is
	// outside the recognized set, or the header lacks the name column.
	ErrInvalidData = errors.New("invalid project data")

	// ErrNotFound means no row matches the given project name.
	ErrNotFound = errors.New("project not found")

	// ErrDuplicate means a project with the given name already exists.
	ErrDuplicate = errors.New("duplicate project name")
)
