package excel

// HeaderMap derives the column schema from a header row: column name to
// zero-based position. Blank header cells are skipped; when the same name
// appears more than once, the rightmost occurrence wins. An empty header
// yields an empty map; operations that need a specific column check for it
// themselves.
func HeaderMap(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		if col == "" {
			continue
		}
		m[col] = i
	}
	return m
}

// rowBlank reports whether every cell in the row is empty.
func rowBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
