package domain

import "slices"

// Table is a header plus string rows, the shape of a delimited flat file.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	return slices.Index(t.Columns, name)
}

// Return the required columns that are absent from the header.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, c := range required {
		if t.ColumnIndex(c) < 0 {
			missing = append(missing, c)
		}
	}
	return missing
}
