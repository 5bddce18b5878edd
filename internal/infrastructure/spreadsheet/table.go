package spreadsheet

import (
	"sort"
	"strconv"
	"strings"
)

// Table is a workbook sheet after normalization: uppercase underscore column
// names and rectangular string rows. All downstream joins and exports work
// on this shape.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// NormalizeColumn rewrites a header cell to the canonical column form:
// trimmed, spaces collapsed to single underscores, uppercased.
func NormalizeColumn(header string) string {
	fields := strings.Fields(strings.TrimSpace(header))
	return strings.ToUpper(strings.Join(fields, "_"))
}

// ColumnIndex returns the position of a column, or -1.
func (t *Table) ColumnIndex(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Cell reads one cell by column name; missing columns and ragged rows read
// as empty.
func (t *Table) Cell(row []string, column string) string {
	i := t.ColumnIndex(column)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// RenameColumn changes a column header in place. Renaming a missing column
// is a no-op.
func (t *Table) RenameColumn(from, to string) {
	if i := t.ColumnIndex(from); i >= 0 {
		t.Columns[i] = to
	}
}

// AddColumn appends a column whose value per row is computed from that row.
func (t *Table) AddColumn(name string, value func(row []string) string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value(t.Rows[i]))
	}
}

// SortByIntColumn orders rows ascending by a numeric column. Rows whose
// cell does not parse sort after all numeric rows, keeping their relative
// order. Sorting on a missing column is a no-op.
func (t *Table) SortByIntColumn(column string) {
	if t.ColumnIndex(column) < 0 {
		return
	}
	sort.SliceStable(t.Rows, func(a, b int) bool {
		va, errA := strconv.Atoi(t.Cell(t.Rows[a], column))
		vb, errB := strconv.Atoi(t.Cell(t.Rows[b], column))
		if errA != nil {
			return false
		}
		if errB != nil {
			return true
		}
		return va < vb
	})
}

// SetCell writes one cell by column name, extending ragged rows as needed.
func (t *Table) SetCell(rowIdx int, column, value string) {
	i := t.ColumnIndex(column)
	if i < 0 || rowIdx < 0 || rowIdx >= len(t.Rows) {
		return
	}
	for len(t.Rows[rowIdx]) <= i {
		t.Rows[rowIdx] = append(t.Rows[rowIdx], "")
	}
	t.Rows[rowIdx][i] = value
}
