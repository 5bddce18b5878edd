package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"

	excelize "github.com/xuri/excelize/v2"
)

// Loader reads xlsx workbooks from a fixed directory into normalized
// tables. The first sheet is the data sheet; the first row is the header.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load opens one workbook by file name. Header cells normalize to canonical
// column names; unnamed header cells drop the whole column. Rows are padded
// to header width so every table is rectangular.
func (l *Loader) Load(fileName string) (*Table, error) {
	path := filepath.Join(l.dir, fileName)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", fileName, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", fileName)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w", sheets[0], fileName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s sheet %s is empty", fileName, sheets[0])
	}

	keepIdx := make([]int, 0, len(rows[0]))
	columns := make([]string, 0, len(rows[0]))
	for i, h := range rows[0] {
		name := NormalizeColumn(h)
		if name == "" {
			continue
		}
		keepIdx = append(keepIdx, i)
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("workbook %s has no named columns", fileName)
	}

	table := &Table{
		Name:    strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		Columns: columns,
		Rows:    make([][]string, 0, len(rows)-1),
	}
	for _, raw := range rows[1:] {
		if isBlankRow(raw) {
			continue
		}
		row := make([]string, len(keepIdx))
		for out, in := range keepIdx {
			if in < len(raw) {
				row[out] = strings.TrimSpace(raw[in])
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
