package datastore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/valyala/bytebufferpool"
)

// Store persists normalized tables as flat CSV files in a single output
// directory. Writes are atomic: the file is assembled in memory, flushed to
// a temp sibling, then renamed over the target so readers never observe a
// partial table.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Path returns the on-disk location for a table name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".csv")
}

// WriteTable persists a header row plus data rows under the given table
// name.
func (s *Store) WriteTable(name string, columns []string, rows [][]string) error {
	if len(columns) == 0 {
		return fmt.Errorf("table %s has no columns", name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write header of %s: %w", name, err)
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("table %s row %d has %d cells, want %d", name, i, len(row), len(columns))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i, name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}

	return s.writeAtomic(s.Path(name), buf.Bytes())
}

// ReadTable loads a previously written table back into header plus rows.
func (s *Store) ReadTable(name string) ([]string, [][]string, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, nil, fmt.Errorf("open table %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read table %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("table %s is empty", name)
	}
	return records[0], records[1:], nil
}

func (s *Store) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
