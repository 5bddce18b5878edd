package nbastats

import (
	"fmt"
	"strings"
)

// statsEnvelope is the provider's response shape: every endpoint returns one
// or more named result sets, each a header row plus positional value rows.
type statsEnvelope struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// resultTable wraps a result set with by-name column access so mapping code
// survives the provider reordering or appending columns.
type resultTable struct {
	name    string
	headers []string
	rows    [][]any
	index   map[string]int
}

func (e *statsEnvelope) table(name string) (*resultTable, error) {
	for _, rs := range e.ResultSets {
		if !strings.EqualFold(rs.Name, name) {
			continue
		}
		idx := make(map[string]int, len(rs.Headers))
		for i, h := range rs.Headers {
			idx[strings.ToUpper(strings.TrimSpace(h))] = i
		}
		return &resultTable{name: rs.Name, headers: rs.Headers, rows: rs.RowSet, index: idx}, nil
	}
	return nil, fmt.Errorf("result set %q missing from provider payload", name)
}

func (t *resultTable) cell(row []any, column string) any {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}

func (t *resultTable) str(row []any, column string) string {
	v, _ := t.cell(row, column).(string)
	return strings.TrimSpace(v)
}

// int64Val reads a numeric cell. The provider emits all numbers as JSON
// floats, so both forms are accepted.
func (t *resultTable) int64Val(row []any, column string) int64 {
	switch v := t.cell(row, column).(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

func (t *resultTable) floatVal(row []any, column string) float64 {
	switch v := t.cell(row, column).(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}
