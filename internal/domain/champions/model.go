package champions

import (
	"strconv"
	"strings"
)

// Record is one finals outcome from the historical champions workbook.
type Record struct {
	Year       int64
	Champion   string
	ChampAbbr  string
	RunnerUp   string
	RunnerAbbr string
}

// ParseRecord builds one finals row from raw workbook cells. The
// abbreviation fields are filled by the caller, which owns the franchise
// normalizer.
func ParseRecord(year, champion, runnerUp string) Record {
	y, _ := strconv.ParseInt(strings.TrimSpace(year), 10, 64)
	return Record{
		Year:     y,
		Champion: strings.TrimSpace(champion),
		RunnerUp: strings.TrimSpace(runnerUp),
	}
}
