package salary

import "strings"

// SeasonColumns are the contract seasons carried by the salary workbook, in
// chronological order. The first is the season under analysis.
var SeasonColumns = []string{
	"2025-26", "2026-27", "2027-28", "2028-29", "2029-30", "2030-31",
}

// Record is one player's contract line: the current-season cap hit plus the
// count of seasons with money still on the books.
type Record struct {
	PlayerName    string
	TeamAbbr      string
	Amount        int64
	ContractYears int
}

// ParseAmount reads a formatted currency cell ("$51,915,615") by stripping
// every non-digit rune. Blank or non-numeric cells parse to zero rather than
// failing the row.
func ParseAmount(cell string) int64 {
	var amount int64
	var any bool
	for _, r := range cell {
		if r < '0' || r > '9' {
			continue
		}
		amount = amount*10 + int64(r-'0')
		any = true
	}
	if !any {
		return 0
	}
	return amount
}

// ContractYears counts the seasons with a non-blank cell.
func ContractYears(cells []string) int {
	years := 0
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			years++
		}
	}
	return years
}

// FromRow builds a Record from a player's season cells. The first cell is
// the current season's cap hit.
func FromRow(playerName, teamAbbr string, seasonCells []string) Record {
	rec := Record{
		PlayerName:    playerName,
		TeamAbbr:      teamAbbr,
		ContractYears: ContractYears(seasonCells),
	}
	if len(seasonCells) > 0 {
		rec.Amount = ParseAmount(seasonCells[0])
	}
	return rec
}
