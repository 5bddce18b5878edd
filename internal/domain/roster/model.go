package roster

// Entry is one player's roster slot for a single team and season.
type Entry struct {
	PlayerID    int64
	PlayerName  string
	TeamID      int64
	TeamAbbr    string
	RawPosition string
	Position    string
}

// positionNames expands the provider's position codes into display names.
// Hybrid codes resolve by the code's leading role, which is why G-F maps to
// plain Guard while F-G maps to Small Forward.
var positionNames = map[string]string{
	"G":   "Guard",
	"F":   "Forward",
	"C":   "Center",
	"G-F": "Guard",
	"F-G": "Small Forward",
	"F-C": "Power Forward",
	"C-F": "Center",
}

// PositionName maps a provider position code to its display name, or the
// Unknown sentinel for codes outside the table.
func PositionName(code string) string {
	if name, ok := positionNames[code]; ok {
		return name
	}
	return "Unknown"
}

// Dedupe collapses entries by player id, last occurrence winning, and
// preserves first-seen order. A player traded mid-season appears on several
// rosters; the later fetch reflects the current team.
func Dedupe(entries []Entry) []Entry {
	idx := make(map[int64]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if i, ok := idx[e.PlayerID]; ok {
			out[i] = e
			continue
		}
		idx[e.PlayerID] = len(out)
		out = append(out, e)
	}
	return out
}
