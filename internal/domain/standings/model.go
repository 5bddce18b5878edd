package standings

import (
	"strconv"
	"strings"
)

// TeamStanding is one conference table row after normalization. The source
// workbook marks playoff qualifiers with a trailing asterisk on the team
// name; SplitPlayoffMarker lifts that into PlayoffTeam and strips it.
type TeamStanding struct {
	Rank        int64
	Team        string
	TeamAbbr    string
	Conference  string
	Wins        int64
	Losses      int64
	WinPct      float64
	PlayoffTeam bool
}

// TeamRating is one row of the regular season ratings workbook.
type TeamRating struct {
	Team         string
	TeamAbbr     string
	OffensiveRtg float64
	DefensiveRtg float64
	NetRtg       float64
}

// ParseStanding builds the typed row for one conference-table entry. The
// raw name may still carry the playoff marker; rank is the 1-indexed row
// position. The abbreviation is filled by the caller, which owns the
// franchise normalizer.
func ParseStanding(conference string, rank int, rawName, wins, losses string) TeamStanding {
	name, playoff := SplitPlayoffMarker(rawName)
	w, _ := strconv.ParseInt(strings.TrimSpace(wins), 10, 64)
	l, _ := strconv.ParseInt(strings.TrimSpace(losses), 10, 64)
	var pct float64
	if w+l > 0 {
		pct = float64(w) / float64(w+l)
	}
	return TeamStanding{
		Rank:        int64(rank),
		Team:        name,
		Conference:  conference,
		Wins:        w,
		Losses:      l,
		WinPct:      pct,
		PlayoffTeam: playoff,
	}
}

// ParseRating builds the typed ratings row. ok is false when any rating
// cell fails to parse as a number.
func ParseRating(teamName, abbr, ortg, drtg, nrtg string) (TeamRating, bool) {
	r := TeamRating{Team: teamName, TeamAbbr: abbr}
	ok := true
	parse := func(v string) float64 {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			ok = false
		}
		return f
	}
	r.OffensiveRtg = parse(ortg)
	r.DefensiveRtg = parse(drtg)
	r.NetRtg = parse(nrtg)
	return r, ok
}

// SplitPlayoffMarker strips the qualifier asterisk from a team name and
// reports whether it was present.
func SplitPlayoffMarker(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if strings.HasSuffix(trimmed, "*") {
		return strings.TrimSpace(strings.TrimSuffix(trimmed, "*")), true
	}
	return trimmed, false
}
