package playerstats

// FilterProfile is a participation threshold applied before analytical
// consumers see a record. Thresholds differ between season splits: a playoff
// run is at most a few series, so its games floor is far lower.
type FilterProfile struct {
	Name       string
	MinGames   int64
	GamesMinEq bool // games threshold is inclusive (>=) rather than strict (>)
	MinMinutes float64
}

var (
	// RegularSeasonProfile keeps rotation players only: more than 10
	// appearances and more than 10 minutes a game.
	RegularSeasonProfile = FilterProfile{Name: "regular_season", MinGames: 10, MinMinutes: 10}

	// PlayoffProfile keeps anyone who played a full first-round series worth
	// of games at rotation minutes.
	PlayoffProfile = FilterProfile{Name: "playoffs", MinGames: 4, GamesMinEq: true, MinMinutes: 10}
)

// Keep reports whether the record clears the profile's thresholds.
func (p FilterProfile) Keep(r PlayerSeasonRecord) bool {
	if p.GamesMinEq {
		if r.GamesPlayed < p.MinGames {
			return false
		}
	} else if r.GamesPlayed <= p.MinGames {
		return false
	}
	return r.MinutesPG > p.MinMinutes
}

// Apply filters records in place order-preserving and returns the kept slice.
func (p FilterProfile) Apply(records []PlayerSeasonRecord) []PlayerSeasonRecord {
	kept := records[:0:0]
	for _, r := range records {
		if p.Keep(r) {
			kept = append(kept, r)
		}
	}
	return kept
}
