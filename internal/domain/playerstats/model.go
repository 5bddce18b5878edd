package playerstats

import "math"

// SeasonType selects which split the stats provider aggregates.
type SeasonType string

const (
	RegularSeason SeasonType = "Regular Season"
	Playoffs      SeasonType = "Playoffs"
)

// PlayerSeasonRecord is one player's aggregate line for a single season
// split, carrying both the provider's cumulative totals and the derived
// per-game columns.
type PlayerSeasonRecord struct {
	PlayerID    int64   `db:"player_id"`
	PlayerName  string  `db:"player_name"`
	TeamID      int64   `db:"team_id"`
	TeamAbbr    string  `db:"team_abbr"`
	TeamName    string  `db:"team_name"`
	Age         float64 `db:"age"`
	GamesPlayed int64   `db:"gp"`
	Wins        int64   `db:"w"`
	Losses      int64   `db:"l"`
	WinPct      float64 `db:"w_pct"`
	Minutes     float64 `db:"min"`
	FGM         float64 `db:"fgm"`
	FGA         float64 `db:"fga"`
	FGPct       float64 `db:"fg_pct"`
	FG3M        float64 `db:"fg3m"`
	FG3A        float64 `db:"fg3a"`
	FG3Pct      float64 `db:"fg3_pct"`
	FTM         float64 `db:"ftm"`
	FTA         float64 `db:"fta"`
	FTPct       float64 `db:"ft_pct"`
	OREB        float64 `db:"oreb"`
	DREB        float64 `db:"dreb"`
	REB         float64 `db:"reb"`
	AST         float64 `db:"ast"`
	TOV         float64 `db:"tov"`
	STL         float64 `db:"stl"`
	BLK         float64 `db:"blk"`
	Points      float64 `db:"pts"`
	PlusMinus   float64 `db:"plus_minus"`
	MinutesPG   float64 `db:"min_pg"`
	FGMPG       float64 `db:"fgm_pg"`
	FGAPG       float64 `db:"fga_pg"`
	FG3MPG      float64 `db:"fg3m_pg"`
	FG3APG      float64 `db:"fg3a_pg"`
	FTMPG       float64 `db:"ftm_pg"`
	FTAPG       float64 `db:"fta_pg"`
	OREBPG      float64 `db:"oreb_pg"`
	DREBPG      float64 `db:"dreb_pg"`
	REBPG       float64 `db:"reb_pg"`
	ASTPG       float64 `db:"ast_pg"`
	TOVPG       float64 `db:"tov_pg"`
	STLPG       float64 `db:"stl_pg"`
	BLKPG       float64 `db:"blk_pg"`
	PointsPG    float64 `db:"pts_pg"`
	PlusMinusPG float64 `db:"plus_minus_pg"`
	Pos         string  `db:"pos"`
	Position    string  `db:"position"`
	Salary      int64   `db:"salary"`
	ContractYrs int     `db:"contract_years"`
}

// DerivePerGame fills every per-game column from the cumulative totals,
// rounded to one decimal. Records with zero games played must be excluded
// before this is called.
func (r *PlayerSeasonRecord) DerivePerGame() {
	gp := float64(r.GamesPlayed)
	r.MinutesPG = perGame(r.Minutes, gp)
	r.FGMPG = perGame(r.FGM, gp)
	r.FGAPG = perGame(r.FGA, gp)
	r.FG3MPG = perGame(r.FG3M, gp)
	r.FG3APG = perGame(r.FG3A, gp)
	r.FTMPG = perGame(r.FTM, gp)
	r.FTAPG = perGame(r.FTA, gp)
	r.OREBPG = perGame(r.OREB, gp)
	r.DREBPG = perGame(r.DREB, gp)
	r.REBPG = perGame(r.REB, gp)
	r.ASTPG = perGame(r.AST, gp)
	r.TOVPG = perGame(r.TOV, gp)
	r.STLPG = perGame(r.STL, gp)
	r.BLKPG = perGame(r.BLK, gp)
	r.PointsPG = perGame(r.Points, gp)
	r.PlusMinusPG = perGame(r.PlusMinus, gp)
}

func perGame(total, gp float64) float64 {
	if gp == 0 {
		return 0
	}
	return math.Round(total/gp*10) / 10
}
