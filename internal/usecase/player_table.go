package usecase

import (
	"strconv"

	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
)

// playerTableColumns is the persisted column order for player stat tables.
var playerTableColumns = []string{
	"PLAYER_ID", "PLAYER", "TEAM_ID", "TM", "TEAM", "AGE", "GP", "W", "L", "W_PCT",
	"MIN", "FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT",
	"OREB", "DREB", "REB", "AST", "TOV", "STL", "BLK", "PTS", "PLUS_MINUS",
	"MIN_PG", "FGM_PG", "FGA_PG", "FG3M_PG", "FG3A_PG", "FTM_PG", "FTA_PG",
	"OREB_PG", "DREB_PG", "REB_PG", "AST_PG", "TOV_PG", "STL_PG", "BLK_PG",
	"PTS_PG", "PLUS_MINUS_PG",
	"POS", "POSITION", "SALARY", "CONTRACT_YEARS",
}

func playerTableRows(records []playerstats.PlayerSeasonRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.PlayerID, 10),
			r.PlayerName,
			strconv.FormatInt(r.TeamID, 10),
			r.TeamAbbr,
			r.TeamName,
			formatFloat(r.Age),
			strconv.FormatInt(r.GamesPlayed, 10),
			strconv.FormatInt(r.Wins, 10),
			strconv.FormatInt(r.Losses, 10),
			formatFloat(r.WinPct),
			formatFloat(r.Minutes),
			formatFloat(r.FGM),
			formatFloat(r.FGA),
			formatFloat(r.FGPct),
			formatFloat(r.FG3M),
			formatFloat(r.FG3A),
			formatFloat(r.FG3Pct),
			formatFloat(r.FTM),
			formatFloat(r.FTA),
			formatFloat(r.FTPct),
			formatFloat(r.OREB),
			formatFloat(r.DREB),
			formatFloat(r.REB),
			formatFloat(r.AST),
			formatFloat(r.TOV),
			formatFloat(r.STL),
			formatFloat(r.BLK),
			formatFloat(r.Points),
			formatFloat(r.PlusMinus),
			formatFloat(r.MinutesPG),
			formatFloat(r.FGMPG),
			formatFloat(r.FGAPG),
			formatFloat(r.FG3MPG),
			formatFloat(r.FG3APG),
			formatFloat(r.FTMPG),
			formatFloat(r.FTAPG),
			formatFloat(r.OREBPG),
			formatFloat(r.DREBPG),
			formatFloat(r.REBPG),
			formatFloat(r.ASTPG),
			formatFloat(r.TOVPG),
			formatFloat(r.STLPG),
			formatFloat(r.BLKPG),
			formatFloat(r.PointsPG),
			formatFloat(r.PlusMinusPG),
			r.Pos,
			r.Position,
			strconv.FormatInt(r.Salary, 10),
			strconv.Itoa(r.ContractYrs),
		})
	}
	return rows
}
