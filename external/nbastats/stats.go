package nbastats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	"github.com/courtsight/nba-analytics/internal/domain/roster"
	"github.com/courtsight/nba-analytics/internal/domain/team"
)

const (
	sourceName = "nbastats"

	playerStatsResultSet = "LeagueDashPlayerStats"
	rosterResultSet      = "CommonTeamRoster"
)

// FetchLeaguePlayerStats pulls cumulative player totals for one season
// split, keeps only rows belonging to the 30 franchises with at least one
// game played, and derives the per-game columns. The raw payload rides along
// for archiving.
func (c *Client) FetchLeaguePlayerStats(ctx context.Context, season string, seasonType playerstats.SeasonType) ([]playerstats.PlayerSeasonRecord, rawdata.Payload, error) {
	query := map[string]string{
		"Season":      season,
		"SeasonType":  string(seasonType),
		"PerMode":     "Totals",
		"MeasureType": "Base",
		"LeagueID":    "00",
	}

	var envelope statsEnvelope
	raw, err := c.doJSON(ctx, "/leaguedashplayerstats", query, &envelope)
	if err != nil {
		return nil, rawdata.Payload{}, fmt.Errorf("fetch player stats season=%s type=%s: %w", season, seasonType, err)
	}
	payload := rawdata.Payload{
		Source:    sourceName,
		EntityKey: fmt.Sprintf("leaguedashplayerstats:%s:%s", season, seasonType),
		Body:      raw,
		FetchedAt: time.Now().UTC(),
	}

	table, err := envelope.table(playerStatsResultSet)
	if err != nil {
		return nil, payload, err
	}

	normalizer := team.NewNormalizer()
	records := make([]playerstats.PlayerSeasonRecord, 0, len(table.rows))
	for _, row := range table.rows {
		abbr := table.str(row, "TEAM_ABBREVIATION")
		if !normalizer.IsFranchise(abbr) {
			continue
		}
		rec := playerstats.PlayerSeasonRecord{
			PlayerID:    table.int64Val(row, "PLAYER_ID"),
			PlayerName:  table.str(row, "PLAYER_NAME"),
			TeamID:      table.int64Val(row, "TEAM_ID"),
			TeamAbbr:    normalizer.Canonical(abbr),
			TeamName:    normalizer.Name(abbr),
			Age:         table.floatVal(row, "AGE"),
			GamesPlayed: table.int64Val(row, "GP"),
			Wins:        table.int64Val(row, "W"),
			Losses:      table.int64Val(row, "L"),
			WinPct:      table.floatVal(row, "W_PCT"),
			Minutes:     table.floatVal(row, "MIN"),
			FGM:         table.floatVal(row, "FGM"),
			FGA:         table.floatVal(row, "FGA"),
			FGPct:       table.floatVal(row, "FG_PCT"),
			FG3M:        table.floatVal(row, "FG3M"),
			FG3A:        table.floatVal(row, "FG3A"),
			FG3Pct:      table.floatVal(row, "FG3_PCT"),
			FTM:         table.floatVal(row, "FTM"),
			FTA:         table.floatVal(row, "FTA"),
			FTPct:       table.floatVal(row, "FT_PCT"),
			OREB:        table.floatVal(row, "OREB"),
			DREB:        table.floatVal(row, "DREB"),
			REB:         table.floatVal(row, "REB"),
			AST:         table.floatVal(row, "AST"),
			TOV:         table.floatVal(row, "TOV"),
			STL:         table.floatVal(row, "STL"),
			BLK:         table.floatVal(row, "BLK"),
			Points:      table.floatVal(row, "PTS"),
			PlusMinus:   table.floatVal(row, "PLUS_MINUS"),
		}
		if rec.PlayerID <= 0 || rec.GamesPlayed <= 0 {
			continue
		}
		if rec.PlayerName == "" || rec.PlayerName == "None" {
			continue
		}
		rec.DerivePerGame()
		records = append(records, rec)
	}

	return records, payload, nil
}

// FetchTeamRoster pulls one franchise's current roster with raw position
// codes expanded to display names.
func (c *Client) FetchTeamRoster(ctx context.Context, teamID int64, season string) ([]roster.Entry, rawdata.Payload, error) {
	if teamID <= 0 {
		return nil, rawdata.Payload{}, fmt.Errorf("team id must be greater than zero")
	}

	query := map[string]string{
		"TeamID":   strconv.FormatInt(teamID, 10),
		"Season":   season,
		"LeagueID": "00",
	}

	var envelope statsEnvelope
	raw, err := c.doJSON(ctx, "/commonteamroster", query, &envelope)
	if err != nil {
		return nil, rawdata.Payload{}, fmt.Errorf("fetch roster team_id=%d season=%s: %w", teamID, season, err)
	}
	payload := rawdata.Payload{
		Source:    sourceName,
		EntityKey: fmt.Sprintf("commonteamroster:%d:%s", teamID, season),
		Body:      raw,
		FetchedAt: time.Now().UTC(),
	}

	table, err := envelope.table(rosterResultSet)
	if err != nil {
		return nil, payload, err
	}

	entries := make([]roster.Entry, 0, len(table.rows))
	for _, row := range table.rows {
		entry := roster.Entry{
			PlayerID:    table.int64Val(row, "PLAYER_ID"),
			PlayerName:  table.str(row, "PLAYER"),
			TeamID:      table.int64Val(row, "TEAMID"),
			RawPosition: table.str(row, "POSITION"),
		}
		if entry.PlayerID <= 0 {
			continue
		}
		if entry.TeamID <= 0 {
			entry.TeamID = teamID
		}
		if f, ok := team.ByID(entry.TeamID); ok {
			entry.TeamAbbr = f.Abbreviation
		} else {
			entry.TeamAbbr = team.Unknown
		}
		entry.Position = roster.PositionName(entry.RawPosition)
		entries = append(entries, entry)
	}

	return entries, payload, nil
}
