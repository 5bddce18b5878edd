package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
	"github.com/courtsight/nba-analytics/internal/domain/roster"
	"github.com/courtsight/nba-analytics/internal/domain/salary"
	"github.com/courtsight/nba-analytics/internal/infrastructure/spreadsheet"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

// JoinService stitches the fetched stats to roster positions and workbook
// salaries. All joins are left joins: an unmatched stats row survives with
// sentinel values rather than disappearing.
type JoinService struct {
	logger *logging.Logger
}

func NewJoinService(logger *logging.Logger) *JoinService {
	if logger == nil {
		logger = logging.Default()
	}
	return &JoinService{logger: logger}
}

// EnrichPositions left-joins stats records to roster entries on player id.
// The roster side must be deduplicated already; a duplicate id there means
// the dedupe step was skipped, which is a bug, not data noise.
func (s *JoinService) EnrichPositions(ctx context.Context, records []playerstats.PlayerSeasonRecord, entries []roster.Entry) ([]playerstats.PlayerSeasonRecord, error) {
	_, span := startUsecaseSpan(ctx, "usecase.JoinService.EnrichPositions")
	defer span.End()

	byID := make(map[int64]roster.Entry, len(entries))
	for _, e := range entries {
		if _, dup := byID[e.PlayerID]; dup {
			return nil, fmt.Errorf("duplicate player id %d in roster entries, dedupe must run before the join", e.PlayerID)
		}
		byID[e.PlayerID] = e
	}

	out := make([]playerstats.PlayerSeasonRecord, len(records))
	unmatched := 0
	for i, rec := range records {
		if e, ok := byID[rec.PlayerID]; ok {
			rec.Pos = e.RawPosition
			rec.Position = e.Position
		} else {
			rec.Pos = ""
			rec.Position = "Unknown"
			unmatched++
		}
		out[i] = rec
	}
	if unmatched > 0 {
		s.logger.WarnContext(ctx, "players without roster position", "count", unmatched)
	}
	return out, nil
}

// AttachSalaries sets each record's current-season salary and contract
// length from the salaries workbook. Match on (player name, team) first,
// then name alone for players traded after the workbook snapshot. Unmatched
// records keep zero salary.
func (s *JoinService) AttachSalaries(ctx context.Context, records []playerstats.PlayerSeasonRecord, salaries *spreadsheet.Table) []playerstats.PlayerSeasonRecord {
	_, span := startUsecaseSpan(ctx, "usecase.JoinService.AttachSalaries")
	defer span.End()

	seasonCols := SalarySeasonColumns(salaries)
	byNameTeam := make(map[string]salary.Record, len(salaries.Rows))
	byName := make(map[string]salary.Record, len(salaries.Rows))
	for _, row := range salaries.Rows {
		cells := make([]string, len(seasonCols))
		for i, c := range seasonCols {
			cells[i] = salaries.Cell(row, c)
		}
		rec := salary.FromRow(salaries.Cell(row, "PLAYER"), salaries.Cell(row, "TM"), cells)
		name := normalizeName(rec.PlayerName)
		if name == "" {
			continue
		}
		byNameTeam[name+"|"+rec.TeamAbbr] = rec
		if _, seen := byName[name]; !seen {
			byName[name] = rec
		}
	}

	out := make([]playerstats.PlayerSeasonRecord, len(records))
	for i, rec := range records {
		name := normalizeName(rec.PlayerName)
		match, ok := byNameTeam[name+"|"+rec.TeamAbbr]
		if !ok {
			match, ok = byName[name]
		}
		if ok {
			rec.Salary = match.Amount
			rec.ContractYrs = match.ContractYears
		}
		out[i] = rec
	}
	return out
}

// BuildSalaryPerformance unpivots the wide salaries workbook to one row per
// (player, season) and left-joins a slim performance projection. Players
// with no stats row keep a zero-valued projection.
func (s *JoinService) BuildSalaryPerformance(ctx context.Context, salaries *spreadsheet.Table, records []playerstats.PlayerSeasonRecord) *spreadsheet.Table {
	_, span := startUsecaseSpan(ctx, "usecase.JoinService.BuildSalaryPerformance")
	defer span.End()

	statsByKey := make(map[string]playerstats.PlayerSeasonRecord, len(records))
	statsByName := make(map[string]playerstats.PlayerSeasonRecord, len(records))
	for _, rec := range records {
		name := normalizeName(rec.PlayerName)
		statsByKey[name+"|"+rec.TeamAbbr] = rec
		if _, seen := statsByName[name]; !seen {
			statsByName[name] = rec
		}
	}

	seasonCols := SalarySeasonColumns(salaries)
	out := &spreadsheet.Table{
		Name:    TableSalaryPerformance,
		Columns: []string{"PLAYER", "TM", "TEAM", "SEASON", "SALARY", "CONTRACT_YEARS", "POSITION", "PTS_PG", "AST_PG", "REB_PG", "MIN_PG"},
	}

	for _, row := range salaries.Rows {
		player := salaries.Cell(row, "PLAYER")
		name := normalizeName(player)
		if name == "" {
			continue
		}
		tm := salaries.Cell(row, "TM")
		teamName := salaries.Cell(row, "TEAM")

		cells := make([]string, len(seasonCols))
		for i, c := range seasonCols {
			cells[i] = salaries.Cell(row, c)
		}
		contractYears := salary.ContractYears(cells)

		stat, ok := statsByKey[name+"|"+tm]
		if !ok {
			stat, ok = statsByName[name]
		}
		if !ok {
			stat = playerstats.PlayerSeasonRecord{}
		}

		for i, seasonCol := range seasonCols {
			amount := salary.ParseAmount(cells[i])
			out.Rows = append(out.Rows, []string{
				player,
				tm,
				teamName,
				seasonCol,
				strconv.FormatInt(amount, 10),
				strconv.Itoa(contractYears),
				stat.Position,
				formatFloat(stat.PointsPG),
				formatFloat(stat.ASTPG),
				formatFloat(stat.REBPG),
				formatFloat(stat.MinutesPG),
			})
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
