package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/courtsight/nba-analytics/internal/domain/champions"
	"github.com/courtsight/nba-analytics/internal/domain/standings"
	"github.com/courtsight/nba-analytics/internal/domain/team"
	"github.com/courtsight/nba-analytics/internal/infrastructure/spreadsheet"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
	ants "github.com/panjf2000/ants/v2"
)

// Workbook file names of the fixed spreadsheet corpus.
const (
	WorkbookWestStandings       = "western_conf_standing.xlsx"
	WorkbookEastStandings       = "eastern_conf_standing.xlsx"
	WorkbookTeamPlayoffStats    = "nba_team_playoff_stats_pg.xlsx"
	WorkbookTeamPlayoffAdvanced = "nba_team_playoff_advanced_stats.xlsx"
	WorkbookSalaries            = "nba_players_salaries.xlsx"
	WorkbookTeamRatings         = "nba_team_reg_season_ratings.xlsx"
	WorkbookChampions           = "nba_champion.xlsx"
)

// WorkbookLoader is the slice of the spreadsheet infrastructure the service
// consumes.
type WorkbookLoader interface {
	Load(fileName string) (*spreadsheet.Table, error)
}

// WorkbookSet is the full spreadsheet corpus after normalization, plus the
// warnings accumulated while shaping it.
type WorkbookSet struct {
	WestStandings       *spreadsheet.Table
	EastStandings       *spreadsheet.Table
	TeamPlayoffStats    *spreadsheet.Table
	TeamPlayoffAdvanced *spreadsheet.Table
	Salaries            *spreadsheet.Table
	TeamRatings         *spreadsheet.Table
	Champions           *spreadsheet.Table
	Warnings            []string
}

// SpreadsheetService loads the workbook corpus through a bounded worker pool
// and applies the per-table shaping rules: conference standings gain
// TEAM/RANK/PLAYOFF_TEAM, every team-bearing table gains both TEAM and TM,
// the champions table gains abbreviation columns for both finalists.
type SpreadsheetService struct {
	loader     WorkbookLoader
	normalizer *team.Normalizer
	logger     *logging.Logger
	workers    int
}

func NewSpreadsheetService(loader WorkbookLoader, logger *logging.Logger, workers int) *SpreadsheetService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &SpreadsheetService{
		loader:     loader,
		normalizer: team.NewNormalizer(),
		logger:     logger,
		workers:    workers,
	}
}

func (s *SpreadsheetService) LoadAll(ctx context.Context) (*WorkbookSet, error) {
	_, span := startUsecaseSpan(ctx, "usecase.SpreadsheetService.LoadAll")
	defer span.End()

	fileNames := []string{
		WorkbookWestStandings,
		WorkbookEastStandings,
		WorkbookTeamPlayoffStats,
		WorkbookTeamPlayoffAdvanced,
		WorkbookSalaries,
		WorkbookTeamRatings,
		WorkbookChampions,
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create workbook pool: %w", err)
	}
	defer pool.Release()

	tables := make([]*spreadsheet.Table, len(fileNames))
	errs := make([]error, len(fileNames))
	var wg sync.WaitGroup
	for i, name := range fileNames {
		i, name := i, name
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			tables[i], errs[i] = s.loader.Load(name)
		}); submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit workbook load %s: %w", name, submitErr)
		}
	}
	wg.Wait()

	for i, loadErr := range errs {
		if loadErr != nil {
			return nil, fmt.Errorf("%w: load workbook %s: %v", ErrDependencyUnavailable, fileNames[i], loadErr)
		}
	}

	set := &WorkbookSet{
		WestStandings:       tables[0],
		EastStandings:       tables[1],
		TeamPlayoffStats:    tables[2],
		TeamPlayoffAdvanced: tables[3],
		Salaries:            tables[4],
		TeamRatings:         tables[5],
		Champions:           tables[6],
	}

	if err := s.shapeStandings(set.WestStandings, "WESTERN_CONFERENCE"); err != nil {
		return nil, err
	}
	if err := s.shapeStandings(set.EastStandings, "EASTERN_CONFERENCE"); err != nil {
		return nil, err
	}
	for _, t := range []*spreadsheet.Table{set.TeamPlayoffStats, set.TeamPlayoffAdvanced} {
		t.SortByIntColumn("RK")
		if err := s.injectTeamColumns(t); err != nil {
			return nil, err
		}
	}
	if err := s.shapeRatings(set.TeamRatings, set); err != nil {
		return nil, err
	}
	if err := s.shapeSalaries(set.Salaries); err != nil {
		return nil, err
	}
	s.shapeChampions(set.Champions, set)

	return set, nil
}

// shapeStandings renames the conference column to TEAM and parses every row
// into a typed standing, then writes PLAYOFF_TEAM, RANK and TM back from the
// typed values. The conference column is the table's identity; its absence
// is fatal.
func (s *SpreadsheetService) shapeStandings(t *spreadsheet.Table, conferenceColumn string) error {
	if t.ColumnIndex(conferenceColumn) < 0 {
		return fmt.Errorf("workbook %s: identity column %s missing", t.Name, conferenceColumn)
	}
	t.RenameColumn(conferenceColumn, "TEAM")

	typed := make([]standings.TeamStanding, len(t.Rows))
	for i, row := range t.Rows {
		st := standings.ParseStanding(conferenceColumn, i+1, t.Cell(row, "TEAM"), t.Cell(row, "W"), t.Cell(row, "L"))
		st.TeamAbbr = s.normalizer.Abbreviation(st.Team)
		typed[i] = st
		t.SetCell(i, "TEAM", st.Team)
	}

	next := 0
	t.AddColumn("PLAYOFF_TEAM", func([]string) string {
		v := strconv.FormatBool(typed[next].PlayoffTeam)
		next++
		return v
	})
	next = 0
	t.AddColumn("RANK", func([]string) string {
		v := strconv.FormatInt(typed[next].Rank, 10)
		next++
		return v
	})
	next = 0
	t.AddColumn("TM", func([]string) string {
		v := typed[next].TeamAbbr
		next++
		return v
	})
	return nil
}

// injectTeamColumns guarantees a table carries both the full TEAM name and
// the TM abbreviation, deriving one from the other. Unmapped names keep the
// Unknown sentinel so the row stays visible.
func (s *SpreadsheetService) injectTeamColumns(t *spreadsheet.Table) error {
	hasTeam := t.ColumnIndex("TEAM") >= 0
	hasTM := t.ColumnIndex("TM") >= 0
	switch {
	case hasTeam && !hasTM:
		t.AddColumn("TM", func(row []string) string {
			name, _ := standings.SplitPlayoffMarker(t.Cell(row, "TEAM"))
			return s.normalizer.Abbreviation(name)
		})
	case hasTM && !hasTeam:
		t.AddColumn("TEAM", func(row []string) string {
			return s.normalizer.Name(t.Cell(row, "TM"))
		})
	case !hasTeam && !hasTM:
		return fmt.Errorf("workbook %s: no TEAM or TM column to join on", t.Name)
	}
	if hasTM {
		// Canonicalize alias codes in place.
		for i, row := range t.Rows {
			if canon := s.normalizer.Canonical(t.Cell(row, "TM")); canon != team.Unknown {
				t.SetCell(i, "TM", canon)
			}
		}
	}
	return nil
}

func (s *SpreadsheetService) shapeSalaries(t *spreadsheet.Table) error {
	if t.ColumnIndex("PLAYER") < 0 {
		return fmt.Errorf("workbook %s: identity column PLAYER missing", t.Name)
	}
	return s.injectTeamColumns(t)
}

// shapeRatings orders the ratings workbook on RK, guarantees TEAM/TM, and
// checks every row parses as a rating line, warning on the ones that do
// not. Bad rows stay in the table; the warning is the quality signal.
func (s *SpreadsheetService) shapeRatings(t *spreadsheet.Table, set *WorkbookSet) error {
	t.SortByIntColumn("RK")
	if err := s.injectTeamColumns(t); err != nil {
		return err
	}
	var bad []string
	for _, row := range t.Rows {
		r, ok := standings.ParseRating(t.Cell(row, "TEAM"), t.Cell(row, "TM"),
			t.Cell(row, "ORTG"), t.Cell(row, "DRTG"), t.Cell(row, "NRTG"))
		if !ok {
			bad = append(bad, r.Team)
		}
	}
	if len(bad) > 0 {
		set.warn(s, "workbook "+t.Name+": non-numeric ratings for: "+strings.Join(bad, ", "))
	}
	return nil
}

// shapeChampions parses each finals row into a typed record and writes the
// finalists' abbreviations back as columns. The columns are decoration for
// downstream display, so a missing source column only warns.
func (s *SpreadsheetService) shapeChampions(t *spreadsheet.Table, set *WorkbookSet) {
	runnerUpCol := firstPresentColumn(t, "RUNNER_UP", "RUNNER-UP")

	records := make([]champions.Record, len(t.Rows))
	for i, row := range t.Rows {
		rec := champions.ParseRecord(t.Cell(row, "YEAR"), t.Cell(row, "CHAMPION"), t.Cell(row, runnerUpCol))
		rec.ChampAbbr = s.normalizer.Abbreviation(rec.Champion)
		rec.RunnerAbbr = s.normalizer.Abbreviation(rec.RunnerUp)
		records[i] = rec
	}

	if t.ColumnIndex("CHAMPION") >= 0 {
		i := 0
		t.AddColumn("TM_CHAMP", func([]string) string {
			v := records[i].ChampAbbr
			i++
			return v
		})
	} else {
		set.warn(s, "workbook "+t.Name+": CHAMPION column missing, skipping TM_CHAMP")
	}
	if runnerUpCol != "" {
		i := 0
		t.AddColumn("TM_RUNNER_UP", func([]string) string {
			v := records[i].RunnerAbbr
			i++
			return v
		})
	} else {
		set.warn(s, "workbook "+t.Name+": RUNNER_UP column missing, skipping TM_RUNNER_UP")
	}
}

func (set *WorkbookSet) warn(s *SpreadsheetService, msg string) {
	set.Warnings = append(set.Warnings, msg)
	s.logger.Warn(msg)
}

func firstPresentColumn(t *spreadsheet.Table, candidates ...string) string {
	for _, c := range candidates {
		if t.ColumnIndex(c) >= 0 {
			return c
		}
	}
	return ""
}

// SalarySeasonColumns returns the contract season columns present in the
// salaries table, in workbook order.
func SalarySeasonColumns(t *spreadsheet.Table) []string {
	out := make([]string, 0, 6)
	for _, c := range t.Columns {
		if isSeasonColumn(c) {
			out = append(out, c)
		}
	}
	return out
}

func isSeasonColumn(c string) bool {
	if len(c) != 7 || c[4] != '-' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6} {
		if c[i] < '0' || c[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeName uppercases and collapses whitespace for name-keyed joins.
func normalizeName(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), " "))
}
