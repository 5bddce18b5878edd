package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/courtsight/nba-analytics/internal/domain/pipeline"
	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
	"github.com/courtsight/nba-analytics/internal/infrastructure/spreadsheet"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

// Persisted table names.
const (
	TableRegularSeason         = "nba_players_stats_regular"
	TableRegularSeasonFiltered = "nba_players_stats_regular_filtered"
	TablePlayoffs              = "nba_players_stats_playoffs"
	TablePlayoffsFiltered      = "nba_players_stats_playoffs_filtered"
	TableSalaryPerformance     = "nba_players_salary_performance"
)

// TableStore is the slice of the datastore the pipeline consumes.
type TableStore interface {
	WriteTable(name string, columns []string, rows [][]string) error
	WriteReport(report pipeline.RunReport) error
	ReadReport() (pipeline.RunReport, error)
}

// PipelineService orchestrates one full ETL run: provider fetches, workbook
// loads, joins, filters, persistence. Runs share output files, so at most
// one may be active.
type PipelineService struct {
	stats   *SeasonStatsService
	rosters *RosterService
	sheets  *SpreadsheetService
	joins   *JoinService
	store   TableStore
	logger  *logging.Logger
	season  string

	running    atomic.Bool
	mu         sync.RWMutex
	lastReport *pipeline.RunReport
}

func NewPipelineService(
	stats *SeasonStatsService,
	rosters *RosterService,
	sheets *SpreadsheetService,
	joins *JoinService,
	store TableStore,
	logger *logging.Logger,
	season string,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PipelineService{
		stats:   stats,
		rosters: rosters,
		sheets:  sheets,
		joins:   joins,
		store:   store,
		logger:  logger,
		season:  season,
	}
}

// Active reports whether a run is currently in flight.
func (s *PipelineService) Active() bool {
	return s.running.Load()
}

// Status returns the most recent run report: the in-memory one if this
// process ran the pipeline, otherwise the persisted report from a previous
// process.
func (s *PipelineService) Status(ctx context.Context) (pipeline.RunReport, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PipelineService.Status")
	defer span.End()

	s.mu.RLock()
	last := s.lastReport
	s.mu.RUnlock()
	if last != nil {
		return *last, nil
	}

	report, err := s.store.ReadReport()
	if err != nil {
		return pipeline.RunReport{}, fmt.Errorf("%w: no pipeline run recorded", ErrNotFound)
	}
	return report, nil
}

// Run executes the whole pipeline and persists every output table plus the
// run report. The report is written even when the run fails, so operators
// always see the latest outcome.
func (s *PipelineService) Run(ctx context.Context) (pipeline.RunReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return pipeline.RunReport{}, fmt.Errorf("%w", ErrPipelineActive)
	}
	defer s.running.Store(false)

	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run")
	defer span.End()

	report := pipeline.RunReport{
		Season:    s.season,
		Status:    pipeline.StatusRunning,
		StartedAt: time.Now().UTC(),
		RowCounts: make(map[string]int),
	}
	s.setLastReport(report)

	err := s.run(ctx, &report)
	report.FinishedAt = time.Now().UTC()
	switch {
	case err != nil:
		report.Status = pipeline.StatusFailed
		report.Error = err.Error()
	case len(report.Warnings) > 0:
		report.Status = pipeline.StatusDegraded
	default:
		report.Status = pipeline.StatusCompleted
	}
	s.setLastReport(report)

	if writeErr := s.store.WriteReport(report); writeErr != nil {
		s.logger.ErrorContext(ctx, "write run report failed", "error", writeErr)
		if err == nil {
			err = fmt.Errorf("write run report: %w", writeErr)
		}
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "pipeline run failed", "season", s.season, "error", err)
		return report, err
	}
	s.logger.InfoContext(ctx, "pipeline run finished",
		"season", s.season,
		"status", report.Status,
		"tables", len(report.TablesWritten),
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	)
	return report, nil
}

func (s *PipelineService) run(ctx context.Context, report *pipeline.RunReport) error {
	regular, err := s.stats.FetchSeason(ctx, s.season, playerstats.RegularSeason)
	if err != nil {
		return fmt.Errorf("regular season stats stage: %w", err)
	}
	playoffs, err := s.stats.FetchSeason(ctx, s.season, playerstats.Playoffs)
	if err != nil {
		return fmt.Errorf("playoff stats stage: %w", err)
	}

	rosterResult, err := s.rosters.FetchAllRosters(ctx, s.season)
	if err != nil {
		return fmt.Errorf("roster stage: %w", err)
	}
	report.FailedRosterTeams = rosterResult.FailedTeams
	if len(rosterResult.FailedTeams) > 0 {
		report.Warnings = append(report.Warnings,
			"could not fetch roster for: "+strings.Join(rosterResult.FailedTeams, ", "))
	}

	sheets, err := s.sheets.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("spreadsheet stage: %w", err)
	}
	report.Warnings = append(report.Warnings, sheets.Warnings...)

	regular, err = s.joins.EnrichPositions(ctx, regular, rosterResult.Entries)
	if err != nil {
		return fmt.Errorf("position join stage: %w", err)
	}
	playoffs, err = s.joins.EnrichPositions(ctx, playoffs, rosterResult.Entries)
	if err != nil {
		return fmt.Errorf("position join stage: %w", err)
	}

	regular = s.joins.AttachSalaries(ctx, regular, sheets.Salaries)
	playoffs = s.joins.AttachSalaries(ctx, playoffs, sheets.Salaries)
	salaryPerformance := s.joins.BuildSalaryPerformance(ctx, sheets.Salaries, regular)

	if err := s.writePlayerTable(report, TableRegularSeason, regular); err != nil {
		return err
	}
	if err := s.writePlayerTable(report, TableRegularSeasonFiltered, playerstats.RegularSeasonProfile.Apply(regular)); err != nil {
		return err
	}
	if err := s.writePlayerTable(report, TablePlayoffs, playoffs); err != nil {
		return err
	}
	if err := s.writePlayerTable(report, TablePlayoffsFiltered, playerstats.PlayoffProfile.Apply(playoffs)); err != nil {
		return err
	}

	workbookTables := []*spreadsheet.Table{
		sheets.WestStandings,
		sheets.EastStandings,
		sheets.TeamPlayoffStats,
		sheets.TeamPlayoffAdvanced,
		sheets.Salaries,
		sheets.TeamRatings,
		sheets.Champions,
		salaryPerformance,
	}
	for _, t := range workbookTables {
		if err := s.writeTable(report, t.Name, t.Columns, t.Rows); err != nil {
			return err
		}
	}
	return nil
}

func (s *PipelineService) writePlayerTable(report *pipeline.RunReport, name string, records []playerstats.PlayerSeasonRecord) error {
	return s.writeTable(report, name, playerTableColumns, playerTableRows(records))
}

func (s *PipelineService) writeTable(report *pipeline.RunReport, name string, columns []string, rows [][]string) error {
	if err := s.store.WriteTable(name, columns, rows); err != nil {
		return fmt.Errorf("persist table %s: %w", name, err)
	}
	report.TablesWritten = append(report.TablesWritten, name)
	report.RowCounts[name] = len(rows)
	return nil
}

func (s *PipelineService) setLastReport(report pipeline.RunReport) {
	s.mu.Lock()
	s.lastReport = &report
	s.mu.Unlock()
}
