package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	"github.com/courtsight/nba-analytics/internal/domain/roster"
	"github.com/courtsight/nba-analytics/internal/domain/team"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

// RosterService walks all 30 franchises and concatenates their rosters. One
// team failing is tolerable: its players enrich as Unknown downstream. All
// thirty failing means the provider is effectively down, which is fatal.
type RosterService struct {
	provider StatsProvider
	archive  rawdata.Repository
	logger   *logging.Logger
	throttle time.Duration

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// RosterResult carries the concatenated, deduplicated entries plus the
// abbreviations of teams whose fetches exhausted retries.
type RosterResult struct {
	Entries     []roster.Entry
	FailedTeams []string
}

func NewRosterService(provider StatsProvider, archive rawdata.Repository, logger *logging.Logger, throttle time.Duration) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	if throttle < 0 {
		throttle = 0
	}
	return &RosterService{
		provider: provider,
		archive:  archive,
		logger:   logger,
		throttle: throttle,
		sleep:    sleepContext,
	}
}

func (s *RosterService) FetchAllRosters(ctx context.Context, season string) (RosterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.FetchAllRosters")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return RosterResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	all := make([]roster.Entry, 0, 600)
	payloads := make([]rawdata.Payload, 0, len(team.Franchises))
	failed := make([]string, 0)

	for _, franchise := range team.Franchises {
		entries, payload, err := s.provider.FetchTeamRoster(ctx, franchise.ID, season)
		if err != nil {
			if ctx.Err() != nil {
				return RosterResult{}, ctx.Err()
			}
			s.logger.WarnContext(ctx, "roster fetch failed, continuing without team",
				"team", franchise.Abbreviation, "team_id", franchise.ID, "error", err)
			failed = append(failed, franchise.Abbreviation)
		} else {
			all = append(all, entries...)
			if len(payload.Body) > 0 {
				payloads = append(payloads, payload)
			}
		}

		// Pause after every team regardless of outcome to stay under the
		// provider's rate limit.
		if s.throttle > 0 {
			if err := s.sleep(ctx, s.throttle); err != nil {
				return RosterResult{}, err
			}
		}
	}

	if len(failed) == len(team.Franchises) {
		return RosterResult{}, fmt.Errorf("%w: all %d roster fetches failed", ErrNoUsableRosters, len(team.Franchises))
	}

	if s.archive != nil && len(payloads) > 0 {
		if err := s.archive.UpsertMany(ctx, payloads); err != nil {
			s.logger.WarnContext(ctx, "archive roster payloads failed", "count", len(payloads), "error", err)
		}
	}

	result := RosterResult{
		Entries:     roster.Dedupe(all),
		FailedTeams: failed,
	}
	if len(failed) > 0 {
		s.logger.WarnContext(ctx, "could not fetch roster for: "+strings.Join(failed, ", "), "failed_count", len(failed))
	}
	return result, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
