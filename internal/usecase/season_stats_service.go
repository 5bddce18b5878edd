package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	"github.com/courtsight/nba-analytics/internal/domain/roster"
	"github.com/courtsight/nba-analytics/internal/domain/team"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

// StatsProvider is the slice of the provider client the pipeline consumes.
type StatsProvider interface {
	FetchLeaguePlayerStats(ctx context.Context, season string, seasonType playerstats.SeasonType) ([]playerstats.PlayerSeasonRecord, rawdata.Payload, error)
	FetchTeamRoster(ctx context.Context, teamID int64, season string) ([]roster.Entry, rawdata.Payload, error)
}

// SeasonStatsService fetches one season split of league-wide player totals
// and archives the raw response. Archive failures degrade to a warning: the
// archive exists for replay, not correctness.
type SeasonStatsService struct {
	provider   StatsProvider
	archive    rawdata.Repository
	normalizer *team.Normalizer
	logger     *logging.Logger
}

func NewSeasonStatsService(provider StatsProvider, archive rawdata.Repository, logger *logging.Logger) *SeasonStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonStatsService{
		provider:   provider,
		archive:    archive,
		normalizer: team.NewNormalizer(),
		logger:     logger,
	}
}

func (s *SeasonStatsService) FetchSeason(ctx context.Context, season string, seasonType playerstats.SeasonType) ([]playerstats.PlayerSeasonRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.FetchSeason")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	switch seasonType {
	case playerstats.RegularSeason, playerstats.Playoffs:
	default:
		return nil, fmt.Errorf("%w: unknown season type %q", ErrInvalidInput, seasonType)
	}

	records, payload, err := s.provider.FetchLeaguePlayerStats(ctx, season, seasonType)
	if err != nil {
		return nil, fmt.Errorf("fetch season stats: %w", err)
	}

	if s.archive != nil && len(payload.Body) > 0 {
		if err := s.archive.UpsertMany(ctx, []rawdata.Payload{payload}); err != nil {
			s.logger.WarnContext(ctx, "archive season stats payload failed", "entity_key", payload.EntityKey, "error", err)
		}
	}

	// Every persisted row carries the full team name alongside the
	// abbreviation.
	for i := range records {
		if records[i].TeamName == "" {
			records[i].TeamName = s.normalizer.Name(records[i].TeamAbbr)
		}
	}

	return records, nil
}
