package usecase

import (
	"context"
	"fmt"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	"github.com/courtsight/nba-analytics/internal/domain/roster"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

type stubProvider struct {
	statsRecords  []playerstats.PlayerSeasonRecord
	statsErr      error
	rosterByTeam  map[int64][]roster.Entry
	rosterErrByID map[int64]error
	rosterCalls   []int64
}

func (p *stubProvider) FetchLeaguePlayerStats(_ context.Context, season string, seasonType playerstats.SeasonType) ([]playerstats.PlayerSeasonRecord, rawdata.Payload, error) {
	if p.statsErr != nil {
		return nil, rawdata.Payload{}, p.statsErr
	}
	payload := rawdata.Payload{
		Source:    "nbastats",
		EntityKey: fmt.Sprintf("leaguedashplayerstats:%s:%s", season, seasonType),
		Body:      []byte(`{}`),
	}
	return p.statsRecords, payload, nil
}

func (p *stubProvider) FetchTeamRoster(_ context.Context, teamID int64, season string) ([]roster.Entry, rawdata.Payload, error) {
	p.rosterCalls = append(p.rosterCalls, teamID)
	if err, ok := p.rosterErrByID[teamID]; ok {
		return nil, rawdata.Payload{}, err
	}
	payload := rawdata.Payload{
		Source:    "nbastats",
		EntityKey: fmt.Sprintf("commonteamroster:%d:%s", teamID, season),
		Body:      []byte(`{}`),
	}
	return p.rosterByTeam[teamID], payload, nil
}

type stubArchive struct {
	payloads []rawdata.Payload
	err      error
}

func (a *stubArchive) UpsertMany(_ context.Context, payloads []rawdata.Payload) error {
	if a.err != nil {
		return a.err
	}
	a.payloads = append(a.payloads, payloads...)
	return nil
}

func (a *stubArchive) GetByEntityKey(context.Context, string, string) (rawdata.Payload, error) {
	return rawdata.Payload{}, ErrNotFound
}

func TestSeasonStatsService_FetchSeason(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		statsRecords: []playerstats.PlayerSeasonRecord{{PlayerID: 1, PlayerName: "A", TeamAbbr: "GSW"}},
	}
	archive := &stubArchive{}
	svc := NewSeasonStatsService(provider, archive, logging.NewNop())

	records, err := svc.FetchSeason(context.Background(), "2025-26", playerstats.RegularSeason)
	if err != nil {
		t.Fatalf("FetchSeason: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d", len(records))
	}
	if records[0].TeamName != "Golden State Warriors" {
		t.Fatalf("TeamName = %q, want the full name backfilled from the abbreviation", records[0].TeamName)
	}
	if len(archive.payloads) != 1 {
		t.Fatalf("archived payloads = %d, want 1", len(archive.payloads))
	}
}

func TestSeasonStatsService_ValidatesInput(t *testing.T) {
	t.Parallel()

	svc := NewSeasonStatsService(&stubProvider{}, nil, logging.NewNop())
	if _, err := svc.FetchSeason(context.Background(), "  ", playerstats.RegularSeason); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("empty season err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.FetchSeason(context.Background(), "2025-26", playerstats.SeasonType("Preseason")); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("bad season type err = %v, want ErrInvalidInput", err)
	}
}

func TestSeasonStatsService_ArchiveFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{statsRecords: []playerstats.PlayerSeasonRecord{{PlayerID: 1}}}
	archive := &stubArchive{err: fmt.Errorf("db down")}
	svc := NewSeasonStatsService(provider, archive, logging.NewNop())

	if _, err := svc.FetchSeason(context.Background(), "2025-26", playerstats.Playoffs); err != nil {
		t.Fatalf("archive failure surfaced as fetch error: %v", err)
	}
}
