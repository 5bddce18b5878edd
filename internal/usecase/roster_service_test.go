package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/nba-analytics/internal/domain/roster"
	"github.com/courtsight/nba-analytics/internal/domain/team"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

func rosterServiceForTest(provider *stubProvider, archive *stubArchive) (*RosterService, *int) {
	svc := NewRosterService(provider, archive, logging.NewNop(), 500*time.Millisecond)
	sleeps := 0
	svc.sleep = func(context.Context, time.Duration) error {
		sleeps++
		return nil
	}
	return svc, &sleeps
}

func TestRosterService_PartialFailureTolerated(t *testing.T) {
	t.Parallel()

	var lakersID, bullsID int64
	for _, f := range team.Franchises {
		switch f.Abbreviation {
		case "LAL":
			lakersID = f.ID
		case "CHI":
			bullsID = f.ID
		}
	}

	provider := &stubProvider{
		rosterByTeam: map[int64][]roster.Entry{
			lakersID: {{PlayerID: 1, PlayerName: "LeBron James", TeamAbbr: "LAL"}},
		},
		rosterErrByID: map[int64]error{bullsID: fmt.Errorf("status=500")},
	}
	archive := &stubArchive{}
	svc, sleeps := rosterServiceForTest(provider, archive)

	result, err := svc.FetchAllRosters(context.Background(), "2025-26")
	if err != nil {
		t.Fatalf("FetchAllRosters: %v", err)
	}
	if len(result.FailedTeams) != 1 || result.FailedTeams[0] != "CHI" {
		t.Fatalf("FailedTeams = %v, want [CHI]", result.FailedTeams)
	}
	if len(provider.rosterCalls) != len(team.Franchises) {
		t.Fatalf("roster calls = %d, want %d (one per franchise)", len(provider.rosterCalls), len(team.Franchises))
	}
	if *sleeps != len(team.Franchises) {
		t.Fatalf("throttle sleeps = %d, want %d (pause follows every team, failed ones included)", *sleeps, len(team.Franchises))
	}
	// Successful teams still archived.
	if len(archive.payloads) != len(team.Franchises)-1 {
		t.Fatalf("archived payloads = %d, want %d", len(archive.payloads), len(team.Franchises)-1)
	}
}

func TestRosterService_AllFailuresFatal(t *testing.T) {
	t.Parallel()

	errs := make(map[int64]error, len(team.Franchises))
	for _, f := range team.Franchises {
		errs[f.ID] = fmt.Errorf("status=500")
	}
	provider := &stubProvider{rosterErrByID: errs}
	svc, _ := rosterServiceForTest(provider, &stubArchive{})

	_, err := svc.FetchAllRosters(context.Background(), "2025-26")
	if !crerr.Is(err, ErrNoUsableRosters) {
		t.Fatalf("err = %v, want ErrNoUsableRosters", err)
	}
}

func TestRosterService_DedupesTradedPlayers(t *testing.T) {
	t.Parallel()

	rosterByTeam := make(map[int64][]roster.Entry, len(team.Franchises))
	var firstTeam, lastTeam team.Franchise
	for i, f := range team.Franchises {
		if i == 0 {
			firstTeam = f
		}
		if i == len(team.Franchises)-1 {
			lastTeam = f
		}
	}
	rosterByTeam[firstTeam.ID] = []roster.Entry{{PlayerID: 7, PlayerName: "Traded Guy", TeamAbbr: firstTeam.Abbreviation}}
	rosterByTeam[lastTeam.ID] = []roster.Entry{{PlayerID: 7, PlayerName: "Traded Guy", TeamAbbr: lastTeam.Abbreviation}}
	provider := &stubProvider{rosterByTeam: rosterByTeam}
	svc, _ := rosterServiceForTest(provider, &stubArchive{})

	result, err := svc.FetchAllRosters(context.Background(), "2025-26")
	if err != nil {
		t.Fatalf("FetchAllRosters: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 after dedupe", len(result.Entries))
	}
	if result.Entries[0].TeamAbbr != lastTeam.Abbreviation {
		t.Fatalf("kept team = %s, want last fetched %s", result.Entries[0].TeamAbbr, lastTeam.Abbreviation)
	}
}

func TestRosterService_ContextCancelAborts(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{rosterByTeam: map[int64][]roster.Entry{}}
	svc := NewRosterService(provider, nil, logging.NewNop(), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.FetchAllRosters(ctx, "2025-26"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
