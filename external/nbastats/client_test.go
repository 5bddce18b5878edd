package nbastats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Logger:  logging.NewNop(),
		Backoff: time.Millisecond,
	})
	return client, srv
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, envelope map[string]any) {
	t.Helper()
	raw, err := sonic.Marshal(envelope)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func playerStatsFixture() map[string]any {
	return map[string]any{
		"resource": "leaguedashplayerstats",
		"resultSets": []map[string]any{
			{
				"name":    "LeagueDashPlayerStats",
				"headers": []string{"PLAYER_ID", "PLAYER_NAME", "TEAM_ID", "TEAM_ABBREVIATION", "AGE", "GP", "W", "L", "MIN", "FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT", "OREB", "DREB", "REB", "AST", "TOV", "STL", "BLK", "PTS", "PLUS_MINUS"},
				"rowSet": [][]any{
					{201939.0, "Stephen Curry", 1610612744.0, "GSW", 37.0, 70.0, 45.0, 25.0, 2280.0, 650.0, 1420.0, 0.458, 320.0, 780.0, 0.41, 280.0, 305.0, 0.918, 40.0, 300.0, 340.0, 430.0, 200.0, 95.0, 25.0, 1900.0, 420.0},
					{999001.0, "Exhibition Guy", 15020.0, "DRT", 25.0, 2.0, 1.0, 1.0, 40.0, 8.0, 20.0, 0.4, 2.0, 8.0, 0.25, 4.0, 4.0, 1.0, 2.0, 5.0, 7.0, 3.0, 2.0, 1.0, 0.0, 22.0, -5.0},
					{999002.0, "Never Played", 1610612738.0, "BOS", 22.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
				},
			},
		},
	}
}

func TestFetchLeaguePlayerStats_FiltersAndDerives(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leaguedashplayerstats" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("SeasonType"); got != "Regular Season" {
			t.Errorf("SeasonType = %q", got)
		}
		if r.Header.Get("Referer") == "" || r.Header.Get("User-Agent") == "" {
			t.Error("browser headers missing")
		}
		writeEnvelope(t, w, playerStatsFixture())
	})

	records, payload, err := client.FetchLeaguePlayerStats(context.Background(), "2025-26", playerstats.RegularSeason)
	if err != nil {
		t.Fatalf("FetchLeaguePlayerStats: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1 (non-franchise and GP=0 rows dropped)", len(records))
	}

	rec := records[0]
	if rec.PlayerName != "Stephen Curry" || rec.TeamAbbr != "GSW" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.TeamName != "Golden State Warriors" {
		t.Fatalf("TeamName = %q", rec.TeamName)
	}
	if rec.MinutesPG != 32.6 {
		t.Fatalf("MinutesPG = %v, want 32.6", rec.MinutesPG)
	}
	if rec.PointsPG != 27.1 {
		t.Fatalf("PointsPG = %v, want 27.1", rec.PointsPG)
	}
	if rec.PlusMinusPG != 6.0 {
		t.Fatalf("PlusMinusPG = %v, want 6", rec.PlusMinusPG)
	}

	if payload.Source != "nbastats" || payload.EntityKey != "leaguedashplayerstats:2025-26:Regular Season" {
		t.Fatalf("unexpected payload key %q/%q", payload.Source, payload.EntityKey)
	}
	if len(payload.Body) == 0 {
		t.Fatal("payload body empty")
	}
}

func TestFetchTeamRoster_MapsPositions(t *testing.T) {
	t.Parallel()

	fixture := map[string]any{
		"resultSets": []map[string]any{
			{
				"name":    "CommonTeamRoster",
				"headers": []string{"TeamID", "SEASON", "PLAYER", "NUM", "POSITION", "PLAYER_ID"},
				"rowSet": [][]any{
					{1610612747.0, "2025-26", "Luka Doncic", "77", "F-G", 1629029.0},
					{1610612747.0, "2025-26", "Jaxson Hayes", "11", "C", 1629637.0},
					{1610612747.0, "2025-26", "Mystery Rookie", "0", "X", 2000001.0},
				},
			},
		},
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("TeamID"); got != "1610612747" {
			t.Errorf("TeamID = %q", got)
		}
		writeEnvelope(t, w, fixture)
	})

	entries, payload, err := client.FetchTeamRoster(context.Background(), 1610612747, "2025-26")
	if err != nil {
		t.Fatalf("FetchTeamRoster: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Position != "Small Forward" {
		t.Fatalf("F-G mapped to %q, want Small Forward", entries[0].Position)
	}
	if entries[1].Position != "Center" || entries[1].TeamAbbr != "LAL" {
		t.Fatalf("unexpected entry %+v", entries[1])
	}
	if entries[2].Position != "Unknown" {
		t.Fatalf("unmapped code resolved to %q, want Unknown", entries[2].Position)
	}
	if payload.EntityKey != "commonteamroster:1610612747:2025-26" {
		t.Fatalf("payload key = %q", payload.EntityKey)
	}
}

func TestExecuteRequest_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(t, w, playerStatsFixture())
	})

	_, _, err := client.FetchLeaguePlayerStats(context.Background(), "2025-26", playerstats.RegularSeason)
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
}

func TestExecuteRequest_FailsFastOnClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, _, err := client.FetchTeamRoster(context.Background(), 1610612747, "2025-26")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1 (4xx is not retryable)", got)
	}
}

func TestExecuteRequest_ContextCancelDuringBackoff(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := client.FetchTeamRoster(ctx, 1610612747, "2025-26")
	if err == nil {
		t.Fatal("expected context error")
	}
	if ctx.Err() == nil {
		t.Fatal("context should have expired")
	}
}
