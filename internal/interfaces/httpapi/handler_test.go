package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/courtsight/nba-analytics/internal/domain/pipeline"
	"github.com/courtsight/nba-analytics/internal/domain/playerstats"
	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	"github.com/courtsight/nba-analytics/internal/domain/roster"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
	"github.com/courtsight/nba-analytics/internal/usecase"
)

type fakeTableReader struct{}

func (fakeTableReader) ReadTable(string) ([]string, [][]string, error) {
	return []string{"PLAYER", "TM", "2025-26"},
		[][]string{
			{"Stephen Curry", "GSW", "59606817"},
			{"LeBron James", "LAL", "52627153"},
		}, nil
}

type fakeTableStore struct {
	mu     sync.Mutex
	report *pipeline.RunReport
}

func (s *fakeTableStore) WriteTable(string, []string, [][]string) error { return nil }

func (s *fakeTableStore) WriteReport(report pipeline.RunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = &report
	return nil
}

func (s *fakeTableStore) ReadReport() (pipeline.RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.report == nil {
		return pipeline.RunReport{}, fmt.Errorf("no report on disk")
	}
	return *s.report, nil
}

type failingProvider struct{}

func (failingProvider) FetchLeaguePlayerStats(context.Context, string, playerstats.SeasonType) ([]playerstats.PlayerSeasonRecord, rawdata.Payload, error) {
	return nil, rawdata.Payload{}, fmt.Errorf("status=503")
}

func (failingProvider) FetchTeamRoster(context.Context, int64, string) ([]roster.Entry, rawdata.Payload, error) {
	return nil, rawdata.Payload{}, fmt.Errorf("status=503")
}

func testRouter(t *testing.T) (http.Handler, *fakeTableStore) {
	t.Helper()

	log := logging.NewNop()
	store := &fakeTableStore{}
	statsSvc := usecase.NewSeasonStatsService(failingProvider{}, nil, log)
	pipelineSvc := usecase.NewPipelineService(statsSvc, nil, nil, nil, store, log, "2025-26")
	tradeSvc := usecase.NewTradeService(fakeTableReader{}, nil, log)
	handler := NewHandler(pipelineSvc, tradeSvc, log)
	return NewRouter(handler, log, nil, "sekrit"), store
}

func TestHandler_Healthz(t *testing.T) {
	router, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandler_ValidateTrade(t *testing.T) {
	router, _ := testRouter(t)

	body := `{"playersA":["Stephen Curry"],"playersB":["LeBron James"],"season":"2025-26"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/trade/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data usecase.TradeValidation `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Result.Outcome == "" {
		t.Fatalf("missing trade result: %s", rec.Body.String())
	}
	if envelope.Data.Season != "2025-26" {
		t.Fatalf("season = %q, want the requested one echoed back", envelope.Data.Season)
	}
}

func TestHandler_ValidateTradeRejectsBadPayloads(t *testing.T) {
	router, _ := testRouter(t)

	for _, body := range []string{
		"",
		"{not json",
		`{"playersA":["A"],"season":"2025-26"}`,
		`{"playersA":[],"playersB":["B"],"season":"2025-26"}`,
		`{"playersA":["A"],"playersB":["B"]}`,
		`{"playersA":["A"],"playersB":["B"],"season":"2025-26","bogus":true}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/v1/trade/validate", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandler_PipelineStatusBeforeAnyRun(t *testing.T) {
	router, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/pipeline/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_RunPipeline(t *testing.T) {
	router, _ := testRouter(t)

	// No token: rejected before the pipeline is touched.
	req := httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil)
	req.Header.Set("X-Internal-Job-Token", "sekrit")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", rec.Code, rec.Body.String())
	}
}
