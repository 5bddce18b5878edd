package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/courtsight/nba-analytics/external/nbastats"
	"github.com/courtsight/nba-analytics/internal/config"
	"github.com/courtsight/nba-analytics/internal/domain/rawdata"
	"github.com/courtsight/nba-analytics/internal/infrastructure/datastore"
	"github.com/courtsight/nba-analytics/internal/infrastructure/repository/postgres"
	"github.com/courtsight/nba-analytics/internal/infrastructure/spreadsheet"
	"github.com/courtsight/nba-analytics/internal/interfaces/httpapi"
	"github.com/courtsight/nba-analytics/internal/platform/cache"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
	"github.com/courtsight/nba-analytics/internal/platform/resilience"
	"github.com/courtsight/nba-analytics/internal/usecase"
)

// Services is the wired dependency graph shared by the API server and the
// one-shot ETL binary.
type Services struct {
	Pipeline *usecase.PipelineService
	Trades   *usecase.TradeService

	closeFns []func(context.Context) error
}

// Close releases held resources, last-added first.
func (s *Services) Close(ctx context.Context) error {
	var firstErr error
	for i := len(s.closeFns) - 1; i >= 0; i-- {
		if err := s.closeFns[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func BuildServices(cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}
	services := &Services{}

	client := nbastats.NewClient(nbastats.ClientConfig{
		BaseURL:    cfg.StatsBaseURL,
		Timeout:    cfg.StatsTimeout,
		MaxRetries: cfg.StatsMaxRetries,
		Backoff:    cfg.StatsBackoff,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.StatsCircuitEnabled,
			FailureThreshold: cfg.StatsCircuitFailureCount,
			OpenTimeout:      cfg.StatsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StatsCircuitHalfOpenMaxReq,
		},
	})

	var archive rawdata.Repository
	if cfg.DBEnabled {
		db, err := openDB(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("raw payload archive: %w", err)
		}
		services.closeFns = append(services.closeFns, func(context.Context) error { return db.Close() })
		archive = postgres.NewRawPayloadRepository(db)
	} else {
		archive = datastore.NewFileRawArchive(cfg.RawArchiveDir)
		logger.Info("raw payload archive on local files", "dir", cfg.RawArchiveDir)
	}

	store := datastore.NewStore(cfg.OutputDir)
	services.Pipeline = usecase.NewPipelineService(
		usecase.NewSeasonStatsService(client, archive, logger),
		usecase.NewRosterService(client, archive, logger, cfg.StatsRosterThrottle),
		usecase.NewSpreadsheetService(spreadsheet.NewLoader(cfg.WorkbookDir), logger, cfg.SpreadsheetWorkers),
		usecase.NewJoinService(logger),
		store,
		logger,
		cfg.Season,
	)

	var tableCache *cache.Store
	if cfg.CacheEnabled {
		tableCache = cache.NewStore(cfg.CacheTTL)
	}
	services.Trades = usecase.NewTradeService(store, tableCache, logger)

	return services, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *Services, error) {
	services, err := BuildServices(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(services.Pipeline, services.Trades, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, services, nil
}
