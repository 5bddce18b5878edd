package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtsight/nba-analytics/internal/domain/salary"
	"github.com/courtsight/nba-analytics/internal/domain/trade"
	"github.com/courtsight/nba-analytics/internal/platform/cache"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

// SalaryTableName is the persisted table the trade service resolves player
// salaries from.
const SalaryTableName = "nba_players_salaries"

// TableReader is the slice of the datastore the trade service consumes.
type TableReader interface {
	ReadTable(name string) ([]string, [][]string, error)
}

// TradeValidation is the verdict plus the player names that could not be
// priced. Unmatched names contribute zero, which can flip a side to
// indeterminate rather than silently validating a bad trade.
type TradeValidation struct {
	Season     string       `json:"season"`
	Result     trade.Result `json:"result"`
	UnmatchedA []string     `json:"unmatchedA,omitempty"`
	UnmatchedB []string     `json:"unmatchedB,omitempty"`
}

// TradeService applies the salary-matching rule to two player packages. The
// salary table comes from the last pipeline run's output, held in the TTL
// cache between requests.
type TradeService struct {
	reader TableReader
	cache  *cache.Store
	logger *logging.Logger
}

func NewTradeService(reader TableReader, tableCache *cache.Store, logger *logging.Logger) *TradeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TradeService{reader: reader, cache: tableCache, logger: logger}
}

func (s *TradeService) ValidateTrade(ctx context.Context, playersA, playersB []string, season string) (TradeValidation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.ValidateTrade")
	defer span.End()

	playersA = cleanNames(playersA)
	playersB = cleanNames(playersB)
	if len(playersA) == 0 || len(playersB) == 0 {
		return TradeValidation{}, fmt.Errorf("%w: both sides of a trade need at least one player", ErrInvalidInput)
	}
	season = strings.TrimSpace(season)
	if season == "" {
		return TradeValidation{}, fmt.Errorf("%w: target season is required", ErrInvalidInput)
	}

	salaries, err := s.salaryByPlayer(ctx, season)
	if err != nil {
		return TradeValidation{}, err
	}

	totalA, unmatchedA := sumSalaries(playersA, salaries)
	totalB, unmatchedB := sumSalaries(playersB, salaries)

	return TradeValidation{
		Season:     season,
		Result:     trade.Evaluate(totalA, totalB),
		UnmatchedA: unmatchedA,
		UnmatchedB: unmatchedB,
	}, nil
}

func (s *TradeService) salaryByPlayer(ctx context.Context, season string) (map[string]int64, error) {
	load := func(ctx context.Context) (any, error) {
		return s.loadSalaryTable(ctx, season)
	}

	var out any
	var err error
	if s.cache != nil {
		out, err = s.cache.GetOrLoad(ctx, "table:"+SalaryTableName+":"+season, load)
	} else {
		out, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}
	salaries, ok := out.(map[string]int64)
	if !ok {
		return nil, fmt.Errorf("unexpected cached table type %T", out)
	}
	return salaries, nil
}

func (s *TradeService) loadSalaryTable(ctx context.Context, season string) (map[string]int64, error) {
	columns, rows, err := s.reader.ReadTable(SalaryTableName)
	if err != nil {
		return nil, fmt.Errorf("%w: salary table unavailable, run the pipeline first: %v", ErrDependencyUnavailable, err)
	}

	playerIdx, seasonIdx := -1, -1
	for i, c := range columns {
		switch c {
		case "PLAYER":
			playerIdx = i
		case season:
			seasonIdx = i
		}
	}
	if playerIdx < 0 {
		return nil, fmt.Errorf("salary table missing PLAYER column")
	}
	if seasonIdx < 0 {
		// A season outside the table's contract columns prices every
		// player at zero, which the rule reports as indeterminate.
		s.logger.WarnContext(ctx, "season column not in salary table", "season", season)
		return map[string]int64{}, nil
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		if playerIdx >= len(row) || seasonIdx >= len(row) {
			continue
		}
		name := normalizeName(row[playerIdx])
		if name == "" {
			continue
		}
		out[name] = salary.ParseAmount(row[seasonIdx])
	}
	s.logger.DebugContext(ctx, "salary table loaded", "players", len(out))
	return out, nil
}

func sumSalaries(players []string, salaries map[string]int64) (int64, []string) {
	var total int64
	var unmatched []string
	for _, p := range players {
		amount, ok := salaries[normalizeName(p)]
		if !ok {
			unmatched = append(unmatched, p)
			continue
		}
		total += amount
	}
	return total, unmatched
}

func cleanNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
