package nbastats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
	"github.com/courtsight/nba-analytics/internal/platform/resilience"
	"github.com/courtsight/nba-analytics/internal/usecase"
)

const (
	defaultBaseURL    = "https://stats.nba.com/stats"
	defaultMaxRetries = 3
	defaultBackoff    = 800 * time.Millisecond

	// The provider rejects requests without browser-looking headers.
	refererHeader   = "https://www.nba.com/"
	userAgentHeader = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var errStatsTransient = crerr.New("stats provider transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Backoff        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the league stats provider. Every response decodes through
// the resultSets envelope; every request retries transient failures with
// linear backoff behind a shared circuit breaker.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	backoff        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxRetries,
		backoff:        backoff,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats provider circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: stats provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errStatsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Referer", refererHeader)
		req.Header.Set("User-Agent", userAgentHeader)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errStatsTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errStatsTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errStatsTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.backoff
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "stats provider request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusRequestTimeout {
		return true
	}
	return status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
