// Package currencyapi implements provider.RateSource against the public
// fawazahmed0 currency-api CDN mirrors. No API key is required.
package currencyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/amirasaad/fxconvert/pkg/exchange"
	"github.com/amirasaad/fxconvert/pkg/provider"
)

// Source fetches rate tables from an ordered list of endpoints, trying each
// in turn until one succeeds. Endpoint shape: {root}/{code}.json returning
// {"date":"YYYY-MM-DD","<code>":{"<other>":<float>,...}}.
type Source struct {
	endpoints  []string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Source from config, primary endpoint first.
func New(cfg *config.RateSource, logger *slog.Logger) *Source {
	return &Source{
		endpoints: []string{cfg.PrimaryURL, cfg.FallbackURL},
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// NewWithEndpoints creates a Source with an explicit endpoint list.
func NewWithEndpoints(endpoints []string, timeout time.Duration, logger *slog.Logger) *Source {
	return &Source{
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchBaseRates tries each endpoint in order. Any network failure, non-2xx
// status, decode failure, or missing expected field counts as a failed
// attempt for that endpoint, not a crash. When all endpoints fail the
// returned error wraps exchange.ErrSourceUnavailable.
func (s *Source) FetchBaseRates(ctx context.Context, base string) (*exchange.RateTable, error) {
	code := strings.ToLower(strings.TrimSpace(base))

	for _, root := range s.endpoints {
		url := fmt.Sprintf("%s/%s.json", root, code)
		table, err := s.fetch(ctx, url, code)
		if err != nil {
			s.logger.Warn("rate fetch attempt failed", "url", url, "error", err)
			continue
		}
		s.logger.Info("rate table fetched", "base", code, "as_of", table.AsOf, "count", len(table.Rates))
		return table, nil
	}

	return nil, fmt.Errorf("fetch %q rates: %w", code, exchange.ErrSourceUnavailable)
}

func (s *Source) fetch(ctx context.Context, url, code string) (*exchange.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	rawDate, ok := payload["date"]
	if !ok {
		return nil, fmt.Errorf("response missing %q field", "date")
	}
	var date string
	if err := json.Unmarshal(rawDate, &date); err != nil {
		return nil, fmt.Errorf("malformed date field: %w", err)
	}

	rawRates, ok := payload[code]
	if !ok {
		return nil, fmt.Errorf("response missing %q field", code)
	}
	var rates map[string]float64
	if err := json.Unmarshal(rawRates, &rates); err != nil {
		return nil, fmt.Errorf("malformed rates field: %w", err)
	}

	return &exchange.RateTable{
		AsOf:  date,
		Base:  code,
		Rates: rates,
	}, nil
}

var _ provider.RateSource = (*Source)(nil)
