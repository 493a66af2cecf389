// Package convert implements currency conversion over a TTL-governed,
// USD-based rate table cache with a direct-fetch fallback for codes the
// cached table does not carry.
package convert

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/fxconvert/pkg/cache"
	"github.com/amirasaad/fxconvert/pkg/exchange"
	"github.com/amirasaad/fxconvert/pkg/provider"
)

// baseCurrency is the hub currency the cached table is expressed in.
const baseCurrency = "usd"

// DefaultTTL is how long a fetched rate table stays fresh.
const DefaultTTL = 5 * time.Minute

// popularCodes is the fixed prefix order for the choice lists, filtered to
// the codes actually present in the fetched table.
var popularCodes = []string{"USD", "EUR", "GBP", "PKR", "INR", "AED", "SAR", "USDT", "CNY", "JPY"}

// Service provides conversion, code listing, and refresh operations.
type Service struct {
	source provider.RateSource
	cache  cache.RateTableCache
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	// mu guards check-then-fetch-then-store on the cache slot so concurrent
	// requests cannot race duplicate fetches into it. Last writer wins.
	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithClock overrides the clock used for staleness checks. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a conversion service.
func New(
	source provider.RateSource,
	tableCache cache.RateTableCache,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		source: source,
		cache:  tableCache,
		ttl:    DefaultTTL,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert converts an amount between two currency codes.
//
// The amount must parse as a non-negative number and both codes must be
// non-empty (case-insensitive, surrounding whitespace ignored). When both
// codes resolve against the cached USD table the result uses the cross-rate
// rateTo/rateFrom; when either is absent a direct fetch with the from-code
// as base is attempted before giving up with a PairError.
func (s *Service) Convert(
	ctx context.Context,
	req exchange.ConversionRequest,
) (*exchange.ConversionResult, error) {
	amt, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	if err != nil || math.IsNaN(amt) || math.IsInf(amt, 0) {
		return nil, exchange.ErrInvalidAmount
	}
	if amt < 0 {
		return nil, exchange.ErrNegativeAmount
	}

	from := strings.ToLower(strings.TrimSpace(req.From))
	to := strings.ToLower(strings.TrimSpace(req.To))
	if from == "" || to == "" {
		return nil, exchange.ErrMissingCurrency
	}

	table, err := s.usdRates(ctx, false)
	if err != nil {
		return nil, err
	}

	rateFrom, okFrom := usdRate(table, from)
	rateTo, okTo := usdRate(table, to)

	if !okFrom || !okTo {
		return s.convertDirect(ctx, amt, from, to)
	}

	rate := rateTo / rateFrom
	result := &exchange.ConversionResult{
		Amount:          amt,
		ConvertedAmount: amt * rate,
		Rate:            rate,
		From:            strings.ToUpper(from),
		To:              strings.ToUpper(to),
		AsOf:            table.AsOf,
	}
	s.logger.Debug("converted via cached table",
		"from", result.From, "to", result.To, "rate", rate, "as_of", table.AsOf)
	return result, nil
}

// convertDirect fetches a table with the from-code as base and looks the
// to-code up there. The result is deliberately not written back to the
// shared slot, which stays USD-based.
func (s *Service) convertDirect(
	ctx context.Context,
	amt float64,
	from, to string,
) (*exchange.ConversionResult, error) {
	table, err := s.source.FetchBaseRates(ctx, from)
	if err == nil {
		if direct, ok := table.Lookup(to); ok {
			s.logger.Debug("converted via direct fetch",
				"from", from, "to", to, "rate", direct, "as_of", table.AsOf)
			return &exchange.ConversionResult{
				Amount:          amt,
				ConvertedAmount: amt * direct,
				Rate:            direct,
				From:            strings.ToUpper(from),
				To:              strings.ToUpper(to),
				AsOf:            table.AsOf,
			}, nil
		}
	}

	return nil, &exchange.PairError{
		From: strings.ToUpper(from),
		To:   strings.ToUpper(to),
	}
}

// AvailableCodes force-refreshes the cached table and returns the union of
// its codes and USD, popular codes first, the rest lexicographic. A fetch
// failure propagates to the caller since no list can be built without it.
func (s *Service) AvailableCodes(ctx context.Context) ([]string, error) {
	table, err := s.usdRates(ctx, true)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(table.Rates)+1)
	present["USD"] = true
	for code := range table.Rates {
		present[strings.ToUpper(code)] = true
	}

	ordered := make([]string, 0, len(present))
	popular := make(map[string]bool, len(popularCodes))
	for _, code := range popularCodes {
		popular[code] = true
		if present[code] {
			ordered = append(ordered, code)
		}
	}

	rest := make([]string, 0, len(present))
	for code := range present {
		if !popular[code] {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...), nil
}

// Refresh forces the cached USD table to be refetched.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.usdRates(ctx, true)
	return err
}

// usdRates returns the cached USD table when present, not forced, and
// younger than the TTL; otherwise it fetches, overwrites the slot wholesale,
// and returns the fresh table.
func (s *Service) usdRates(ctx context.Context, force bool) (*exchange.RateTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		snap, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("cache read failed, treating as miss", "error", err)
		}
		if snap != nil && snap.Table != nil && s.now().Sub(snap.FetchedAt) < s.ttl {
			return snap.Table, nil
		}
	}

	table, err := s.source.FetchBaseRates(ctx, baseCurrency)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, &cache.Snapshot{Table: table, FetchedAt: s.now()}); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}
	return table, nil
}

func usdRate(table *exchange.RateTable, code string) (float64, bool) {
	if code == baseCurrency {
		return 1.0, true
	}
	return table.Lookup(code)
}
