package provider

import (
	"context"

	"github.com/amirasaad/fxconvert/pkg/exchange"
)

// RateSource fetches a full rate table for a base currency from an
// external source.
type RateSource interface {
	// FetchBaseRates returns the current rate table for the given base
	// currency code (case-insensitive). It returns
	// exchange.ErrSourceUnavailable when every configured endpoint fails.
	FetchBaseRates(ctx context.Context, base string) (*exchange.RateTable, error)
}
